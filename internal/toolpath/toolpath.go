// Package toolpath defines the typed 3D polyline model the planners
// produce and the post-processor consumes: every point carries a motion
// class (rapid, feed, plunge, retract) so the post-processor can pick the
// right G-code word without re-deriving intent from raw coordinates.
package toolpath

// MoveClass classifies the motion that reaches a Point from the previous
// one.
type MoveClass int

const (
	// Rapid is a non-cutting G0 move, typically at safe Z or between
	// disconnected regions.
	Rapid MoveClass = iota
	// Feed is a cutting G1 move in the XY plane (or combined XYZ) at the
	// operation's programmed feed rate.
	Feed
	// Plunge is a cutting G1 move that descends in Z only, at the tool's
	// plunge feed rate.
	Plunge
	// Retract is a non-cutting (G0) Z-only upward move that lifts the
	// tool clear of the stock before a rapid traverse.
	Retract
)

// String renders the class name, mostly for diagnostics and toolpath
// labels.
func (c MoveClass) String() string {
	switch c {
	case Rapid:
		return "rapid"
	case Feed:
		return "feed"
	case Plunge:
		return "plunge"
	case Retract:
		return "retract"
	default:
		return "unknown"
	}
}

// Point is one vertex of a toolpath segment.
type Point struct {
	X, Y, Z float64
	Class   MoveClass
	Feed    float64
	HasFeed bool
}

// Segment is the ordered run of points for one Z level; a roughing segment
// includes the retract/rapid/plunge transitions between its disconnected
// raster runs. ZLevel records the nominal Z height the segment belongs to
// (the roughing level it was raster-filled at, or the finishing pass it
// traces); Label is a short human-readable name for diagnostics.
type Segment struct {
	Points []Point
	ZLevel float64
	Label  string
}

// IsEmpty reports whether the segment has no points.
func (s Segment) IsEmpty() bool {
	return len(s.Points) == 0
}

// Toolpath is one operation's complete motion: every segment it cuts, in
// machine order, plus the tool and operation identity the post-processor
// needs for its preamble and comments.
type Toolpath struct {
	Segments      []Segment
	ToolNumber    int
	OperationName string
}

// IsEmpty reports whether the toolpath has no segments with any points.
func (tp Toolpath) IsEmpty() bool {
	return tp.TotalPoints() == 0
}

// TotalPoints sums the point count across every segment.
func (tp Toolpath) TotalPoints() int {
	n := 0
	for _, s := range tp.Segments {
		n += len(s.Points)
	}
	return n
}

// Bounds returns the axis-aligned bounding box of every point in the
// toolpath. ok is false when the toolpath is empty.
func (tp Toolpath) Bounds() (xmin, ymin, zmin, xmax, ymax, zmax float64, ok bool) {
	first := true
	for _, seg := range tp.Segments {
		for _, p := range seg.Points {
			if first {
				xmin, xmax = p.X, p.X
				ymin, ymax = p.Y, p.Y
				zmin, zmax = p.Z, p.Z
				first = false
				continue
			}
			if p.X < xmin {
				xmin = p.X
			}
			if p.X > xmax {
				xmax = p.X
			}
			if p.Y < ymin {
				ymin = p.Y
			}
			if p.Y > ymax {
				ymax = p.Y
			}
			if p.Z < zmin {
				zmin = p.Z
			}
			if p.Z > zmax {
				zmax = p.Z
			}
		}
	}
	return xmin, ymin, zmin, xmax, ymax, zmax, !first
}
