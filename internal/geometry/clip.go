package geometry

import (
	clipper "github.com/go-clipper/clipper2/port"
)

// ClipLine intersects the line segment a-b against p and returns the
// ordered list of disjoint sub-segments that lie inside p. The line is
// passed to clipper2 as an open subject path against the polygon clip, so
// the engine itself produces the split at every boundary crossing rather
// than this package re-deriving it from scan geometry.
func ClipLine(p Polygon, a, b Point) []Segment {
	if p.IsEmpty() || a == b {
		return nil
	}

	line := clipper.Path64{
		{X: toFixed(a.X), Y: toFixed(a.Y)},
		{X: toFixed(b.X), Y: toFixed(b.Y)},
	}

	_, openSolution, err := clipper.BooleanOp64(
		clipper.Intersection, clipper.NonZero,
		nil, clipper.Paths64{line}, p.toPaths64(),
	)
	if err != nil {
		return nil
	}

	var segments []Segment
	for _, path := range openSolution {
		if len(path) < 2 {
			continue
		}
		first, last := path[0], path[len(path)-1]
		segments = append(segments, Segment{
			A: Point{X: fromFixed(first.X), Y: fromFixed(first.Y)},
			B: Point{X: fromFixed(last.X), Y: fromFixed(last.Y)},
		})
	}
	return segments
}
