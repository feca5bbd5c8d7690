// Package geometry provides the 2D polygon-with-holes primitives the
// roughing and finishing planners depend on: offset, boolean union and
// difference, line-against-polygon clipping, and ring traversal.
//
// It is a thin float64 wrapper around github.com/go-clipper/clipper2's
// int64 fixed-point engine; every exported function accepts and returns
// the package's own Point/Polygon types so callers never see Point64.
package geometry

import (
	clipper "github.com/go-clipper/clipper2/port"
)

// scale converts between our float64 coordinate space and clipper2's
// int64 fixed-point space. 1e6 keeps six decimal digits of precision,
// comfortably below the 1e-9 epsilon the planners use for Z comparisons
// and well above the four decimals the post-processor ultimately emits.
const scale = 1e6

// Point is a 2D coordinate in job units (inch or mm).
type Point struct {
	X, Y float64
}

// Ring is an open sequence of points: the first point is not repeated at
// the end. Rings() closes a ring on the way out, per the contract every
// caller of this package expects.
type Ring []Point

// Segment is an ordered pair of endpoints, the result of clipping a line
// against a polygon.
type Segment struct {
	A, B Point
}

// Piece is one connected region of a polygon: an outer boundary and zero
// or more holes.
type Piece struct {
	Outer Ring
	Holes []Ring
}

// Polygon is a possibly multi-piece 2D region with holes. The zero value
// is the empty polygon.
type Polygon struct {
	Pieces []Piece
}

// IsEmpty reports whether the polygon has no area.
func (p Polygon) IsEmpty() bool {
	return len(p.Pieces) == 0
}

// Bounds returns the axis-aligned bounding box of the polygon. Reports ok
// = false for an empty polygon.
func (p Polygon) Bounds() (xmin, ymin, xmax, ymax float64, ok bool) {
	first := true
	for _, piece := range p.Pieces {
		for _, pt := range piece.Outer {
			if first {
				xmin, xmax, ymin, ymax = pt.X, pt.X, pt.Y, pt.Y
				first = false
				continue
			}
			xmin, xmax = min(xmin, pt.X), max(xmax, pt.X)
			ymin, ymax = min(ymin, pt.Y), max(ymax, pt.Y)
		}
	}
	return xmin, ymin, xmax, ymax, !first
}

// Rings yields the outer ring of every piece, then that piece's holes, in
// piece order, each ring closed (last point equal to first).
func (p Polygon) Rings() []Ring {
	var out []Ring
	for _, piece := range p.Pieces {
		if len(piece.Outer) > 0 {
			out = append(out, closeRing(piece.Outer))
		}
		for _, h := range piece.Holes {
			if len(h) > 0 {
				out = append(out, closeRing(h))
			}
		}
	}
	return out
}

func closeRing(r Ring) Ring {
	if len(r) == 0 || r[0] == r[len(r)-1] {
		return r
	}
	closed := make(Ring, len(r)+1)
	copy(closed, r)
	closed[len(r)] = r[0]
	return closed
}

// Rectangle builds the axis-aligned rectangle [xmin,xmax] x [ymin,ymax] as
// a single-piece polygon with no holes.
func Rectangle(xmin, ymin, xmax, ymax float64) Polygon {
	return Polygon{Pieces: []Piece{{Outer: Ring{
		{xmin, ymin}, {xmax, ymin}, {xmax, ymax}, {xmin, ymax},
	}}}}
}

func toFixed(v float64) int64 {
	return int64(v * scale)
}

func fromFixed(v int64) float64 {
	return float64(v) / scale
}

func ringToPath64(r Ring) clipper.Path64 {
	path := make(clipper.Path64, len(r))
	for i, pt := range r {
		path[i] = clipper.Point64{X: toFixed(pt.X), Y: toFixed(pt.Y)}
	}
	return path
}

func path64ToRing(p clipper.Path64) Ring {
	r := make(Ring, len(p))
	for i, pt := range p {
		r[i] = Point{X: fromFixed(pt.X), Y: fromFixed(pt.Y)}
	}
	return r
}

// toPaths64 flattens every ring of the polygon (outer and holes alike)
// into one Paths64, the shape clipper2's boolean/offset entry points
// expect; hole-vs-outer relationships are recovered on the way back out
// via signed area, not carried through this conversion.
func (p Polygon) toPaths64() clipper.Paths64 {
	var paths clipper.Paths64
	for _, piece := range p.Pieces {
		if len(piece.Outer) >= 3 {
			paths = append(paths, ringToPath64(piece.Outer))
		}
		for _, h := range piece.Holes {
			if len(h) >= 3 {
				paths = append(paths, ringToPath64(h))
			}
		}
	}
	return paths
}

// polygonFromFlatPaths64 reconstructs a Polygon from a flat Paths64 result
// (as returned by InflatePaths64, which does not preserve a tree), using
// signed area to classify outer rings vs. holes and point-in-polygon
// containment to assign each hole to its enclosing outer ring.
func polygonFromFlatPaths64(paths clipper.Paths64) Polygon {
	var outerPaths, holePaths clipper.Paths64
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		if clipper.IsPositive64(path) {
			outerPaths = append(outerPaths, path)
		} else {
			holePaths = append(holePaths, path)
		}
	}

	pieces := make([]Piece, len(outerPaths))
	for i, o := range outerPaths {
		pieces[i] = Piece{Outer: path64ToRing(o)}
	}

	for _, h := range holePaths {
		if len(h) == 0 {
			continue
		}
		assigned := false
		for i, o := range outerPaths {
			loc := clipper.PointInPolygon64(h[0], o, clipper.NonZero)
			if loc == clipper.Inside {
				pieces[i].Holes = append(pieces[i].Holes, path64ToRing(h))
				assigned = true
				break
			}
		}
		if !assigned && len(pieces) > 0 {
			pieces[0].Holes = append(pieces[0].Holes, path64ToRing(h))
		}
	}

	return Polygon{Pieces: pieces}
}

// polygonFromTree reconstructs a Polygon from a clipper2 PolyTree64, the
// shape the *Tree boolean-op variants return. Top-level non-hole children
// become pieces; their direct hole children become that piece's holes.
// Deeper nesting (an island inside a hole) is flattened into a sibling
// piece rather than represented as a nested hole-in-hole, since no planner
// in this pipeline needs more than one level of hole.
func polygonFromTree(tree *clipper.PolyTree64) Polygon {
	var pieces []Piece
	for _, child := range tree.Children() {
		collectPiece(child, &pieces)
	}
	return Polygon{Pieces: pieces}
}

func collectPiece(node *clipper.PolyPath64, pieces *[]Piece) {
	if node.IsHole() {
		return
	}
	piece := Piece{Outer: path64ToRing(node.Polygon())}
	for _, child := range node.Children() {
		if child.IsHole() {
			piece.Holes = append(piece.Holes, path64ToRing(child.Polygon()))
			for _, grandchild := range child.Children() {
				collectPiece(grandchild, pieces)
			}
		} else {
			collectPiece(child, pieces)
		}
	}
	*pieces = append(*pieces, piece)
}
