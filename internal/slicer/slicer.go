// Package slicer turns a mesh into the stack of Z-levels a roughing or
// finishing operation cuts at, and stitches each level's raw plane
// intersection into closed 2D polygons.
package slicer

import (
	"fmt"
	"math"

	"github.com/gomill/pathpilot/internal/geometry"
	"github.com/gomill/pathpilot/internal/mesh"
)

// InvalidParameterError reports a Z-level request that cannot be
// satisfied, mirroring the taxonomy the rest of the pipeline uses for
// caller-supplied bad input.
type InvalidParameterError struct {
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter: %s", e.Message)
}

// roundDigits is the decimal precision Z-levels are rounded to, so that
// repeated floating-point subtraction cannot produce two levels that
// differ only in the 11th decimal place.
const roundDigits = 10

// ComputeZLevels returns the descending sequence of cut heights from zTop
// down to (and including) zBottom, each stepDown apart, with a final
// partial step if the span isn't an exact multiple of stepDown. zTop must
// be strictly above zBottom and stepDown must be positive.
func ComputeZLevels(zTop, zBottom, stepDown float64) ([]float64, error) {
	if stepDown <= 0 {
		return nil, &InvalidParameterError{Message: "step-down must be positive"}
	}
	if zBottom >= zTop {
		return nil, &InvalidParameterError{Message: "z-bottom must be below z-top"}
	}

	// The epsilon keeps a step that lands a hair above zBottom from
	// producing a near-duplicate of the guaranteed floor pass below.
	const eps = 1e-9
	var levels []float64
	z := zTop - stepDown
	for z > zBottom+eps {
		levels = append(levels, round(z))
		z -= stepDown
	}
	levels = append(levels, round(zBottom))
	return levels, nil
}

func round(v float64) float64 {
	p := math.Pow(10, roundDigits)
	return math.Round(v*p) / p
}

// Slice sections m at every height and stitches each height's raw
// triangle-edge crossings into a 2D polygon, one per height, in the same
// order as heights.
func Slice(m mesh.Mesh, heights []float64) []geometry.Polygon {
	sections := m.SectionMultiplane(heights)
	out := make([]geometry.Polygon, len(sections))
	for i, sec := range sections {
		out[i] = stitch(sec)
	}
	return out
}

// stitch reconstructs closed rings from a section's unordered set of edge
// segments by chaining shared endpoints, then resolves outer/hole
// classification via a union boolean op (clipper2 orients outer rings
// counter-clockwise and holes clockwise on the way out).
func stitch(sec mesh.Section) geometry.Polygon {
	rings := chain(sec.Segments)
	if len(rings) == 0 {
		return geometry.Polygon{}
	}

	acc := geometry.Polygon{}
	for _, r := range rings {
		if len(r) < 3 {
			continue
		}
		piece := geometry.Polygon{Pieces: []geometry.Piece{{Outer: r}}}
		if acc.IsEmpty() {
			acc = piece
		} else {
			acc = geometry.Union(acc, piece)
		}
	}
	return acc
}

const joinEps = 1e-6

// chain walks the unordered segment list greedily, joining segments whose
// endpoints coincide within joinEps until every segment has been consumed
// or no further join is possible. Each maximal chain that closes on itself
// becomes one output ring; chains that fail to close (an open mesh, or
// numerical noise at a vertex) are dropped since they cannot bound area.
func chain(segs []mesh.Segment2D) []geometry.Ring {
	type edge struct{ a, b mesh.Point2D }
	remaining := make([]edge, len(segs))
	for i, s := range segs {
		remaining[i] = edge{a: s.A, b: s.B}
	}

	var rings []geometry.Ring
	for len(remaining) > 0 {
		cur := remaining[0]
		remaining = remaining[1:]
		ring := []mesh.Point2D{cur.a, cur.b}

		for {
			tail := ring[len(ring)-1]
			idx := -1
			reversed := false
			for i, e := range remaining {
				if closeEnough(e.a, tail) {
					idx = i
					break
				}
				if closeEnough(e.b, tail) {
					idx = i
					reversed = true
					break
				}
			}
			if idx < 0 {
				break
			}
			e := remaining[idx]
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			if reversed {
				ring = append(ring, e.a)
			} else {
				ring = append(ring, e.b)
			}
			if closeEnough(ring[len(ring)-1], ring[0]) {
				break
			}
		}

		if closeEnough(ring[len(ring)-1], ring[0]) && len(ring) >= 4 {
			rings = append(rings, toGeometryRing(ring[:len(ring)-1]))
		}
	}
	return rings
}

func closeEnough(a, b mesh.Point2D) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy < joinEps*joinEps
}

func toGeometryRing(pts []mesh.Point2D) geometry.Ring {
	r := make(geometry.Ring, len(pts))
	for i, p := range pts {
		r[i] = geometry.Point{X: p.X, Y: p.Y}
	}
	return r
}
