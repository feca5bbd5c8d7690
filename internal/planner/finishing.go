package planner

import (
	"fmt"

	"github.com/gomill/pathpilot/internal/geometry"
	"github.com/gomill/pathpilot/internal/operation"
	"github.com/gomill/pathpilot/internal/toolpath"
)

// Finishing generates contour-parallel finishing passes: at each Z level
// the part contour is offset outward by the tool radius (plus any spring-
// pass extra offset) to produce the cutter centerline, and every ring of
// the result (the outer boundary and each hole) is traced as a closed
// loop. contours holds one part cross-section per zLevels entry, with the
// same reuse-the-last-entry rule as Roughing.
func Finishing(contours []geometry.Polygon, zLevels []float64, op operation.Operation, extraOffset float64) (toolpath.Toolpath, error) {
	if len(contours) == 0 {
		return toolpath.Toolpath{}, fmt.Errorf("finishing: no part contours supplied")
	}

	tp := toolpath.Toolpath{ToolNumber: op.ToolNumber, OperationName: op.Name}
	offset := op.ToolRadius() + extraOffset

	for i, z := range zLevels {
		idx := i
		if idx >= len(contours) {
			idx = len(contours) - 1
		}

		centerline := geometry.Offset(contours[idx], offset)
		if centerline.IsEmpty() {
			continue
		}

		for _, piece := range centerline.Pieces {
			if len(piece.Outer) >= 2 {
				seg := traceRing(closeRing(piece.Outer), z, op, fmt.Sprintf("finish ext z=%.4f", z))
				if len(seg.Points) > 0 {
					tp.Segments = append(tp.Segments, seg)
				}
			}
			for _, hole := range piece.Holes {
				if len(hole) < 2 {
					continue
				}
				seg := traceRing(closeRing(hole), z, op, fmt.Sprintf("finish int z=%.4f", z))
				if len(seg.Points) > 0 {
					tp.Segments = append(tp.Segments, seg)
				}
			}
		}
	}

	return tp, nil
}

func closeRing(r geometry.Ring) geometry.Ring {
	if len(r) == 0 || r[0] == r[len(r)-1] {
		return r
	}
	closed := make(geometry.Ring, len(r)+1)
	copy(closed, r)
	closed[len(r)] = r[0]
	return closed
}

// traceRing emits a rapid-plunge approach to the ring's first point, feeds
// around every remaining vertex, closes the loop back to the start if the
// ring isn't already closed, then retracts.
func traceRing(coords geometry.Ring, z float64, op operation.Operation, label string) toolpath.Segment {
	seg := toolpath.Segment{ZLevel: z, Label: label}
	if len(coords) < 2 {
		return seg
	}

	x0, y0 := coords[0].X, coords[0].Y

	seg.Points = append(seg.Points,
		toolpath.Point{X: x0, Y: y0, Z: op.SafeZ, Class: toolpath.Rapid},
		toolpath.Point{X: x0, Y: y0, Z: z, Class: toolpath.Plunge, Feed: op.FeedZ, HasFeed: true},
	)

	for _, c := range coords[1:] {
		seg.Points = append(seg.Points, toolpath.Point{X: c.X, Y: c.Y, Z: z, Class: toolpath.Feed, Feed: op.FeedXY, HasFeed: true})
	}

	last := coords[len(coords)-1]
	if last != coords[0] {
		seg.Points = append(seg.Points, toolpath.Point{X: x0, Y: y0, Z: z, Class: toolpath.Feed, Feed: op.FeedXY, HasFeed: true})
	}

	seg.Points = append(seg.Points, toolpath.Point{X: x0, Y: y0, Z: op.SafeZ, Class: toolpath.Retract})

	return seg
}
