// Package planner turns a job's sliced part contours into cutting
// toolpaths: roughing.go fills the machinable region at each Z level with
// a raster zigzag, finishing.go traces the part's contour at each level.
package planner

import (
	"fmt"

	"github.com/gomill/pathpilot/internal/geometry"
	"github.com/gomill/pathpilot/internal/operation"
	"github.com/gomill/pathpilot/internal/raster"
	"github.com/gomill/pathpilot/internal/toolpath"
)

// Roughing generates a raster-zigzag pocket-roughing toolpath: at each Z
// level the part contour (offset outward by tool radius plus finish
// allowance) is subtracted from the stock footprint, the remaining
// machinable region is filled with parallel raster lines, and adjacent
// lines are chained in alternating direction to avoid unnecessary air
// cuts. contours holds one part cross-section per zLevels entry; if it is
// shorter than zLevels, its last entry is reused for the remaining (deeper)
// levels, matching a part whose contour stopped changing before the
// bottom of the cut.
func Roughing(stock geometry.Polygon, contours []geometry.Polygon, zLevels []float64, op operation.Operation) (toolpath.Toolpath, error) {
	if len(contours) == 0 {
		return toolpath.Toolpath{}, fmt.Errorf("roughing: no part contours supplied")
	}

	tp := toolpath.Toolpath{ToolNumber: op.ToolNumber, OperationName: op.Name}
	offset := op.ToolRadius() + op.Roughing.FinishAllowance
	stepOver := op.StepOver()

	for i, z := range zLevels {
		idx := i
		if idx >= len(contours) {
			idx = len(contours) - 1
		}
		exclusion := geometry.Offset(contours[idx], offset)
		machinable := geometry.Difference(stock, exclusion)
		if machinable.IsEmpty() {
			continue
		}

		seg := rasterZigzagAtLevel(machinable, z, stepOver, op)
		if len(seg.Points) > 0 {
			tp.Segments = append(tp.Segments, seg)
		}
	}

	return tp, nil
}

// rasterZigzagAtLevel fills machinable with raster lines at z, clips each
// line to the region, reverses every other line to chain without doubling
// back across the whole region, and stitches retract/rapid/plunge
// transitions between each disconnected run.
func rasterZigzagAtLevel(machinable geometry.Polygon, z, stepOver float64, op operation.Operation) toolpath.Segment {
	seg := toolpath.Segment{ZLevel: z, Label: fmt.Sprintf("rough z=%.4f", z)}

	xmin, ymin, xmax, ymax, ok := machinable.Bounds()
	if !ok {
		return seg
	}
	rasters := raster.Lines(xmin, xmax, ymin, ymax, stepOver, op.Roughing.RasterAngle)

	var runs [][]geometry.Point
	for i, line := range rasters {
		clipped := geometry.ClipLine(machinable, line.A, line.B)
		for _, c := range clipped {
			pts := []geometry.Point{c.A, c.B}
			if i%2 == 1 {
				pts[0], pts[1] = pts[1], pts[0]
			}
			runs = append(runs, pts)
		}
	}

	first := true
	for _, run := range runs {
		if len(run) == 0 {
			continue
		}
		start := run[0]

		if first {
			seg.Points = append(seg.Points,
				toolpath.Point{X: start.X, Y: start.Y, Z: op.SafeZ, Class: toolpath.Rapid},
				toolpath.Point{X: start.X, Y: start.Y, Z: z, Class: toolpath.Plunge, Feed: op.FeedZ, HasFeed: true},
			)
			first = false
		} else {
			last := seg.Points[len(seg.Points)-1]
			seg.Points = append(seg.Points,
				toolpath.Point{X: last.X, Y: last.Y, Z: op.SafeZ, Class: toolpath.Retract},
				toolpath.Point{X: start.X, Y: start.Y, Z: op.SafeZ, Class: toolpath.Rapid},
				toolpath.Point{X: start.X, Y: start.Y, Z: z, Class: toolpath.Plunge, Feed: op.FeedZ, HasFeed: true},
			)
		}

		for _, p := range run[1:] {
			seg.Points = append(seg.Points, toolpath.Point{X: p.X, Y: p.Y, Z: z, Class: toolpath.Feed, Feed: op.FeedXY, HasFeed: true})
		}
	}

	if len(seg.Points) > 0 {
		last := seg.Points[len(seg.Points)-1]
		seg.Points = append(seg.Points, toolpath.Point{X: last.X, Y: last.Y, Z: op.SafeZ, Class: toolpath.Retract})
	}

	return seg
}
