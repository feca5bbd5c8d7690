// Package raster generates parallel scan lines covering a bounding box,
// the seed geometry the roughing planner clips against the machinable
// region at every Z-level.
package raster

import (
	"math"

	"github.com/gomill/pathpilot/internal/geometry"
)

// Line is one raster scan line before clipping against any region.
type Line struct {
	A, B geometry.Point
}

// eps guards the inclusive upper bound on the horizontal-raster loop
// against floating point step accumulation landing just short of ymax.
const eps = 1e-9

// Lines returns the parallel raster lines covering [xmin,xmax] x
// [ymin,ymax] at the given step-over, rotated by angleDeg (0 = horizontal
// lines running along X). For angleDeg == 0 lines run exactly edge to edge
// of the box; for any other angle lines are over-extended past the box
// diagonal so that clipping against an arbitrarily rotated region inside
// the box always has enough line to work with.
func Lines(xmin, xmax, ymin, ymax, stepOver, angleDeg float64) []Line {
	if angleDeg == 0 {
		var lines []Line
		for y := ymin; y <= ymax+eps; y += stepOver {
			lines = append(lines, Line{A: geometry.Point{X: xmin, Y: y}, B: geometry.Point{X: xmax, Y: y}})
		}
		return lines
	}

	diagonal := math.Hypot(xmax-xmin, ymax-ymin)
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2

	angleRad := angleDeg * math.Pi / 180
	cosA, sinA := math.Cos(angleRad), math.Sin(angleRad)
	perpDX, perpDY := -sinA, cosA

	n := int(math.Ceil(diagonal/stepOver)) + 1
	lines := make([]Line, 0, 2*n+1)
	for i := -n; i <= n; i++ {
		offset := float64(i) * stepOver
		lx := cx + offset*perpDX
		ly := cy + offset*perpDY
		p1 := geometry.Point{X: lx - cosA*diagonal, Y: ly - sinA*diagonal}
		p2 := geometry.Point{X: lx + cosA*diagonal, Y: ly + sinA*diagonal}
		lines = append(lines, Line{A: p1, B: p2})
	}
	return lines
}
