package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomill/pathpilot/internal/geometry"
	"github.com/gomill/pathpilot/internal/operation"
	"github.com/gomill/pathpilot/internal/toolpath"
)

func finishingOp() operation.Operation {
	return operation.Operation{
		Name:         "Finishing",
		Strategy:     operation.Finishing,
		ToolNumber:   2,
		ToolDiameter: 0.5,
		ZTop:         0,
		ZBottom:      -0.25,
		StepDown:     0.05,
		FeedXY:       15,
		FeedZ:        4,
		SafeZ:        0.1,
		RapidZ:       0.5,
	}
}

func TestFinishingClosedLoop(t *testing.T) {
	part := geometry.Rectangle(0.75, 0.75, 1.25, 1.25)
	tp, err := Finishing([]geometry.Polygon{part}, []float64{-0.05}, finishingOp(), 0)
	require.NoError(t, err)
	require.False(t, tp.IsEmpty())

	for _, seg := range tp.Segments {
		var plunge *toolpath.Point
		var lastFeed *toolpath.Point
		for i := range seg.Points {
			p := &seg.Points[i]
			switch p.Class {
			case toolpath.Plunge:
				plunge = p
			case toolpath.Feed:
				lastFeed = p
			}
		}
		require.NotNil(t, plunge)
		require.NotNil(t, lastFeed)
		assert.InDelta(t, plunge.X, lastFeed.X, 1e-6, "loop not closed in X")
		assert.InDelta(t, plunge.Y, lastFeed.Y, 1e-6, "loop not closed in Y")
	}
}

func TestFinishingFeedsAtExactLevel(t *testing.T) {
	part := geometry.Rectangle(0.75, 0.75, 1.25, 1.25)
	levels := []float64{-0.05, -0.1}
	tp, err := Finishing([]geometry.Polygon{part}, levels, finishingOp(), 0)
	require.NoError(t, err)

	for _, seg := range tp.Segments {
		for _, p := range seg.Points {
			if p.Class == toolpath.Feed {
				assert.Equal(t, seg.ZLevel, p.Z)
			}
		}
	}
}

func TestFinishingPlungesCarryPlungeFeed(t *testing.T) {
	part := geometry.Rectangle(0.75, 0.75, 1.25, 1.25)
	tp, err := Finishing([]geometry.Polygon{part}, []float64{-0.05}, finishingOp(), 0)
	require.NoError(t, err)

	for _, seg := range tp.Segments {
		for _, p := range seg.Points {
			if p.Class == toolpath.Plunge {
				assert.Equal(t, 4.0, p.Feed)
			}
		}
	}
}

func TestFinishingCenterlineOffsetByToolRadius(t *testing.T) {
	part := geometry.Rectangle(0.75, 0.75, 1.25, 1.25)
	op := finishingOp()
	tp, err := Finishing([]geometry.Polygon{part}, []float64{-0.05}, op, 0)
	require.NoError(t, err)
	require.False(t, tp.IsEmpty())

	// Every cutting point must sit at least the tool radius away from
	// the part boundary; for a rectangle offset with round joins the
	// nearest approach is along the edge mid-spans.
	radius := op.ToolRadius()
	for _, seg := range tp.Segments {
		for _, p := range seg.Points {
			if p.Class != toolpath.Feed {
				continue
			}
			dx := math.Max(math.Max(0.75-p.X, p.X-1.25), 0)
			dy := math.Max(math.Max(0.75-p.Y, p.Y-1.25), 0)
			dist := math.Hypot(dx, dy)
			assert.GreaterOrEqual(t, dist, radius-1e-4)
		}
	}
}

func TestFinishingEmptyContourYieldsEmptyToolpath(t *testing.T) {
	tp, err := Finishing([]geometry.Polygon{{}}, []float64{-0.05}, finishingOp(), 0)
	require.NoError(t, err)
	assert.True(t, tp.IsEmpty())
}

func TestFinishingSpringPassExtraOffset(t *testing.T) {
	part := geometry.Rectangle(0.75, 0.75, 1.25, 1.25)
	op := finishingOp()

	base, err := Finishing([]geometry.Polygon{part}, []float64{-0.05}, op, 0)
	require.NoError(t, err)
	spring, err := Finishing([]geometry.Polygon{part}, []float64{-0.05}, op, 0.01)
	require.NoError(t, err)

	bx, _, _, _, _, _, ok := base.Bounds()
	require.True(t, ok)
	sx, _, _, _, _, _, ok := spring.Bounds()
	require.True(t, ok)
	assert.Less(t, sx, bx, "spring pass should trace a larger loop")
}
