package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomill/pathpilot/internal/geometry"
	"github.com/gomill/pathpilot/internal/operation"
	"github.com/gomill/pathpilot/internal/toolpath"
)

func roughingOp() operation.Operation {
	return operation.Operation{
		Name:         "Roughing",
		Strategy:     operation.Roughing,
		ToolNumber:   1,
		ToolDiameter: 0.5,
		ZTop:         0,
		ZBottom:      -0.25,
		StepDown:     0.05,
		FeedXY:       20,
		FeedZ:        5,
		SafeZ:        0.1,
		RapidZ:       0.5,
		Roughing:     operation.RoughingParams{StepOverFraction: 0.4},
	}
}

func centeredPart() geometry.Polygon {
	return geometry.Rectangle(0.75, 0.75, 1.25, 1.25)
}

func TestRoughingSingleLevel(t *testing.T) {
	stock := geometry.Rectangle(0, 0, 2, 2)
	tp, err := Roughing(stock, []geometry.Polygon{centeredPart()}, []float64{-0.05}, roughingOp())
	require.NoError(t, err)
	require.False(t, tp.IsEmpty())

	first := tp.Segments[0].Points[0]
	assert.Equal(t, toolpath.Rapid, first.Class)
	assert.InDelta(t, 0.1, first.Z, 1e-9)

	plunges, feeds := 0, 0
	for _, seg := range tp.Segments {
		for _, p := range seg.Points {
			switch p.Class {
			case toolpath.Plunge:
				plunges++
				assert.InDelta(t, -0.05, p.Z, 1e-9)
				assert.Equal(t, 5.0, p.Feed)
			case toolpath.Feed:
				feeds++
				assert.InDelta(t, -0.05, p.Z, 1e-9)
				assert.Equal(t, 20.0, p.Feed)
			}
		}
	}
	assert.Greater(t, plunges, 0)
	assert.Greater(t, feeds, 0)
}

func TestRoughingSegmentsEndWithRetractAtSafeZ(t *testing.T) {
	stock := geometry.Rectangle(0, 0, 2, 2)
	tp, err := Roughing(stock, []geometry.Polygon{centeredPart()}, []float64{-0.05, -0.1}, roughingOp())
	require.NoError(t, err)

	for _, seg := range tp.Segments {
		require.NotEmpty(t, seg.Points)
		last := seg.Points[len(seg.Points)-1]
		assert.Equal(t, toolpath.Retract, last.Class)
		assert.InDelta(t, 0.1, last.Z, 1e-9)
	}
}

func TestRoughingReusesLastContourForDeeperLevels(t *testing.T) {
	stock := geometry.Rectangle(0, 0, 2, 2)
	levels := []float64{-0.05, -0.1, -0.15}
	tp, err := Roughing(stock, []geometry.Polygon{centeredPart()}, levels, roughingOp())
	require.NoError(t, err)

	require.Len(t, tp.Segments, 3)
	deepest := tp.Segments[len(tp.Segments)-1]
	assert.InDelta(t, -0.15, deepest.ZLevel, 1e-9)
	assert.NotEmpty(t, deepest.Points)
}

func TestRoughingFeedsOnlyAtRequestedLevels(t *testing.T) {
	stock := geometry.Rectangle(0, 0, 2, 2)
	levels := []float64{-0.05, -0.1}
	tp, err := Roughing(stock, []geometry.Polygon{centeredPart()}, levels, roughingOp())
	require.NoError(t, err)

	for _, seg := range tp.Segments {
		for _, p := range seg.Points {
			if p.Class == toolpath.Feed {
				assert.Contains(t, levels, p.Z)
			}
		}
	}
}

func TestRoughingEmptyWhenPartCoversStock(t *testing.T) {
	stock := geometry.Rectangle(0, 0, 1, 1)
	part := geometry.Rectangle(-1, -1, 2, 2)
	tp, err := Roughing(stock, []geometry.Polygon{part}, []float64{-0.05}, roughingOp())
	require.NoError(t, err)
	assert.True(t, tp.IsEmpty())
}

func TestRoughingNoContoursIsError(t *testing.T) {
	stock := geometry.Rectangle(0, 0, 2, 2)
	_, err := Roughing(stock, nil, []float64{-0.05}, roughingOp())
	assert.Error(t, err)
}

func TestRoughingZigzagAlternatesDirection(t *testing.T) {
	// With no part at all, every raster line clips to a full-width run;
	// consecutive runs must start at opposite ends of the stock.
	stock := geometry.Rectangle(0, 0, 2, 2)
	op := roughingOp()
	tp, err := Roughing(stock, []geometry.Polygon{{}}, []float64{-0.05}, op)
	require.NoError(t, err)
	require.False(t, tp.IsEmpty())

	// Collect the X coordinate of each plunge (the start of each run).
	var startX []float64
	for _, p := range tp.Segments[0].Points {
		if p.Class == toolpath.Plunge {
			startX = append(startX, p.X)
		}
	}
	require.Greater(t, len(startX), 2)
	assert.NotEqual(t, startX[0], startX[1], "adjacent raster runs start at the same end")
}
