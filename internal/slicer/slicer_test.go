package slicer

import (
	"math"
	"testing"

	"github.com/gomill/pathpilot/internal/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeZLevelsExactMultiple(t *testing.T) {
	levels, err := ComputeZLevels(0, -1, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.25, -0.5, -0.75, -1}, levels)
}

func TestComputeZLevelsPartialFinalStep(t *testing.T) {
	levels, err := ComputeZLevels(0, -1, 0.3)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.3, -0.6, -0.9, -1}, levels)
}

func TestComputeZLevelsInvalidStepDown(t *testing.T) {
	_, err := ComputeZLevels(0, -1, 0)
	require.Error(t, err)
	var ipe *InvalidParameterError
	require.ErrorAs(t, err, &ipe)
}

func TestComputeZLevelsInvalidRange(t *testing.T) {
	_, err := ComputeZLevels(-1, 0, 0.1)
	require.Error(t, err)
}

func TestSliceBoxMidHeight(t *testing.T) {
	b := mesh.Box(10, 6, 4)
	polys := Slice(b, []float64{2})
	require.Len(t, polys, 1)
	assert.False(t, polys[0].IsEmpty())

	xmin, ymin, xmax, ymax, ok := polys[0].Bounds()
	require.True(t, ok)
	assert.InDelta(t, 0, xmin, 1e-6)
	assert.InDelta(t, 0, ymin, 1e-6)
	assert.InDelta(t, 10, xmax, 1e-6)
	assert.InDelta(t, 6, ymax, 1e-6)
}

func TestSliceAboveMeshIsEmpty(t *testing.T) {
	b := mesh.Box(10, 6, 4)
	polys := Slice(b, []float64{100})
	assert.True(t, polys[0].IsEmpty())
}

func TestSliceCenteredCubeArea(t *testing.T) {
	cube := mesh.Box(1, 1, 1).Translate(-0.5, -0.5, -0.5)

	polys := Slice(cube, []float64{0})
	require.Len(t, polys, 1)
	assert.InDelta(t, 1.0, polys[0].Area(), 0.02)

	for _, z := range []float64{-1.0, 1.0} {
		missed := Slice(cube, []float64{z})
		assert.True(t, missed[0].IsEmpty(), "slice at z=%v should miss the cube", z)
	}
}

func TestSliceCylinderAreaAndCentroid(t *testing.T) {
	cyl := mesh.Cylinder(0.5, 1, 128).Translate(0, 0, -0.5)

	polys := Slice(cyl, []float64{0})
	require.Len(t, polys, 1)
	require.False(t, polys[0].IsEmpty())

	assert.InDelta(t, math.Pi*0.25, polys[0].Area(), 0.01)

	cx, cy, ok := polys[0].Centroid()
	require.True(t, ok)
	assert.InDelta(t, 0, cx, 0.01)
	assert.InDelta(t, 0, cy, 0.01)
}

func TestSliceEmptyHeightList(t *testing.T) {
	b := mesh.Box(1, 1, 1)
	polys := Slice(b, nil)
	assert.Empty(t, polys)
}

func TestComputeZLevelsFloorPassIsExact(t *testing.T) {
	levels, err := ComputeZLevels(0, -0.10, 0.03)
	require.NoError(t, err)
	assert.Equal(t, -0.10, levels[len(levels)-1])
}

func TestComputeZLevelsQuarterInchPocket(t *testing.T) {
	levels, err := ComputeZLevels(0, -0.25, 0.05)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.05, -0.10, -0.15, -0.20, -0.25}, levels)
}
