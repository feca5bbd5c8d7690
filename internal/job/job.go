// Package job ties a mesh, a stock blank, and an ordered operation list
// together and orchestrates the slicing/planning pipeline across them.
package job

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gomill/pathpilot/internal/geometry"
	"github.com/gomill/pathpilot/internal/mesh"
	"github.com/gomill/pathpilot/internal/operation"
	"github.com/gomill/pathpilot/internal/planner"
	"github.com/gomill/pathpilot/internal/slicer"
	"github.com/gomill/pathpilot/internal/stock"
	"github.com/gomill/pathpilot/internal/toolpath"
	"github.com/gomill/pathpilot/internal/units"
)

// MissingInputError reports a pipeline run requested before a required
// input was set on the job.
type MissingInputError struct {
	What string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %s", e.What)
}

// Job is a complete CAM job: part mesh, stock blank, and the operations
// that cut the one out of the other. Mesh and Stock are shared by every
// operation; the mesh is positioned once (PlaceMesh) and read-only after
// that.
type Job struct {
	ID         string
	Name       string
	Units      units.System
	Mesh       mesh.Mesh
	Stock      stock.Stock
	HasStock   bool
	Operations []operation.Operation

	// Progress, when set, is called after each operation finishes
	// planning with the cumulative and total number of Z levels across
	// the whole job.
	Progress func(levelsDone, levelsTotal int)
}

// NewJob constructs an empty inch-mode job with a fresh correlation ID.
func NewJob(name string) *Job {
	return &Job{
		ID:    uuid.NewString()[:8],
		Name:  name,
		Units: units.Inch,
	}
}

// SetStock attaches the stock blank.
func (j *Job) SetStock(s stock.Stock) {
	j.Stock = s
	j.HasStock = true
}

// PlaceMesh positions m for machining and attaches it: the mesh is
// translated so its lower X/Y corner sits at (margin, margin) and its top
// face at Z=0, matching the stock convention of z-top = 0 with cuts at
// negative Z. This is the single mesh mutation in a job's lifetime; the
// translated mesh is treated as read-only afterwards.
func (j *Job) PlaceMesh(m mesh.Mesh, margin float64) error {
	min, max, ok := m.Bounds()
	if !ok {
		return &MissingInputError{What: "mesh has no triangles"}
	}
	j.Mesh = m.Translate(margin-min.X, margin-min.Y, -max.Z)
	return nil
}

// ComputeToolpaths runs every operation in declaration order and returns
// one toolpath per operation, annotated with the operation's tool number
// and name. Fails before planning anything if the mesh or stock is unset
// or an operation's parameters are invalid.
func (j *Job) ComputeToolpaths() ([]toolpath.Toolpath, error) {
	if j.Mesh == nil {
		return nil, &MissingInputError{What: "no model loaded"}
	}
	if !j.HasStock {
		return nil, &MissingInputError{What: "stock not defined"}
	}

	stockPoly := geometry.Rectangle(j.Stock.Bounds2D())

	// Resolve every operation's levels up front so progress can report
	// against the whole job, and parameter errors surface before any
	// planning work is done.
	allLevels := make([][]float64, len(j.Operations))
	levelsTotal := 0
	for i, op := range j.Operations {
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("operation %q: %w", op.Name, err)
		}
		zLevels, err := slicer.ComputeZLevels(op.ZTop, op.ZBottom, op.StepDown)
		if err != nil {
			return nil, fmt.Errorf("operation %q: %w", op.Name, err)
		}
		allLevels[i] = zLevels
		levelsTotal += len(zLevels)
	}

	var toolpaths []toolpath.Toolpath
	levelsDone := 0
	for i, op := range j.Operations {
		zLevels := allLevels[i]
		contours := slicer.Slice(j.Mesh, zLevels)

		var tp toolpath.Toolpath
		var err error
		switch op.Strategy {
		case operation.Roughing:
			tp, err = planner.Roughing(stockPoly, contours, zLevels, op)
		case operation.Finishing:
			tp, err = planner.Finishing(contours, zLevels, op, 0)
		default:
			err = fmt.Errorf("unknown strategy %v", op.Strategy)
		}
		if err != nil {
			return nil, fmt.Errorf("operation %q: %w", op.Name, err)
		}

		tp.ToolNumber = op.ToolNumber
		tp.OperationName = op.Name
		toolpaths = append(toolpaths, tp)

		levelsDone += len(zLevels)
		if j.Progress != nil {
			j.Progress(levelsDone, levelsTotal)
		}
	}

	return toolpaths, nil
}
