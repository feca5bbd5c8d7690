package job

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gomill/pathpilot/internal/mesh"
	"github.com/gomill/pathpilot/internal/operation"
	"github.com/gomill/pathpilot/internal/stock"
	"github.com/gomill/pathpilot/internal/tool"
	"github.com/gomill/pathpilot/internal/units"
)

// Descriptor is the on-disk JSON form of a job. Mesh-file decoding is out
// of scope for this pipeline, so the part is described as a primitive
// (box or cylinder); a host with a real mesh loader builds the Job
// directly instead of going through a descriptor.
type Descriptor struct {
	Name        string                `json:"name"`
	Units       string                `json:"units"`
	Machine     string                `json:"machine"`
	ToolLibrary string                `json:"tool_library,omitempty"`
	StockMargin float64               `json:"stock_margin"`
	Mesh        MeshDescriptor        `json:"mesh"`
	Stock       *StockDescriptor      `json:"stock,omitempty"`
	Operations  []OperationDescriptor `json:"operations"`
}

// MeshDescriptor names a primitive part shape.
type MeshDescriptor struct {
	Type     string  `json:"type"` // "box" or "cylinder"
	XSize    float64 `json:"x_size,omitempty"`
	YSize    float64 `json:"y_size,omitempty"`
	ZSize    float64 `json:"z_size,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Segments int     `json:"segments,omitempty"`
}

// StockDescriptor overrides the auto-sized stock. When absent the stock
// is derived from the mesh bounds plus the job's stock margin.
type StockDescriptor struct {
	XSize   float64 `json:"x_size"`
	YSize   float64 `json:"y_size"`
	ZSize   float64 `json:"z_size"`
	XOrigin float64 `json:"x_origin"`
	YOrigin float64 `json:"y_origin"`
	ZTop    float64 `json:"z_top"`
}

// OperationDescriptor is one operation's JSON form. Zero-valued feeds and
// RPM fall back to the referenced tool's library defaults.
type OperationDescriptor struct {
	Name             string  `json:"name"`
	Strategy         string  `json:"strategy"` // "roughing" or "finishing"
	Tool             int     `json:"tool"`
	ZTop             float64 `json:"z_top"`
	ZBottom          float64 `json:"z_bottom"`
	StepDown         float64 `json:"step_down"`
	StepOverFraction float64 `json:"step_over_fraction,omitempty"`
	FinishAllowance  float64 `json:"finish_allowance,omitempty"`
	RasterAngle      float64 `json:"raster_angle,omitempty"`
	RPM              int     `json:"rpm,omitempty"`
	FeedXY           float64 `json:"feed_xy,omitempty"`
	FeedZ            float64 `json:"feed_z,omitempty"`
	SafeZ            float64 `json:"safe_z"`
	RapidZ           float64 `json:"rapid_z"`
}

// LoadDescriptor reads and decodes a job descriptor file.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	return &d, nil
}

// BuildJob materialises the descriptor into a runnable Job: constructs
// the primitive mesh, places it on the stock origin, sizes the stock,
// and resolves each operation's tool against lib.
func (d *Descriptor) BuildJob(lib *tool.Library) (*Job, error) {
	j := NewJob(d.Name)

	switch d.Units {
	case "", "inch":
		j.Units = units.Inch
	case "mm":
		j.Units = units.MM
	default:
		return nil, fmt.Errorf("unknown units %q", d.Units)
	}

	m, err := d.Mesh.build()
	if err != nil {
		return nil, err
	}
	if err := j.PlaceMesh(m, d.StockMargin); err != nil {
		return nil, err
	}

	if d.Stock != nil {
		j.SetStock(stock.Stock{
			XSize: d.Stock.XSize, YSize: d.Stock.YSize, ZSize: d.Stock.ZSize,
			XOrigin: d.Stock.XOrigin, YOrigin: d.Stock.YOrigin, ZTop: d.Stock.ZTop,
		})
	} else {
		ext := j.Mesh.Extents()
		j.SetStock(stock.Stock{
			XSize: ext.X + 2*d.StockMargin,
			YSize: ext.Y + 2*d.StockMargin,
			ZSize: ext.Z,
		})
	}

	for _, od := range d.Operations {
		op, err := od.build(lib)
		if err != nil {
			return nil, err
		}
		j.Operations = append(j.Operations, op)
	}

	return j, nil
}

func (md MeshDescriptor) build() (mesh.Mesh, error) {
	switch md.Type {
	case "box":
		if md.XSize <= 0 || md.YSize <= 0 || md.ZSize <= 0 {
			return nil, fmt.Errorf("box mesh requires positive x_size, y_size, z_size")
		}
		return mesh.Box(md.XSize, md.YSize, md.ZSize), nil
	case "cylinder":
		if md.Radius <= 0 || md.Height <= 0 {
			return nil, fmt.Errorf("cylinder mesh requires positive radius and height")
		}
		segments := md.Segments
		if segments == 0 {
			segments = 64
		}
		return mesh.Cylinder(md.Radius, md.Height, segments), nil
	default:
		return nil, fmt.Errorf("unknown mesh type %q", md.Type)
	}
}

func (od OperationDescriptor) build(lib *tool.Library) (operation.Operation, error) {
	t, ok := lib.Get(od.Tool)
	if !ok {
		return operation.Operation{}, fmt.Errorf("operation %q: tool T%d not in library", od.Name, od.Tool)
	}

	var strategy operation.Strategy
	switch od.Strategy {
	case "roughing":
		strategy = operation.Roughing
	case "finishing":
		strategy = operation.Finishing
	default:
		return operation.Operation{}, fmt.Errorf("operation %q: unknown strategy %q", od.Name, od.Strategy)
	}

	feedXY := od.FeedXY
	if feedXY == 0 {
		feedXY = t.DefaultFeedXY
	}
	feedZ := od.FeedZ
	if feedZ == 0 {
		feedZ = t.DefaultFeedZ
	}

	op := operation.Operation{
		Name:         od.Name,
		Strategy:     strategy,
		ToolNumber:   t.Number,
		ToolDiameter: t.Diameter,
		ZTop:         od.ZTop,
		ZBottom:      od.ZBottom,
		StepDown:     od.StepDown,
		FeedXY:       feedXY,
		FeedZ:        feedZ,
		SafeZ:        od.SafeZ,
		RapidZ:       od.RapidZ,
		Roughing: operation.RoughingParams{
			StepOverFraction: od.StepOverFraction,
			FinishAllowance:  od.FinishAllowance,
			RasterAngle:      od.RasterAngle,
		},
	}
	return op, nil
}

// RPMFor resolves the spindle speed for the program from the first
// operation that yields one: its explicit RPM, else its tool's library
// default. Returns 3000 when no operation yields an RPM.
func (d *Descriptor) RPMFor(lib *tool.Library) int {
	for _, od := range d.Operations {
		if od.RPM > 0 {
			return od.RPM
		}
		if t, ok := lib.Get(od.Tool); ok && t.DefaultRPM > 0 {
			return t.DefaultRPM
		}
	}
	return 3000
}
