package gcode

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gomill/pathpilot/internal/toolpath"
	"github.com/gomill/pathpilot/internal/units"
)

// PostProcessorConfig drives the PathPilot emitter. ToolNumber and RPM
// apply program-wide; RapidZ is the clearance height the emitter rapids to
// between operations. SafeZ is carried in the config but not read by the
// emitter (the planners have already baked safe-Z retracts into the
// toolpaths themselves).
type PostProcessorConfig struct {
	Units      units.System
	ToolNumber int
	RPM        int
	SafeZ      float64
	RapidZ     float64
	Coolant    bool
}

// DefaultConfig returns the configuration the CLI starts from: inch mode,
// T1, 3000 RPM, 0.1/0.5 clearances, coolant off.
func DefaultConfig() PostProcessorConfig {
	return PostProcessorConfig{
		Units:      units.Inch,
		ToolNumber: 1,
		RPM:        3000,
		SafeZ:      0.1,
		RapidZ:     0.5,
	}
}

// PathPilotPostProcessor lowers toolpaths to PathPilot-dialect G-code.
// The emitter is stateless between calls; all modal state lives in the
// per-invocation cursor.
type PathPilotPostProcessor struct {
	Config PostProcessorConfig
}

// NewPathPilotPostProcessor wraps cfg in an emitter.
func NewPathPilotPostProcessor(cfg PostProcessorConfig) *PathPilotPostProcessor {
	return &PathPilotPostProcessor{Config: cfg}
}

// cursor tracks the modal machine state across emitted lines so that only
// axis words that changed since the previous position are written, and an
// F word only appears on the first move of a contiguous feed run or when
// the feed value changes.
type cursor struct {
	x, y, z   float64
	hasPos    bool
	feed      float64
	inFeedRun bool
}

// move emits one G0/G1 line for p, or nothing when p does not change any
// axis (a degenerate point the planners occasionally produce at run
// boundaries).
func (c *cursor) move(p toolpath.Point) (string, bool) {
	var words []string

	cutting := p.Class == toolpath.Feed || p.Class == toolpath.Plunge
	if cutting {
		words = append(words, "G1")
	} else {
		words = append(words, "G0")
	}

	if !c.hasPos || p.X != c.x {
		words = append(words, "X"+Coord(p.X))
	}
	if !c.hasPos || p.Y != c.y {
		words = append(words, "Y"+Coord(p.Y))
	}
	if !c.hasPos || p.Z != c.z {
		words = append(words, "Z"+Coord(p.Z))
	}

	if len(words) == 1 {
		return "", false
	}

	if cutting && p.HasFeed {
		if !c.inFeedRun || p.Feed != c.feed {
			words = append(words, "F"+FeedRate(p.Feed))
		}
		c.feed = p.Feed
		c.inFeedRun = true
	} else if !cutting {
		c.inFeedRun = false
	}

	c.x, c.y, c.z = p.X, p.Y, p.Z
	c.hasPos = true

	return strings.Join(words, " "), true
}

// GetLines renders the complete program as an in-memory line sequence:
// preamble, one commented motion block per non-empty toolpath, postamble.
func (pp *PathPilotPostProcessor) GetLines(toolpaths []toolpath.Toolpath) []string {
	cfg := pp.Config

	toolNum := cfg.ToolNumber
	for _, tp := range toolpaths {
		if tp.ToolNumber > 0 {
			toolNum = tp.ToolNumber
			break
		}
	}

	lines := []string{
		Comment(fmt.Sprintf("PathPilot program - tool T%d", toolNum)),
		"G17 G40 G49 G54 G80 G90 G94",
		cfg.Units.GCodeModal(),
		"G64",
		"M5",
		"G30",
		fmt.Sprintf("T%d M6", toolNum),
		fmt.Sprintf("G43 H%d", toolNum),
		fmt.Sprintf("S%d M3", cfg.RPM),
	}
	if cfg.Coolant {
		lines = append(lines, "M8")
	}

	cur := cursor{}
	emittedMotion := false
	for i, tp := range toolpaths {
		if tp.IsEmpty() {
			continue
		}
		if emittedMotion {
			// Clear the work between operations at the taller rapid
			// height before traversing to the next region.
			lines = append(lines, "G0 Z"+Coord(cfg.RapidZ))
			cur.z = cfg.RapidZ
			cur.inFeedRun = false
		}
		name := tp.OperationName
		if name == "" {
			name = fmt.Sprintf("operation %d", i+1)
		}
		lines = append(lines, Comment("Operation: "+name))

		for _, seg := range tp.Segments {
			for _, p := range seg.Points {
				if line, ok := cur.move(p); ok {
					lines = append(lines, line)
					emittedMotion = true
				}
			}
		}
	}

	lines = append(lines,
		"M5",
		"M9",
		"G30",
		"M30",
		"%",
	)
	return lines
}

// Generate renders the program and writes it to path, one command per
// line, newline-terminated including the final line.
func (pp *PathPilotPostProcessor) Generate(toolpaths []toolpath.Toolpath, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for i, line := range pp.GetLines(toolpaths) {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write line %d: %w", i, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return nil
}
