// Package validate checks generated toolpaths against a machine envelope
// before any G-code is written: travel limits, spindle range, and feed
// rates. Validation is advisory; it reports issues and never fixes the
// toolpath.
package validate

import (
	"fmt"

	"github.com/gomill/pathpilot/internal/machine"
	"github.com/gomill/pathpilot/internal/toolpath"
)

// Severity distinguishes refusal-worthy problems from advisory ones.
type Severity int

const (
	// Error marks a toolpath that would crash an axis or stall the
	// spindle; callers should refuse to emit G-code.
	Error Severity = iota
	// Warning marks a condition worth surfacing but safe to run, such as
	// a feed above the machine's rated maximum (PathPilot clamps it).
	Warning
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Issue is one validation problem. Point, when set, is the offending
// toolpath point for diagnosis.
type Issue struct {
	Severity Severity
	Message  string
	Point    *toolpath.Point
}

// Result collects every issue found across a set of toolpaths.
type Result struct {
	Issues []Issue
}

// HasErrors reports whether any issue has Error severity.
func (r Result) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == Error {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any issue has Warning severity.
func (r Result) HasWarnings() bool {
	for _, i := range r.Issues {
		if i.Severity == Warning {
			return true
		}
	}
	return false
}

// IsOK reports whether validation found nothing at all.
func (r Result) IsOK() bool {
	return len(r.Issues) == 0
}

// Check inspects toolpaths against env at the given spindle speed.
//
// Errors: rpm outside the spindle range; any point outside axis travel.
// Warnings: a point's feed above the machine maximum; every toolpath
// empty (no G-code would be generated).
func Check(toolpaths []toolpath.Toolpath, env machine.Envelope, rpm int) Result {
	var result Result

	if rpm < env.RPMMin {
		result.Issues = append(result.Issues, Issue{
			Severity: Error,
			Message:  fmt.Sprintf("RPM %d below machine minimum (%d)", rpm, env.RPMMin),
		})
	}
	if rpm > env.RPMMax {
		result.Issues = append(result.Issues, Issue{
			Severity: Error,
			Message:  fmt.Sprintf("RPM %d above machine maximum (%d)", rpm, env.RPMMax),
		})
	}

	allEmpty := true
	for _, tp := range toolpaths {
		if tp.IsEmpty() {
			continue
		}
		allEmpty = false

		for _, seg := range tp.Segments {
			for i := range seg.Points {
				pt := &seg.Points[i]

				if pt.X < env.XMin || pt.X > env.XMax {
					result.Issues = append(result.Issues, Issue{
						Severity: Error,
						Message:  fmt.Sprintf("X=%.4f outside travel [%g, %g]", pt.X, env.XMin, env.XMax),
						Point:    pt,
					})
				}
				if pt.Y < env.YMin || pt.Y > env.YMax {
					result.Issues = append(result.Issues, Issue{
						Severity: Error,
						Message:  fmt.Sprintf("Y=%.4f outside travel [%g, %g]", pt.Y, env.YMin, env.YMax),
						Point:    pt,
					})
				}
				if pt.Z < env.ZMin || pt.Z > env.ZMax {
					result.Issues = append(result.Issues, Issue{
						Severity: Error,
						Message:  fmt.Sprintf("Z=%.4f outside travel [%g, %g]", pt.Z, env.ZMin, env.ZMax),
						Point:    pt,
					})
				}

				if pt.HasFeed && pt.Feed > env.MaxFeedInPerMin {
					result.Issues = append(result.Issues, Issue{
						Severity: Warning,
						Message:  fmt.Sprintf("feed %.1f exceeds machine max (%.1f)", pt.Feed, env.MaxFeedInPerMin),
						Point:    pt,
					})
				}
			}
		}
	}

	if allEmpty {
		result.Issues = append(result.Issues, Issue{
			Severity: Warning,
			Message:  "all toolpaths are empty - no G-code will be generated",
		})
	}

	return result
}
