// Package machine holds the envelope profiles the validator checks
// generated toolpaths against: Tormach PathPilot mill travel limits,
// spindle speed range, and maximum feed rate.
package machine

import "fmt"

// Envelope describes one machine's working limits, all in inches.
type Envelope struct {
	Name            string
	XMin, XMax      float64
	YMin, YMax      float64
	ZMin, ZMax      float64
	RPMMin, RPMMax  int
	MaxFeedInPerMin float64
}

// PCNC440 is the Tormach PCNC 440 envelope.
var PCNC440 = Envelope{
	Name: "PCNC440",
	XMin: 0, XMax: 10,
	YMin: 0, YMax: 6.25,
	ZMin: -10, ZMax: 5,
	RPMMin: 100, RPMMax: 10000,
	MaxFeedInPerMin: 110,
}

// PCNC770 is the Tormach PCNC 770 envelope.
var PCNC770 = Envelope{
	Name: "PCNC770",
	XMin: 0, XMax: 12,
	YMin: 0, YMax: 8,
	ZMin: -10.25, ZMax: 5,
	RPMMin: 175, RPMMax: 10000,
	MaxFeedInPerMin: 110,
}

// PCNC1100 is the Tormach PCNC 1100 envelope.
var PCNC1100 = Envelope{
	Name: "PCNC1100",
	XMin: 0, XMax: 18,
	YMin: 0, YMax: 9.5,
	ZMin: -16.25, ZMax: 5,
	RPMMin: 175, RPMMax: 10000,
	MaxFeedInPerMin: 135,
}

// Profiles returns every built-in envelope, in the order they're
// typically listed in PathPilot documentation (smallest machine first).
func Profiles() []Envelope {
	return []Envelope{PCNC440, PCNC770, PCNC1100}
}

// UnknownMachineError reports a machine name with no matching envelope.
type UnknownMachineError struct {
	Name string
}

func (e *UnknownMachineError) Error() string {
	return fmt.Sprintf("unknown machine profile: %q", e.Name)
}

// Lookup resolves a machine name (case-sensitive, e.g. "PCNC440") to its
// envelope.
func Lookup(name string) (Envelope, error) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return Envelope{}, &UnknownMachineError{Name: name}
}

// Contains reports whether the point (x, y, z) lies within the envelope's
// travel limits, inclusive of the boundary.
func (e Envelope) Contains(x, y, z float64) bool {
	return x >= e.XMin && x <= e.XMax &&
		y >= e.YMin && y <= e.YMax &&
		z >= e.ZMin && z <= e.ZMax
}

// AllowsRPM reports whether rpm is within the spindle's supported range.
func (e Envelope) AllowsRPM(rpm int) bool {
	return rpm >= e.RPMMin && rpm <= e.RPMMax
}

// AllowsFeed reports whether feed (inches/minute) is within the machine's
// rated maximum.
func (e Envelope) AllowsFeed(feed float64) bool {
	return feed <= e.MaxFeedInPerMin
}
