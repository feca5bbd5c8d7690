// Package gcode lowers typed toolpaths into Tormach PathPilot G-code
// text: a fixed preamble, a modal-suppressed motion body, and a fixed
// postamble, plus the line-level formatting helpers those blocks share.
package gcode

import (
	"strconv"
	"strings"
)

// FormatNumber renders v with up to decimals fractional digits, trailing
// zeros and a trailing decimal point stripped, so "1.5000" emits as "1.5"
// and "2.0000" as "2". PathPilot accepts both but the shorter form is what
// its own conversational generator writes.
func FormatNumber(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Coord formats an axis coordinate to 4 decimals.
func Coord(v float64) string {
	return FormatNumber(v, 4)
}

// FeedRate formats a feed value to 1 decimal.
func FeedRate(v float64) string {
	return FormatNumber(v, 1)
}

// Comment wraps text in a PathPilot parenthetical comment, stripping any
// parentheses in the source so the comment cannot terminate early.
func Comment(text string) string {
	cleaned := strings.NewReplacer("(", "", ")", "").Replace(text)
	return "(" + cleaned + ")"
}
