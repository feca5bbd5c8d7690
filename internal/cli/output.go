package cli

import (
	"fmt"
	"os"

	"github.com/gomill/pathpilot/internal/toolpath"
	"github.com/gomill/pathpilot/internal/validate"
)

// InvalidMachineError represents an unrecognised --machine value.
type InvalidMachineError struct {
	Machine string
}

func (e *InvalidMachineError) Error() string {
	return fmt.Sprintf("invalid machine: %s", e.Machine)
}

// PrintWarning prints a warning message to stderr.
// Format: "WARNING: <message>"
func PrintWarning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "WARNING: %s\n", message)
}

// PrintSummary prints the planned-job statistics to stdout.
func PrintSummary(toolpaths []toolpath.Toolpath) {
	totalPoints := 0
	totalSegments := 0
	for _, tp := range toolpaths {
		totalPoints += tp.TotalPoints()
		totalSegments += len(tp.Segments)
	}

	fmt.Println("\n=== Toolpath Generation Complete ===")
	fmt.Println()
	fmt.Printf("Operations:  %d\n", len(toolpaths))
	fmt.Printf("Segments:    %s\n", FormatNumber(totalSegments))
	fmt.Printf("Points:      %s\n", FormatNumber(totalPoints))
	fmt.Println()
}

// PrintValidation prints validation issues to stderr, errors first, then
// warnings. Returns true when any error-severity issue was present.
func PrintValidation(result validate.Result) bool {
	if result.HasErrors() {
		fmt.Fprintln(os.Stderr, "VALIDATION ERRORS:")
		for _, issue := range result.Issues {
			if issue.Severity == validate.Error {
				fmt.Fprintf(os.Stderr, "  ERROR: %s\n", issue.Message)
			}
		}
	}
	for _, issue := range result.Issues {
		if issue.Severity == validate.Warning {
			PrintWarning("%s", issue.Message)
		}
	}
	return result.HasErrors()
}

// PrintError prints an error message to stderr and returns the
// appropriate exit code.
// Exit codes:
//
//	0 - No error (nil error)
//	1 - General error (bad arguments, file I/O, parsing)
//	2 - Invalid machine profile (InvalidMachineError)
func PrintError(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	switch err.(type) {
	case *InvalidMachineError:
		return 2
	default:
		return 1
	}
}
