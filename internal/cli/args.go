// Package cli parses and validates the pathpilot-cam command line and
// formats its human-readable terminal output.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Version information (set during build with -ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Args contains parsed command-line arguments.
type Args struct {
	JobFile    string
	OutputFile string
	Machine    string
	Force      bool
	NoValidate bool
}

// knownMachines lists the supported --machine values.
var knownMachines = map[string]bool{
	"PCNC440":  true,
	"PCNC770":  true,
	"PCNC1100": true,
}

// ParseArgs parses command-line arguments.
// Expected format: [--machine=MODEL] [--force] [--no-validate] <job.json> <output.ngc>
func ParseArgs(args []string) (*Args, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments provided")
	}

	fs := flag.NewFlagSet("pathpilot-cam", flag.ContinueOnError)

	result := &Args{
		Machine: "PCNC770",
	}

	fs.StringVar(&result.Machine, "machine", "PCNC770", "Tormach machine profile (PCNC440, PCNC770, PCNC1100)")
	fs.BoolVar(&result.Force, "force", false, "Overwrite output file without prompting")
	fs.BoolVar(&result.NoValidate, "no-validate", false, "Skip machine-limit validation")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	positional := fs.Args()
	if len(positional) != 2 {
		return nil, fmt.Errorf("expected 2 arguments (job file, output file), got %d", len(positional))
	}

	result.JobFile = positional[0]
	result.OutputFile = positional[1]

	if !knownMachines[result.Machine] {
		return nil, &InvalidMachineError{Machine: result.Machine}
	}

	return result, nil
}

// ValidateArgs validates that the parsed arguments are usable: the job
// file exists and the output directory exists.
func ValidateArgs(args *Args) error {
	if _, err := os.Stat(args.JobFile); os.IsNotExist(err) {
		return fmt.Errorf("job file does not exist: %s", args.JobFile)
	} else if err != nil {
		return fmt.Errorf("failed to check job file: %w", err)
	}

	outputDir := filepath.Dir(args.OutputFile)
	if outputDir == "" {
		outputDir = "."
	}
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", outputDir)
	} else if err != nil {
		return fmt.Errorf("failed to check output directory: %w", err)
	}

	return nil
}

// ShouldShowHelp checks if --help or -h flag is present.
func ShouldShowHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// ShouldShowVersion checks if --version is present.
func ShouldShowVersion(args []string) bool {
	for _, arg := range args {
		if arg == "--version" {
			return true
		}
	}
	return false
}

// GetHelpText returns the usage text.
func GetHelpText() string {
	return `pathpilot-cam - generate Tormach PathPilot G-code from a job description

Usage:
  pathpilot-cam [flags] <job.json> <output.ngc>

Flags:
  --machine=MODEL   Tormach machine profile: PCNC440, PCNC770, PCNC1100 (default PCNC770)
  --force           Overwrite the output file if it exists
  --no-validate     Skip machine-limit validation
  --help, -h        Show this help
  --version         Show version information

The job file is a JSON descriptor naming the part mesh, stock, tool
library, and operation list. The output is a PathPilot .ngc program.
`
}

// GetVersionText returns the version banner.
func GetVersionText() string {
	return fmt.Sprintf("pathpilot-cam %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
