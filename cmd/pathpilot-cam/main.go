package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gomill/pathpilot/internal/cli"
	"github.com/gomill/pathpilot/internal/gcode"
	"github.com/gomill/pathpilot/internal/job"
	"github.com/gomill/pathpilot/internal/machine"
	"github.com/gomill/pathpilot/internal/progress"
	"github.com/gomill/pathpilot/internal/tool"
	"github.com/gomill/pathpilot/internal/validate"
)

func main() {
	exitCode := run(os.Args[1:])
	os.Exit(exitCode)
}

func run(args []string) int {
	if cli.ShouldShowHelp(args) {
		fmt.Print(cli.GetHelpText())
		return 0
	}

	if cli.ShouldShowVersion(args) {
		fmt.Print(cli.GetVersionText())
		return 0
	}

	parsedArgs, err := cli.ParseArgs(args)
	if err != nil {
		return cli.PrintError(err)
	}

	if err := cli.ValidateArgs(parsedArgs); err != nil {
		return cli.PrintError(err)
	}

	envelope, err := machine.Lookup(parsedArgs.Machine)
	if err != nil {
		return cli.PrintError(&cli.InvalidMachineError{Machine: parsedArgs.Machine})
	}

	if !parsedArgs.Force {
		if _, err := os.Stat(parsedArgs.OutputFile); err == nil {
			return cli.PrintError(fmt.Errorf("output file already exists: %s (use --force to overwrite)", parsedArgs.OutputFile))
		}
	}

	startTime := time.Now()

	descriptor, err := job.LoadDescriptor(parsedArgs.JobFile)
	if err != nil {
		return cli.PrintError(err)
	}

	lib := defaultToolLibrary()
	if descriptor.ToolLibrary != "" {
		lib, err = tool.LoadLibrary(descriptor.ToolLibrary)
		if err != nil {
			return cli.PrintError(err)
		}
	}

	j, err := descriptor.BuildJob(lib)
	if err != nil {
		return cli.PrintError(err)
	}

	fmt.Printf("Job %s (%s): %d operations on %s\n",
		j.Name, j.ID, len(j.Operations), envelope.Name)

	var reporter *progress.Reporter
	j.Progress = func(done, total int) {
		if reporter == nil {
			reporter = progress.NewReporter(total, os.Stderr)
		}
		reporter.Update(done)
	}

	toolpaths, err := j.ComputeToolpaths()
	if reporter != nil {
		reporter.Finish()
	}
	if err != nil {
		return cli.PrintError(err)
	}

	rpm := descriptor.RPMFor(lib)

	if !parsedArgs.NoValidate {
		result := validate.Check(toolpaths, envelope, rpm)
		if cli.PrintValidation(result) {
			return 1
		}
	}

	cfg := gcode.DefaultConfig()
	cfg.Units = j.Units
	cfg.RPM = rpm
	if len(j.Operations) > 0 {
		cfg.ToolNumber = j.Operations[0].ToolNumber
		cfg.SafeZ = j.Operations[0].SafeZ
		cfg.RapidZ = j.Operations[0].RapidZ
	}

	post := gcode.NewPathPilotPostProcessor(cfg)
	if err := post.Generate(toolpaths, parsedArgs.OutputFile); err != nil {
		return cli.PrintError(err)
	}

	cli.PrintSummary(toolpaths)
	fmt.Printf("Wrote %s in %s\n", parsedArgs.OutputFile, cli.FormatDuration(time.Since(startTime)))

	return 0
}

// defaultToolLibrary is the starter tool table used when the job file
// names no library of its own: conservative Tormach starter tooling.
func defaultToolLibrary() *tool.Library {
	lib := tool.NewLibrary()
	lib.Add(tool.Tool{
		Number: 1, Name: `1/2" Flat Endmill 2-flute`, Kind: tool.FlatEndmill,
		Diameter: 0.5, FluteCount: 2, FluteLength: 1.0, OverallLength: 3.0,
		DefaultRPM: 3000, DefaultFeedXY: 20.0, DefaultFeedZ: 5.0,
	})
	lib.Add(tool.Tool{
		Number: 2, Name: `1/4" Flat Endmill 2-flute`, Kind: tool.FlatEndmill,
		Diameter: 0.25, FluteCount: 2, FluteLength: 0.75, OverallLength: 2.5,
		DefaultRPM: 5000, DefaultFeedXY: 15.0, DefaultFeedZ: 4.0,
	})
	lib.Add(tool.Tool{
		Number: 3, Name: `1/4" Ball Endmill 2-flute`, Kind: tool.BallEndmill,
		Diameter: 0.25, FluteCount: 2, FluteLength: 0.75, OverallLength: 2.5,
		DefaultRPM: 5000, DefaultFeedXY: 12.0, DefaultFeedZ: 3.0,
	})
	lib.Add(tool.Tool{
		Number: 4, Name: `1/8" Flat Endmill 2-flute`, Kind: tool.FlatEndmill,
		Diameter: 0.125, FluteCount: 2, FluteLength: 0.5, OverallLength: 2.0,
		DefaultRPM: 8000, DefaultFeedXY: 10.0, DefaultFeedZ: 2.5,
	})
	return lib
}
