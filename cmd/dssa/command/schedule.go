// Package command implements the dssa CLI's subcommands as
// github.com/hashicorp/cli Command implementations, one file per command in
// nomad's command/ layout.
package command

import (
	"flag"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/Xhst/dssa-multiagent-scheduling/config"
	"github.com/Xhst/dssa-multiagent-scheduling/engine"
)

// scheduleFlags are the flags every `schedule <method>` subcommand shares:
// the input problem file and the heuristic parameter overrides.
type scheduleFlags struct {
	in          string
	configPath  string
	maxIter     int
	maxMoves    int
	temperature float64
	coolingRate float64
	seed        int64
	hasSeed     bool
}

func newScheduleFlagSet(name string, out io.Writer) (*flag.FlagSet, *scheduleFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	f := &scheduleFlags{}
	fs.StringVar(&f.in, "in", "", "path to a problem JSON file (required)")
	fs.StringVar(&f.configPath, "config", "", "path to a heuristic parameter YAML file")
	fs.IntVar(&f.maxIter, "max-iter", 0, "override maxIterations")
	fs.IntVar(&f.maxMoves, "max-moves", 0, "override maxMoves (stagnation bound)")
	fs.Float64Var(&f.temperature, "temperature", 0, "override initial temperature")
	fs.Float64Var(&f.coolingRate, "cooling-rate", 0, "override cooling rate")
	fs.Int64Var(&f.seed, "seed", 0, "override the PRNG seed")
	return fs, f
}

// resolveHeuristic loads configPath (or the defaults) and overlays any
// explicitly-set flags on top.
func (f *scheduleFlags) resolveHeuristic(fs *flag.FlagSet) (config.Heuristic, error) {
	h := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Heuristic{}, err
		}
		h = loaded
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "max-iter":
			h.MaxIterations = f.maxIter
		case "max-moves":
			h.MaxMoves = f.maxMoves
		case "temperature":
			h.Temperature = f.temperature
		case "cooling-rate":
			h.CoolingRate = f.coolingRate
		case "seed":
			seed := f.seed
			h.Seed = &seed
		}
	})
	return h, nil
}

// runMethod loads the problem file, builds a Request for method, runs it,
// and prints the {method, z, time} summary line test2.py's benchmark loop
// produces, followed by the full schedule.
func runMethod(ui io.Writer, method engine.Method, f *scheduleFlags, h config.Heuristic) int {
	if f.in == "" {
		fmt.Fprintln(ui, "Error: -in is required")
		return 1
	}

	resources, agents, err := loadProblem(f.in)
	if err != nil {
		fmt.Fprintf(ui, "Error: %v\n", err)
		return 1
	}

	result, err := engine.Run(engine.Request{
		Resources: resources,
		Agents:    agents,
		Method:    method,
		Heuristic: h,
		Logger:    hclog.NewNullLogger(),
	})
	if err != nil {
		fmt.Fprintf(ui, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(ui, "method=%s z=%.4f elapsed=%.4fs run_id=%s\n", result.Method, result.Z, result.ElapsedSeconds, result.RunID)
	for t, slot := range result.Schedule {
		fmt.Fprintf(ui, "  slot %d:", t)
		for _, e := range slot {
			fmt.Fprintf(ui, " (agent=%d task=%d)", e.AgentID, e.TaskID)
		}
		fmt.Fprintln(ui)
	}
	return 0
}
