package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"

	"github.com/Xhst/dssa-multiagent-scheduling/engine"
)

// ScheduleBenchCommand is the Go analogue of test2.py's print loop: it runs
// every method against one problem file and prints a {method, z, elapsed}
// table, instead of test2.py's grid sweep over (max_iter, candidate_moves)
// which -max-iter/-max-moves already let a caller script externally.
type ScheduleBenchCommand struct{}

var _ cli.Command = (*ScheduleBenchCommand)(nil)

func (c *ScheduleBenchCommand) Help() string {
	return strings.TrimSpace(`
Usage: dssa schedule bench -in <problem.json> [-config heuristic.yaml]

  Runs greedy, local search, simulated annealing, and the ILP oracle
  against one problem file and prints a comparison table.
`)
}

func (c *ScheduleBenchCommand) Synopsis() string { return "Compare every method on one problem" }

func (c *ScheduleBenchCommand) Run(args []string) int {
	fs, f := newScheduleFlagSet("schedule bench", os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	h, err := f.resolveHeuristic(fs)
	if err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		return 1
	}
	if f.in == "" {
		fmt.Fprintln(os.Stdout, "Error: -in is required")
		return 1
	}

	resources, agents, err := loadProblem(f.in)
	if err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		return 1
	}

	methods := []engine.Method{engine.MethodGreedy, engine.MethodLocalSearch, engine.MethodAnneal, engine.MethodILP}

	fmt.Fprintf(os.Stdout, "%-14s %10s %12s\n", "method", "z", "elapsed_s")
	for _, method := range methods {
		result, err := engine.Run(engine.Request{
			Resources: resources,
			Agents:    agents,
			Method:    method,
			Heuristic: h,
		})
		if err != nil {
			fmt.Fprintf(os.Stdout, "%-14s %v\n", method, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%-14s %10.4f %12.4f\n", result.Method, result.Z, result.ElapsedSeconds)
	}
	return 0
}
