package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"

	"github.com/Xhst/dssa-multiagent-scheduling/engine"
)

// ScheduleAnnealCommand runs the simulated annealing refiner.
type ScheduleAnnealCommand struct{}

var _ cli.Command = (*ScheduleAnnealCommand)(nil)

func (c *ScheduleAnnealCommand) Help() string {
	return strings.TrimSpace(`
Usage: dssa schedule anneal -in <problem.json> [-config heuristic.yaml]

  Refines the greedy seed with simulated annealing.
`)
}

func (c *ScheduleAnnealCommand) Synopsis() string { return "Run the simulated annealing refiner" }

func (c *ScheduleAnnealCommand) Run(args []string) int {
	fs, f := newScheduleFlagSet("schedule anneal", os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	h, err := f.resolveHeuristic(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return runMethod(os.Stdout, engine.MethodAnneal, f, h)
}
