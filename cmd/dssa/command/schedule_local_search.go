package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"

	"github.com/Xhst/dssa-multiagent-scheduling/engine"
)

// ScheduleLocalSearchCommand runs the steepest-improvement refiner.
type ScheduleLocalSearchCommand struct{}

var _ cli.Command = (*ScheduleLocalSearchCommand)(nil)

func (c *ScheduleLocalSearchCommand) Help() string {
	return strings.TrimSpace(`
Usage: dssa schedule local-search -in <problem.json> [-config heuristic.yaml]

  Refines the greedy seed with steepest-improvement local search.
`)
}

func (c *ScheduleLocalSearchCommand) Synopsis() string { return "Run the local search refiner" }

func (c *ScheduleLocalSearchCommand) Run(args []string) int {
	fs, f := newScheduleFlagSet("schedule local-search", os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	h, err := f.resolveHeuristic(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return runMethod(os.Stdout, engine.MethodLocalSearch, f, h)
}
