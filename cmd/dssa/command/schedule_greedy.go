package command

import (
	"os"
	"strings"

	"github.com/hashicorp/cli"

	"github.com/Xhst/dssa-multiagent-scheduling/config"
	"github.com/Xhst/dssa-multiagent-scheduling/engine"
)

// ScheduleGreedyCommand runs only the topological largest-first constructor.
type ScheduleGreedyCommand struct{}

var _ cli.Command = (*ScheduleGreedyCommand)(nil)

func (c *ScheduleGreedyCommand) Help() string {
	return strings.TrimSpace(`
Usage: dssa schedule greedy -in <problem.json>

  Builds the greedy seed schedule for a problem file and prints its cost.
`)
}

func (c *ScheduleGreedyCommand) Synopsis() string { return "Run the greedy constructor" }

func (c *ScheduleGreedyCommand) Run(args []string) int {
	fs, f := newScheduleFlagSet("schedule greedy", os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	return runMethod(os.Stdout, engine.MethodGreedy, f, config.Default())
}
