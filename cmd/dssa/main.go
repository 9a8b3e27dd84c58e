// Command dssa is the CLI entrypoint for the scheduling engine: one
// `hashicorp/cli` command suite over the engine package, with no network
// surface of its own.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"

	"github.com/Xhst/dssa-multiagent-scheduling/cmd/dssa/command"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	c := cli.NewCLI("dssa", command.Version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"schedule greedy": func() (cli.Command, error) {
			return &command.ScheduleGreedyCommand{}, nil
		},
		"schedule local-search": func() (cli.Command, error) {
			return &command.ScheduleLocalSearchCommand{}, nil
		},
		"schedule anneal": func() (cli.Command, error) {
			return &command.ScheduleAnnealCommand{}, nil
		},
		"schedule ilp": func() (cli.Command, error) {
			return &command.ScheduleILPCommand{}, nil
		},
		"schedule bench": func() (cli.Command, error) {
			return &command.ScheduleBenchCommand{}, nil
		},
		"version": func() (cli.Command, error) {
			return &command.VersionCommand{}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}
