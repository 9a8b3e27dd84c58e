package command

import (
	"fmt"

	"github.com/hashicorp/cli"
)

// Version is set at build time via -ldflags; it defaults to "dev".
var Version = "dev"

// VersionCommand prints the CLI's build version.
type VersionCommand struct{}

var _ cli.Command = (*VersionCommand)(nil)

func (c *VersionCommand) Help() string     { return "Usage: dssa version" }
func (c *VersionCommand) Synopsis() string { return "Print the dssa version" }

func (c *VersionCommand) Run(args []string) int {
	fmt.Printf("dssa %s\n", Version)
	return 0
}
