// Package plan implements the term plan commands.
package plan

import (
	"github.com/spf13/cobra"
)

// Cmd is the plan command group
var Cmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the term plan",
	Long:  `Propose courses for a term, inspect the plan and fill gaps automatically.`,
}

func init() {
	Cmd.AddCommand(proposeCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(generateCmd)
}
