// Package course implements the course catalog commands.
package course

import (
	"github.com/spf13/cobra"
)

// Cmd is the course command group
var Cmd = &cobra.Command{
	Use:   "course",
	Short: "Manage the course catalog",
	Long:  `Add, list, import and export the courses available for planning.`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(exportCmd)
}
