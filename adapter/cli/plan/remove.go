package plan

import (
	"fmt"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <category> <number>",
	Short: "Remove a course from the term plan",
	Long: `Remove a planned course from the term. The catalog entry stays.

Examples:
  semestra plan remove MATH 301
  semestra plan remove MATH 301 --term spring-2027`,
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"rm", "drop"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.RemoveCourseHandler == nil {
			fmt.Println("Plan commands require a database connection.")
			return nil
		}

		term := cli.Term()
		err := app.RemoveCourseHandler.Handle(cmd.Context(), commands.RemoveCourseCommand{
			Term:     term,
			Category: args[0],
			Number:   args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to remove course: %w", err)
		}

		fmt.Printf("Removed %s %s from %s\n", args[0], args[1], term)
		return nil
	},
}
