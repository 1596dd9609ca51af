package course

import (
	"fmt"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <category> <number>",
	Short: "Remove a course from the catalog",
	Long: `Remove a course from the catalog. Planned terms keep their own
copy of the course, so existing plans are not changed.

Examples:
  semestra course remove MATH 301`,
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"rm", "delete"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.DeleteCourseHandler == nil {
			fmt.Println("Course commands require a database connection.")
			return nil
		}

		err := app.DeleteCourseHandler.Handle(cmd.Context(), commands.DeleteCourseCommand{
			Category: args[0],
			Number:   args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to remove course: %w", err)
		}

		fmt.Printf("Removed %s %s from the catalog\n", args[0], args[1])
		return nil
	},
}
