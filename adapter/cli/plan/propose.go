package plan

import (
	"fmt"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/spf13/cobra"
)

var proposeForce bool

var proposeCmd = &cobra.Command{
	Use:   "propose <category> <number>",
	Short: "Propose a catalog course for the term plan",
	Long: `Propose a course for the term plan. The proposal is rejected when
any of the course's slots overlaps a planned course; --force commits it
anyway.

Examples:
  semestra plan propose MATH 301
  semestra plan propose PHYS 201 --force
  semestra plan propose MATH 301 --term spring-2027`,
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"add"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CommitCourseHandler == nil {
			fmt.Println("Plan commands require a database connection.")
			return nil
		}

		term := cli.Term()
		result, err := app.CommitCourseHandler.Handle(cmd.Context(), commands.CommitCourseCommand{
			Term:     term,
			Category: args[0],
			Number:   args[1],
			Force:    proposeForce,
		})
		if err != nil {
			return fmt.Errorf("failed to propose course: %w", err)
		}

		switch {
		case result.Committed && result.ConflictsWith == nil:
			fmt.Printf("Added %s %s to %s\n", args[0], args[1], term)
		case result.Committed:
			fmt.Printf("Added %s %s to %s despite conflict with %s\n",
				args[0], args[1], term, *result.ConflictsWith)
		default:
			fmt.Printf("Rejected: %s %s conflicts with %s\n",
				args[0], args[1], *result.ConflictsWith)
			fmt.Println("Use --force to add it anyway.")
		}

		return nil
	},
}

func init() {
	proposeCmd.Flags().BoolVar(&proposeForce, "force", false, "commit the course even when it conflicts")
}
