package plan

import (
	"fmt"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fill the term plan from the catalog",
	Long: `Walk the catalog in order and commit the first non-conflicting
course of each category not yet present in the plan.

Examples:
  semestra plan generate
  semestra plan generate --term spring-2027`,
	Aliases: []string{"auto", "fill"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GeneratePlanHandler == nil {
			fmt.Println("Plan commands require a database connection.")
			return nil
		}

		term := cli.Term()
		result, err := app.GeneratePlanHandler.Handle(cmd.Context(), commands.GeneratePlanCommand{
			Term: term,
		})
		if err != nil {
			return fmt.Errorf("failed to generate plan: %w", err)
		}

		if len(result.Added) == 0 {
			fmt.Println("Nothing to add: every catalog category is planned or conflicts.")
			return nil
		}

		fmt.Printf("Added %d courses to %s:\n", len(result.Added), term)
		for _, id := range result.Added {
			fmt.Printf("  %s\n", id)
		}
		if len(result.Skipped) > 0 {
			fmt.Printf("Skipped %d:\n", len(result.Skipped))
			for _, id := range result.Skipped {
				fmt.Printf("  %s\n", id)
			}
		}

		return nil
	},
}
