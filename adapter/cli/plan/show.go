package plan

import (
	"fmt"
	"strings"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/queries"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the term plan",
	Long: `Display the planned courses for the term in the order they were
accepted.

Examples:
  semestra plan show
  semestra plan show --term spring-2027`,
	Aliases: []string{"view", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetPlanHandler == nil {
			fmt.Println("Plan commands require a database connection.")
			return nil
		}

		term := cli.Term()
		plan, err := app.GetPlanHandler.Handle(cmd.Context(), queries.GetPlanQuery{Term: term})
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}

		fmt.Printf("Plan for %s\n", plan.Term)
		fmt.Println(strings.Repeat("=", 60))

		if len(plan.Courses) == 0 {
			fmt.Println("\n  No courses planned yet.")
			fmt.Println("\n  Use 'semestra course list' to see the catalog")
			fmt.Println("  Use 'semestra plan propose' to add a course")
			return nil
		}

		for _, course := range plan.Courses {
			fmt.Printf("%-6s %-6s %s (%.1f h/week)\n",
				course.Category, course.Number, course.SlotSpec,
				float64(course.WeeklyMinutes)/60)
		}
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("Total: %.1f hours/week\n", float64(plan.WeeklyMinutes)/60)

		return nil
	},
}
