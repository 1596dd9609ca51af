package course

import (
	"fmt"
	"strings"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/queries"
	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog courses",
	Long: `Display all courses in the catalog, or only those of one category.

Examples:
  semestra course list
  semestra course list --category MATH`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListCoursesHandler == nil {
			fmt.Println("Course commands require a database connection.")
			return nil
		}

		courses, err := app.ListCoursesHandler.Handle(cmd.Context(), queries.ListCoursesQuery{
			Category: listCategory,
		})
		if err != nil {
			return fmt.Errorf("failed to list courses: %w", err)
		}

		if len(courses) == 0 {
			fmt.Println("No courses in the catalog yet.")
			fmt.Println("Add one with: semestra course add MATH 301 --slots \"MWF, 8:00am-9:00am\"")
			return nil
		}

		fmt.Printf("Catalog (%d courses)\n", len(courses))
		fmt.Println(strings.Repeat("=", 60))
		for _, course := range courses {
			fmt.Printf("%-6s %-6s %s (%.1f h/week)\n",
				course.Category, course.Number, course.SlotSpec,
				float64(course.WeeklyMinutes)/60)
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "only list courses of this category")
}
