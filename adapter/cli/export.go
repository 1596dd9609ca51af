package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/semestra/semestra/internal/registration/application/queries"
	"github.com/semestra/semestra/internal/shared/infrastructure/security"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the term plan as text",
	Long: `Render the current term plan as plain text, one course per line,
suitable for pasting into notes or mail.

Examples:
  semestra export                 # Export to stdout
  semestra export -o plan.txt     # Export to file
  semestra export --term fall-2026`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.GetPlanHandler == nil {
			fmt.Println("Export requires a database connection.")
			return nil
		}

		term := Term()
		plan, err := app.GetPlanHandler.Handle(cmd.Context(), queries.GetPlanQuery{Term: term})
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}

		if len(plan.Courses) == 0 {
			fmt.Fprintf(os.Stderr, "No courses planned for term %q.\n", term)
			return nil
		}

		text := renderPlanText(plan)

		if exportOutput != "" {
			path, err := security.ValidateFilePath(exportOutput)
			if err != nil {
				return fmt.Errorf("invalid output path: %w", err)
			}
			if err := os.WriteFile(path, []byte(text), 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Exported %d courses to %s\n", len(plan.Courses), exportOutput)
			return nil
		}

		fmt.Print(text)
		return nil
	},
}

func renderPlanText(plan *queries.PlanDTO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Schedule for %s\n", plan.Term)
	for _, course := range plan.Courses {
		fmt.Fprintf(&sb, "%s %s: %s\n", course.Category, course.Number, course.SlotSpec)
	}
	fmt.Fprintf(&sb, "Total: %.1f hours/week\n", float64(plan.WeeklyMinutes)/60)
	return sb.String()
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
