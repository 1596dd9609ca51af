package course

import (
	"fmt"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/queries"
	"github.com/semestra/semestra/internal/registration/infrastructure/coursefile"
	"github.com/spf13/cobra"
)

var exportFile string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a course file",
	Long: `Write all catalog courses to a plain-text course file, replacing
its previous contents.

Examples:
  semestra course export                     # Export to the configured file
  semestra course export -f my-courses.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListCoursesHandler == nil {
			fmt.Println("Course commands require a database connection.")
			return nil
		}

		store := app.CourseFile
		if exportFile != "" {
			store = coursefile.NewStore(exportFile)
		}
		if store == nil {
			return fmt.Errorf("no course file configured")
		}

		courses, err := app.ListCoursesHandler.Handle(cmd.Context(), queries.ListCoursesQuery{})
		if err != nil {
			return fmt.Errorf("failed to list courses: %w", err)
		}

		records := make([]coursefile.Record, len(courses))
		for i, course := range courses {
			records[i] = coursefile.Record{
				Category: course.Category,
				Number:   course.Number,
				SlotSpec: course.SlotSpec,
			}
		}

		if err := store.Save(records); err != nil {
			return fmt.Errorf("failed to write course file: %w", err)
		}

		fmt.Printf("Exported %d courses to %s\n", len(records), store.Path())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "course file to write (default: configured COURSE_FILE)")
}
