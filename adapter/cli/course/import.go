package course

import (
	"fmt"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/semestra/semestra/internal/registration/infrastructure/coursefile"
	"github.com/spf13/cobra"
)

var importFile string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import courses from a course file",
	Long: `Load courses from a plain-text course file into the catalog.
Courses already in the catalog are skipped.

Examples:
  semestra course import                     # Import from the configured file
  semestra course import -f my-courses.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ImportCoursesHandler == nil {
			fmt.Println("Course commands require a database connection.")
			return nil
		}

		store := app.CourseFile
		if importFile != "" {
			store = coursefile.NewStore(importFile)
		}
		if store == nil {
			return fmt.Errorf("no course file configured")
		}

		records, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to read course file: %w", err)
		}
		if len(records) == 0 {
			fmt.Printf("No courses found in %s.\n", store.Path())
			return nil
		}

		cmdRecords := make([]commands.CourseRecord, len(records))
		for i, rec := range records {
			cmdRecords[i] = commands.CourseRecord{
				Category: rec.Category,
				Number:   rec.Number,
				SlotSpec: rec.SlotSpec,
			}
		}

		result, err := app.ImportCoursesHandler.Handle(cmd.Context(), commands.ImportCoursesCommand{
			Records: cmdRecords,
		})
		if err != nil {
			return fmt.Errorf("failed to import courses: %w", err)
		}

		fmt.Printf("Imported %d courses from %s", result.Imported, store.Path())
		if result.Skipped > 0 {
			fmt.Printf(" (%d already present)", result.Skipped)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "course file to read (default: configured COURSE_FILE)")
}
