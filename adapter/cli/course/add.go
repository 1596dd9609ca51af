package course

import (
	"fmt"
	"strings"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/spf13/cobra"
)

var addSlots string

var addCmd = &cobra.Command{
	Use:   "add <category> <number>",
	Short: "Add a course to the catalog",
	Long: `Add a course with its weekly meeting slots.

The slot spec alternates day groups and time ranges. Day codes are
M, T, W, TH, F; times accept 12-hour (8:00am) or 24-hour (14:30) form.

Examples:
  semestra course add MATH 301 --slots "MWF, 8:00am-9:00am"
  semestra course add PHYS 201 --slots "MWF, 10:00am-11:00am, TTH, 1:00pm-2:30pm"`,
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"new"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddCourseHandler == nil {
			fmt.Println("Course commands require a database connection.")
			return nil
		}

		result, err := app.AddCourseHandler.Handle(cmd.Context(), commands.AddCourseCommand{
			Category: args[0],
			Number:   args[1],
			SlotSpec: addSlots,
		})
		if err != nil {
			return fmt.Errorf("failed to add course: %w", err)
		}

		fmt.Printf("Added %s\n", result.CourseID)
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("  Slots: %s\n", addSlots)

		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addSlots, "slots", "", `weekly slots, e.g. "MWF, 8:00am-9:00am" (required)`)
	addCmd.MarkFlagRequired("slots")
}
