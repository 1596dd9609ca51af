package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/semestra/semestra/internal/registration/application/queries"
	"github.com/semestra/semestra/internal/shared/infrastructure/database"
	"github.com/semestra/semestra/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()

	cfg := &config.Config{
		AppEnv:         "development",
		DatabaseDriver: "sqlite",
		SQLitePath:     filepath.Join(t.TempDir(), "semestra.db"),
		TermName:       "fall-2026",
		CourseFile:     filepath.Join(t.TempDir(), "courses.txt"),
	}

	c, err := NewContainer(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestNewContainer_SQLite(t *testing.T) {
	c := newTestContainer(t)

	assert.Equal(t, database.DriverSQLite, c.DBDriver)
	assert.NotNil(t, c.AddCourseHandler)
	assert.NotNil(t, c.DeleteCourseHandler)
	assert.NotNil(t, c.CommitCourseHandler)
	assert.NotNil(t, c.RemoveCourseHandler)
	assert.NotNil(t, c.GeneratePlanHandler)
	assert.NotNil(t, c.ImportCoursesHandler)
	assert.NotNil(t, c.GetPlanHandler)
	assert.NotNil(t, c.ListCoursesHandler)
	assert.NotNil(t, c.CourseFile)
}

func TestContainer_EndToEndFlow(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	_, err := c.AddCourseHandler.Handle(ctx, commands.AddCourseCommand{
		Category: "MATH", Number: "301", SlotSpec: "MWF, 8:00am-9:00am",
	})
	require.NoError(t, err)

	_, err = c.AddCourseHandler.Handle(ctx, commands.AddCourseCommand{
		Category: "PHYS", Number: "201", SlotSpec: "MWF, 8:30am-9:30am",
	})
	require.NoError(t, err)

	result, err := c.CommitCourseHandler.Handle(ctx, commands.CommitCourseCommand{
		Term: "fall-2026", Category: "MATH", Number: "301",
	})
	require.NoError(t, err)
	assert.True(t, result.Committed)

	// Conflicting proposal is rejected and names the blocker.
	result, err = c.CommitCourseHandler.Handle(ctx, commands.CommitCourseCommand{
		Term: "fall-2026", Category: "PHYS", Number: "201",
	})
	require.NoError(t, err)
	assert.False(t, result.Committed)
	require.NotNil(t, result.ConflictsWith)
	assert.Equal(t, "MATH 301", result.ConflictsWith.String())

	plan, err := c.GetPlanHandler.Handle(ctx, queries.GetPlanQuery{Term: "fall-2026"})
	require.NoError(t, err)
	require.Len(t, plan.Courses, 1)
	assert.Equal(t, "MATH", plan.Courses[0].Category)
}
