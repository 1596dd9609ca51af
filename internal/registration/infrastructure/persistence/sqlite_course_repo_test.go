package persistence_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/semestra/semestra/internal/registration/domain"
	"github.com/semestra/semestra/internal/registration/infrastructure/persistence"
	"github.com/semestra/semestra/internal/shared/infrastructure/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.RunSQLiteMigrations(context.Background(), db))
	return db
}

func mustCourse(t *testing.T, category, number, spec string) *domain.Course {
	t.Helper()
	course, err := domain.NewCourseFromSpec(category, number, spec)
	require.NoError(t, err)
	return course
}

func TestSQLiteCourseRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := persistence.NewSQLiteCourseRepository(db)
	ctx := context.Background()

	course := mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am, TTH, 1:00pm-2:00pm")
	require.NoError(t, repo.Save(ctx, course))

	found, err := repo.FindByCourseID(ctx, course.CourseID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, course.ID(), found.ID())
	assert.Equal(t, "MATH", found.Category())
	assert.Equal(t, "301", found.Number())
	assert.Equal(t, course.Slots(), found.Slots())
}

func TestSQLiteCourseRepository_FindAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := persistence.NewSQLiteCourseRepository(db)

	found, err := repo.FindByCourseID(context.Background(), domain.NewCourseID("MATH", "999"))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSQLiteCourseRepository_SaveUpdatesExisting(t *testing.T) {
	db := setupTestDB(t)
	repo := persistence.NewSQLiteCourseRepository(db)
	ctx := context.Background()

	course := mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am")
	require.NoError(t, repo.Save(ctx, course))
	require.NoError(t, repo.Save(ctx, course))

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestSQLiteCourseRepository_ListPreservesInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := persistence.NewSQLiteCourseRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustCourse(t, "HIST", "101", "M, 8:00am-9:00am")))
	require.NoError(t, repo.Save(ctx, mustCourse(t, "MATH", "301", "T, 8:00am-9:00am")))
	require.NoError(t, repo.Save(ctx, mustCourse(t, "PHYS", "201", "W, 8:00am-9:00am")))

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 3)

	var order []string
	for _, c := range courses {
		order = append(order, c.Category())
	}
	assert.Equal(t, []string{"HIST", "MATH", "PHYS"}, order)
}

func TestSQLiteCourseRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := persistence.NewSQLiteCourseRepository(db)
	ctx := context.Background()

	course := mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am")
	require.NoError(t, repo.Save(ctx, course))
	require.NoError(t, repo.Delete(ctx, course.CourseID()))

	found, err := repo.FindByCourseID(ctx, course.CourseID())
	require.NoError(t, err)
	assert.Nil(t, found)

	var slotCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM course_slots`).Scan(&slotCount))
	assert.Zero(t, slotCount)
}
