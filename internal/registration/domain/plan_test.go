package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/semestra/semestra/internal/registration/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_ProposeAndCommit(t *testing.T) {
	plan := domain.NewPlan("fall-2026")

	x := mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am")
	result := plan.Propose(x)
	require.True(t, result.Accepted)
	plan.Commit(x)

	// Different days, same times: accepted.
	y := mustCourse(t, "PHYS", "201", "TTH, 8:00am-9:00am")
	result = plan.Propose(y)
	assert.True(t, result.Accepted)
	assert.Nil(t, result.ConflictsWith)
}

func TestPlan_ProposeRejectsOverlap(t *testing.T) {
	plan := domain.NewPlan("fall-2026")

	x := mustCourse(t, "MATH", "301", "M, 8:00am-9:00am")
	plan.Commit(x)

	y := mustCourse(t, "PHYS", "201", "M, 8:30am-9:30am")
	result := plan.Propose(y)

	assert.False(t, result.Accepted)
	require.NotNil(t, result.ConflictsWith)
	assert.Equal(t, x.CourseID(), result.ConflictsWith.CourseID())
}

func TestPlan_ProposeAcceptsBackToBack(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	plan.Commit(mustCourse(t, "MATH", "301", "M, 8:00am-9:00am"))

	y := mustCourse(t, "PHYS", "201", "M, 9:00am-10:00am")
	assert.True(t, plan.Propose(y).Accepted)
}

func TestPlan_ProposeDoesNotMutate(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	plan.Propose(mustCourse(t, "MATH", "301", "M, 8:00am-9:00am"))

	assert.Empty(t, plan.Courses())
}

func TestPlan_ForcedDuplicateAppearsTwice(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	x := mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am")

	plan.Commit(x)

	// A second identical proposal self-conflicts; a forced commit still lands.
	result := plan.Propose(x.Clone())
	assert.False(t, result.Accepted)
	plan.Commit(x.Clone())

	courses := plan.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, x.CourseID(), courses[0].CourseID())
	assert.Equal(t, x.CourseID(), courses[1].CourseID())
}

func TestPlan_Remove(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	plan.Commit(mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am"))
	plan.Commit(mustCourse(t, "PHYS", "201", "TTH, 8:00am-9:00am"))

	err := plan.Remove(domain.NewCourseID("MATH", "301"))

	require.NoError(t, err)
	require.Len(t, plan.Courses(), 1)
	assert.Equal(t, "PHYS", plan.Courses()[0].Category())
}

func TestPlan_RemoveNotFound(t *testing.T) {
	plan := domain.NewPlan("fall-2026")

	err := plan.Remove(domain.NewCourseID("MATH", "301"))

	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestPlan_InsertionOrderPreserved(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	plan.Commit(mustCourse(t, "HIST", "101", "M, 8:00am-9:00am"))
	plan.Commit(mustCourse(t, "MATH", "301", "T, 8:00am-9:00am"))
	plan.Commit(mustCourse(t, "PHYS", "201", "W, 8:00am-9:00am"))

	var order []string
	for _, c := range plan.Courses() {
		order = append(order, c.Category())
	}
	assert.Equal(t, []string{"HIST", "MATH", "PHYS"}, order)
}

func TestPlan_DomainEvents(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	x := mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am")

	plan.Commit(x)
	require.NoError(t, plan.Remove(x.CourseID()))

	events := plan.DomainEvents()
	require.Len(t, events, 2)

	committed, ok := events[0].(*domain.CourseCommitted)
	require.True(t, ok)
	assert.Equal(t, plan.ID(), committed.AggregateID())
	assert.Equal(t, x.CourseID(), committed.Course)
	assert.Equal(t, "plan.course.committed", committed.EventName())

	removed, ok := events[1].(*domain.CourseRemoved)
	require.True(t, ok)
	assert.Equal(t, "plan.course.removed", removed.EventName())

	plan.ClearDomainEvents()
	assert.Empty(t, plan.DomainEvents())
}

func TestPlan_ContainsCategory(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	plan.Commit(mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am"))

	assert.True(t, plan.ContainsCategory("MATH"))
	assert.False(t, plan.ContainsCategory("PHYS"))
}

func TestRehydratePlan(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	courses := []*domain.Course{mustCourse(t, "MATH", "301", "MWF, 8:00am-9:00am")}

	plan := domain.RehydratePlan(id, "fall-2026", courses, created, updated)

	assert.Equal(t, id, plan.ID())
	assert.Equal(t, "fall-2026", plan.Term())
	assert.Equal(t, courses, plan.Courses())
	assert.Equal(t, created, plan.CreatedAt())
	assert.Equal(t, updated, plan.UpdatedAt())
	assert.Empty(t, plan.DomainEvents())
}
