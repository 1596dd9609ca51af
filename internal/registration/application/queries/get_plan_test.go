package queries

import (
	"context"
	"testing"

	"github.com/semestra/semestra/internal/registration/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPlanHandler_Handle(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	plan.Commit(mustCourse("MATH", "301", "MWF, 8:00am-9:00am"))
	plan.Commit(mustCourse("PHYS", "201", "TTH, 1:00pm-2:30pm"))

	planRepo := new(mockPlanRepo)
	planRepo.On("FindByTerm", mock.Anything, "fall-2026").Return(plan, nil)

	handler := NewGetPlanHandler(planRepo)
	dto, err := handler.Handle(context.Background(), GetPlanQuery{Term: "fall-2026"})

	require.NoError(t, err)
	assert.Equal(t, "fall-2026", dto.Term)
	require.Len(t, dto.Courses, 2)
	assert.Equal(t, PlanCourseDTO{
		Category:      "MATH",
		Number:        "301",
		SlotSpec:      "MWF, 8:00am-9:00am",
		WeeklyMinutes: 180,
	}, dto.Courses[0])
	assert.Equal(t, 180+2*90, dto.WeeklyMinutes)
}

func TestGetPlanHandler_EmptyTerm(t *testing.T) {
	planRepo := new(mockPlanRepo)
	planRepo.On("FindByTerm", mock.Anything, "spring-2027").Return(nil, nil)

	handler := NewGetPlanHandler(planRepo)
	dto, err := handler.Handle(context.Background(), GetPlanQuery{Term: "spring-2027"})

	require.NoError(t, err)
	assert.Equal(t, "spring-2027", dto.Term)
	assert.Empty(t, dto.Courses)
	assert.Zero(t, dto.WeeklyMinutes)
}
