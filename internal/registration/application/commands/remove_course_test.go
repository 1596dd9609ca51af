package commands

import (
	"context"
	"testing"

	"github.com/semestra/semestra/internal/registration/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveCourseHandler_Handle(t *testing.T) {
	plan := domain.NewPlan("fall-2026")
	plan.Commit(mustCourse("MATH", "301", "MWF, 8:00am-9:00am"))

	planRepo := new(mockPlanRepo)
	planRepo.On("FindByTerm", mock.Anything, "fall-2026").Return(plan, nil)
	planRepo.On("Save", mock.Anything, plan).Return(nil)

	handler := NewRemoveCourseHandler(planRepo, passthroughUOW())
	err := handler.Handle(context.Background(), RemoveCourseCommand{
		Term:     "fall-2026",
		Category: "MATH",
		Number:   "301",
	})

	require.NoError(t, err)
	assert.Empty(t, plan.Courses())
	planRepo.AssertExpectations(t)
}

func TestRemoveCourseHandler_NoPlanForTerm(t *testing.T) {
	planRepo := new(mockPlanRepo)
	planRepo.On("FindByTerm", mock.Anything, "spring-2027").Return(nil, nil)

	handler := NewRemoveCourseHandler(planRepo, passthroughUOW())
	err := handler.Handle(context.Background(), RemoveCourseCommand{
		Term:     "spring-2027",
		Category: "MATH",
		Number:   "301",
	})

	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestRemoveCourseHandler_CourseNotInPlan(t *testing.T) {
	plan := domain.NewPlan("fall-2026")

	planRepo := new(mockPlanRepo)
	planRepo.On("FindByTerm", mock.Anything, "fall-2026").Return(plan, nil)

	handler := NewRemoveCourseHandler(planRepo, passthroughUOW())
	err := handler.Handle(context.Background(), RemoveCourseCommand{
		Term:     "fall-2026",
		Category: "MATH",
		Number:   "301",
	})

	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	planRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
