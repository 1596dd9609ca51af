package commands

import (
	"context"
	"testing"

	"github.com/semestra/semestra/internal/registration/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportCoursesHandler_Handle(t *testing.T) {
	existing := mustCourse("HIST", "101", "F, 10:00am-11:00am")

	courseRepo := new(mockCourseRepo)
	courseRepo.On("FindByCourseID", mock.Anything, domain.NewCourseID("MATH", "301")).Return(nil, nil)
	courseRepo.On("FindByCourseID", mock.Anything, existing.CourseID()).Return(existing, nil)
	courseRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Course")).Return(nil).Once()

	handler := NewImportCoursesHandler(courseRepo, passthroughUOW())
	result, err := handler.Handle(context.Background(), ImportCoursesCommand{
		Records: []CourseRecord{
			{Category: "MATH", Number: "301", SlotSpec: "MWF, 8:00am-9:00am"},
			{Category: "HIST", Number: "101", SlotSpec: "F, 10:00am-11:00am"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	courseRepo.AssertExpectations(t)
}

func TestImportCoursesHandler_BadRecordAborts(t *testing.T) {
	handler := NewImportCoursesHandler(new(mockCourseRepo), passthroughUOW())

	_, err := handler.Handle(context.Background(), ImportCoursesCommand{
		Records: []CourseRecord{{Category: "MATH", Number: "301", SlotSpec: "bogus"}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCourseSpec)
}
