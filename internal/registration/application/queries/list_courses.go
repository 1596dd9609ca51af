package queries

import (
	"context"
	"strings"

	"github.com/semestra/semestra/internal/registration/domain"
)

// CourseDTO is a data transfer object for catalog courses.
type CourseDTO struct {
	Category      string
	Number        string
	SlotSpec      string
	WeeklyMinutes int
}

// ListCoursesQuery contains the parameters for listing catalog courses.
type ListCoursesQuery struct {
	Category string // optional filter, matched case-insensitively
}

// ListCoursesHandler handles the ListCoursesQuery.
type ListCoursesHandler struct {
	courseRepo domain.CourseRepository
}

// NewListCoursesHandler creates a new ListCoursesHandler.
func NewListCoursesHandler(courseRepo domain.CourseRepository) *ListCoursesHandler {
	return &ListCoursesHandler{courseRepo: courseRepo}
}

// Handle executes the ListCoursesQuery.
func (h *ListCoursesHandler) Handle(ctx context.Context, query ListCoursesQuery) ([]CourseDTO, error) {
	courses, err := h.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filter := strings.ToUpper(strings.TrimSpace(query.Category))

	var dtos []CourseDTO
	for _, course := range courses {
		if filter != "" && course.Category() != filter {
			continue
		}
		dtos = append(dtos, CourseDTO{
			Category:      course.Category(),
			Number:        course.Number(),
			SlotSpec:      course.SlotSpec(),
			WeeklyMinutes: course.WeeklyMinutes(),
		})
	}

	return dtos, nil
}
