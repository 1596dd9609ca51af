package domain

import (
	"github.com/google/uuid"
	sharedDomain "github.com/semestra/semestra/internal/shared/domain"
)

const aggregateTypePlan = "plan"

// CourseCommitted is raised when a course is committed to a plan.
type CourseCommitted struct {
	sharedDomain.BaseEvent
	Term   string
	Course CourseID
}

// NewCourseCommitted creates a CourseCommitted event.
func NewCourseCommitted(planID uuid.UUID, term string, course CourseID) *CourseCommitted {
	return &CourseCommitted{
		BaseEvent: sharedDomain.NewBaseEvent(planID, aggregateTypePlan, "plan.course.committed"),
		Term:      term,
		Course:    course,
	}
}

// CourseRemoved is raised when a course is removed from a plan.
type CourseRemoved struct {
	sharedDomain.BaseEvent
	Term   string
	Course CourseID
}

// NewCourseRemoved creates a CourseRemoved event.
func NewCourseRemoved(planID uuid.UUID, term string, course CourseID) *CourseRemoved {
	return &CourseRemoved{
		BaseEvent: sharedDomain.NewBaseEvent(planID, aggregateTypePlan, "plan.course.removed"),
		Term:      term,
		Course:    course,
	}
}
