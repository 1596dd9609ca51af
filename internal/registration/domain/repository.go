package domain

import "context"

// CourseRepository persists the course catalog.
type CourseRepository interface {
	// Save persists a course, inserting or updating by entity ID.
	Save(ctx context.Context, course *Course) error

	// FindByCourseID retrieves a course by (category, number).
	// Returns nil without error when absent.
	FindByCourseID(ctx context.Context, id CourseID) (*Course, error)

	// List returns all catalog courses in insertion order.
	List(ctx context.Context) ([]*Course, error)

	// Delete removes a course by (category, number).
	Delete(ctx context.Context, id CourseID) error
}

// PlanRepository persists term plans.
type PlanRepository interface {
	// Save persists a plan and its accepted courses.
	Save(ctx context.Context, plan *Plan) error

	// FindByTerm retrieves the plan for a term.
	// Returns nil without error when absent.
	FindByTerm(ctx context.Context, term string) (*Plan, error)
}
