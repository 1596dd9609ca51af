package domain

import (
	"time"

	"github.com/google/uuid"
	sharedDomain "github.com/semestra/semestra/internal/shared/domain"
)

// Plan is the accepted set of courses for a term, in insertion order.
// Insertion order is preserved for display and for deterministic conflict
// reporting. Without forced commits no two accepted courses conflict.
type Plan struct {
	sharedDomain.BaseAggregateRoot
	term    string
	courses []*Course
}

// NewPlan creates an empty plan for a term.
func NewPlan(term string) *Plan {
	return &Plan{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		term:              term,
		courses:           make([]*Course, 0),
	}
}

func (p *Plan) Term() string { return p.term }

// Courses returns the accepted courses in insertion order.
func (p *Plan) Courses() []*Course { return p.courses }

// Propose checks the candidate against the accepted set without mutating
// the plan.
func (p *Plan) Propose(candidate *Course) ProposalResult {
	if conflict := FindConflict(candidate, p.courses); conflict != nil {
		return ProposalResult{Accepted: false, ConflictsWith: conflict}
	}
	return ProposalResult{Accepted: true}
}

// Commit appends the course unconditionally. It is used both for
// conflict-free accepts and for user-confirmed forced commits, so a forced
// duplicate appears twice in the snapshot.
func (p *Plan) Commit(course *Course) {
	p.courses = append(p.courses, course)
	p.Touch()
	p.AddDomainEvent(NewCourseCommitted(p.ID(), p.term, course.CourseID()))
}

// Remove drops the first course matching the identity. It returns
// ErrCourseNotFound when no course matches.
func (p *Plan) Remove(id CourseID) error {
	for i, course := range p.courses {
		if course.CourseID() == id {
			p.courses = append(p.courses[:i], p.courses[i+1:]...)
			p.Touch()
			p.AddDomainEvent(NewCourseRemoved(p.ID(), p.term, id))
			return nil
		}
	}
	return ErrCourseNotFound
}

// ContainsCategory reports whether any accepted course has the given category.
func (p *Plan) ContainsCategory(category string) bool {
	for _, course := range p.courses {
		if course.Category() == category {
			return true
		}
	}
	return false
}

// WeeklyMinutes returns the total weekly meeting minutes across the plan.
func (p *Plan) WeeklyMinutes() int {
	total := 0
	for _, course := range p.courses {
		total += course.WeeklyMinutes()
	}
	return total
}

// RehydratePlan recreates a plan from persisted state.
func RehydratePlan(
	id uuid.UUID,
	term string,
	courses []*Course,
	createdAt, updatedAt time.Time,
) *Plan {
	return &Plan{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(
			sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		),
		term:    term,
		courses: courses,
	}
}
