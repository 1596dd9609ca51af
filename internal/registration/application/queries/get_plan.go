// Package queries contains the read-side handlers for registration.
package queries

import (
	"context"

	"github.com/semestra/semestra/internal/registration/domain"
)

// PlanCourseDTO is a data transfer object for a planned course.
type PlanCourseDTO struct {
	Category      string
	Number        string
	SlotSpec      string
	WeeklyMinutes int
}

// PlanDTO is a data transfer object for a term plan.
type PlanDTO struct {
	Term          string
	Courses       []PlanCourseDTO
	WeeklyMinutes int
}

// GetPlanQuery contains the parameters for fetching a plan.
type GetPlanQuery struct {
	Term string
}

// GetPlanHandler handles the GetPlanQuery.
type GetPlanHandler struct {
	planRepo domain.PlanRepository
}

// NewGetPlanHandler creates a new GetPlanHandler.
func NewGetPlanHandler(planRepo domain.PlanRepository) *GetPlanHandler {
	return &GetPlanHandler{planRepo: planRepo}
}

// Handle executes the GetPlanQuery. A term without a stored plan yields an
// empty plan rather than an error.
func (h *GetPlanHandler) Handle(ctx context.Context, query GetPlanQuery) (*PlanDTO, error) {
	plan, err := h.planRepo.FindByTerm(ctx, query.Term)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return &PlanDTO{Term: query.Term}, nil
	}

	dto := &PlanDTO{
		Term:          plan.Term(),
		WeeklyMinutes: plan.WeeklyMinutes(),
	}
	for _, course := range plan.Courses() {
		dto.Courses = append(dto.Courses, PlanCourseDTO{
			Category:      course.Category(),
			Number:        course.Number(),
			SlotSpec:      course.SlotSpec(),
			WeeklyMinutes: course.WeeklyMinutes(),
		})
	}

	return dto, nil
}
