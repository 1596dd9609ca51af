package commands

import (
	"context"

	"github.com/semestra/semestra/internal/registration/domain"
	sharedApplication "github.com/semestra/semestra/internal/shared/application"
)

// GeneratePlanCommand fills a term plan from the catalog, taking at most one
// course per category.
type GeneratePlanCommand struct {
	Term string
}

// GeneratePlanResult lists the courses added by generation and the catalog
// courses passed over, either because their category was already covered or
// because they conflicted with the plan.
type GeneratePlanResult struct {
	Added   []domain.CourseID
	Skipped []domain.CourseID
}

// GeneratePlanHandler handles the GeneratePlanCommand.
type GeneratePlanHandler struct {
	courseRepo domain.CourseRepository
	planRepo   domain.PlanRepository
	uow        sharedApplication.UnitOfWork
}

// NewGeneratePlanHandler creates a new GeneratePlanHandler.
func NewGeneratePlanHandler(
	courseRepo domain.CourseRepository,
	planRepo domain.PlanRepository,
	uow sharedApplication.UnitOfWork,
) *GeneratePlanHandler {
	return &GeneratePlanHandler{courseRepo: courseRepo, planRepo: planRepo, uow: uow}
}

// Handle executes the GeneratePlanCommand. Categories are visited in catalog
// order and the first non-conflicting course of each category is committed.
// Categories already present in the plan are left alone.
func (h *GeneratePlanHandler) Handle(ctx context.Context, cmd GeneratePlanCommand) (*GeneratePlanResult, error) {
	result := &GeneratePlanResult{}

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		courses, err := h.courseRepo.List(txCtx)
		if err != nil {
			return err
		}

		plan, err := h.planRepo.FindByTerm(txCtx, cmd.Term)
		if err != nil {
			return err
		}
		if plan == nil {
			plan = domain.NewPlan(cmd.Term)
		}

		for _, course := range courses {
			if plan.ContainsCategory(course.Category()) {
				result.Skipped = append(result.Skipped, course.CourseID())
				continue
			}

			candidate := course.Clone()
			if !plan.Propose(candidate).Accepted {
				result.Skipped = append(result.Skipped, course.CourseID())
				continue
			}

			plan.Commit(candidate)
			result.Added = append(result.Added, candidate.CourseID())
		}

		if len(result.Added) == 0 {
			return nil
		}

		return h.planRepo.Save(txCtx, plan)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
