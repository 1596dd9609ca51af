package commands

import (
	"context"
	"fmt"

	"github.com/semestra/semestra/internal/registration/domain"
	sharedApplication "github.com/semestra/semestra/internal/shared/application"
)

// RemoveCourseCommand removes a course from a term plan.
type RemoveCourseCommand struct {
	Term     string
	Category string
	Number   string
}

// RemoveCourseHandler handles the RemoveCourseCommand.
type RemoveCourseHandler struct {
	planRepo domain.PlanRepository
	uow      sharedApplication.UnitOfWork
}

// NewRemoveCourseHandler creates a new RemoveCourseHandler.
func NewRemoveCourseHandler(planRepo domain.PlanRepository, uow sharedApplication.UnitOfWork) *RemoveCourseHandler {
	return &RemoveCourseHandler{planRepo: planRepo, uow: uow}
}

// Handle executes the RemoveCourseCommand.
func (h *RemoveCourseHandler) Handle(ctx context.Context, cmd RemoveCourseCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		id := domain.NewCourseID(cmd.Category, cmd.Number)

		plan, err := h.planRepo.FindByTerm(txCtx, cmd.Term)
		if err != nil {
			return err
		}
		if plan == nil {
			return fmt.Errorf("%w: %s", domain.ErrCourseNotFound, id)
		}

		if err := plan.Remove(id); err != nil {
			return fmt.Errorf("%w: %s", err, id)
		}

		return h.planRepo.Save(txCtx, plan)
	})
}
