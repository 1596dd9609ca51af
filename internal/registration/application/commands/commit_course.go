package commands

import (
	"context"
	"fmt"

	"github.com/semestra/semestra/internal/registration/domain"
	sharedApplication "github.com/semestra/semestra/internal/shared/application"
)

// CommitCourseCommand proposes a catalog course for a term plan.
// Force commits the course even when it conflicts.
type CommitCourseCommand struct {
	Term     string
	Category string
	Number   string
	Force    bool
}

// CommitCourseResult contains the outcome of the proposal.
type CommitCourseResult struct {
	Committed     bool
	ConflictsWith *domain.CourseID
}

// CommitCourseHandler handles the CommitCourseCommand.
type CommitCourseHandler struct {
	courseRepo domain.CourseRepository
	planRepo   domain.PlanRepository
	uow        sharedApplication.UnitOfWork
}

// NewCommitCourseHandler creates a new CommitCourseHandler.
func NewCommitCourseHandler(
	courseRepo domain.CourseRepository,
	planRepo domain.PlanRepository,
	uow sharedApplication.UnitOfWork,
) *CommitCourseHandler {
	return &CommitCourseHandler{courseRepo: courseRepo, planRepo: planRepo, uow: uow}
}

// Handle executes the CommitCourseCommand.
func (h *CommitCourseHandler) Handle(ctx context.Context, cmd CommitCourseCommand) (*CommitCourseResult, error) {
	var result *CommitCourseResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		id := domain.NewCourseID(cmd.Category, cmd.Number)
		course, err := h.courseRepo.FindByCourseID(txCtx, id)
		if err != nil {
			return err
		}
		if course == nil {
			return fmt.Errorf("%w: %s", domain.ErrCourseNotFound, id)
		}

		plan, err := h.planRepo.FindByTerm(txCtx, cmd.Term)
		if err != nil {
			return err
		}
		if plan == nil {
			plan = domain.NewPlan(cmd.Term)
		}

		// The plan owns its own copy so later catalog edits do not touch it.
		candidate := course.Clone()

		proposal := plan.Propose(candidate)
		result = &CommitCourseResult{Committed: proposal.Accepted}
		if proposal.ConflictsWith != nil {
			conflictID := proposal.ConflictsWith.CourseID()
			result.ConflictsWith = &conflictID
		}

		if !proposal.Accepted && !cmd.Force {
			return nil
		}

		plan.Commit(candidate)
		result.Committed = true

		return h.planRepo.Save(txCtx, plan)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
