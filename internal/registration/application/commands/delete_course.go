package commands

import (
	"context"
	"fmt"

	"github.com/semestra/semestra/internal/registration/domain"
	sharedApplication "github.com/semestra/semestra/internal/shared/application"
)

// DeleteCourseCommand removes a course from the catalog. Term plans keep
// their own copies and are not touched.
type DeleteCourseCommand struct {
	Category string
	Number   string
}

// DeleteCourseHandler handles the DeleteCourseCommand.
type DeleteCourseHandler struct {
	courseRepo domain.CourseRepository
	uow        sharedApplication.UnitOfWork
}

// NewDeleteCourseHandler creates a new DeleteCourseHandler.
func NewDeleteCourseHandler(courseRepo domain.CourseRepository, uow sharedApplication.UnitOfWork) *DeleteCourseHandler {
	return &DeleteCourseHandler{courseRepo: courseRepo, uow: uow}
}

// Handle executes the DeleteCourseCommand.
func (h *DeleteCourseHandler) Handle(ctx context.Context, cmd DeleteCourseCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		id := domain.NewCourseID(cmd.Category, cmd.Number)

		existing, err := h.courseRepo.FindByCourseID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: %s", domain.ErrCourseNotFound, id)
		}

		return h.courseRepo.Delete(txCtx, id)
	})
}
