// Package commands contains the write-side handlers for registration.
package commands

import (
	"context"
	"fmt"

	"github.com/semestra/semestra/internal/registration/domain"
	sharedApplication "github.com/semestra/semestra/internal/shared/application"
)

// AddCourseCommand contains the data needed to add a catalog course.
type AddCourseCommand struct {
	Category string
	Number   string
	SlotSpec string
}

// AddCourseResult contains the result of adding a course.
type AddCourseResult struct {
	CourseID domain.CourseID
}

// AddCourseHandler handles the AddCourseCommand.
type AddCourseHandler struct {
	courseRepo domain.CourseRepository
	uow        sharedApplication.UnitOfWork
}

// NewAddCourseHandler creates a new AddCourseHandler.
func NewAddCourseHandler(courseRepo domain.CourseRepository, uow sharedApplication.UnitOfWork) *AddCourseHandler {
	return &AddCourseHandler{courseRepo: courseRepo, uow: uow}
}

// Handle executes the AddCourseCommand.
func (h *AddCourseHandler) Handle(ctx context.Context, cmd AddCourseCommand) (*AddCourseResult, error) {
	var result *AddCourseResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		course, err := domain.NewCourseFromSpec(cmd.Category, cmd.Number, cmd.SlotSpec)
		if err != nil {
			return err
		}

		existing, err := h.courseRepo.FindByCourseID(txCtx, course.CourseID())
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCourse, course.CourseID())
		}

		if err := h.courseRepo.Save(txCtx, course); err != nil {
			return err
		}

		result = &AddCourseResult{CourseID: course.CourseID()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
