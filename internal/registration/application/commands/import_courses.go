package commands

import (
	"context"

	"github.com/semestra/semestra/internal/registration/domain"
	sharedApplication "github.com/semestra/semestra/internal/shared/application"
)

// CourseRecord is one course entry handed to the importer.
type CourseRecord struct {
	Category string
	Number   string
	SlotSpec string
}

// ImportCoursesCommand loads catalog courses in bulk.
type ImportCoursesCommand struct {
	Records []CourseRecord
}

// ImportCoursesResult reports how many records were imported and how many
// were skipped as duplicates.
type ImportCoursesResult struct {
	Imported int
	Skipped  int
}

// ImportCoursesHandler handles the ImportCoursesCommand.
type ImportCoursesHandler struct {
	courseRepo domain.CourseRepository
	uow        sharedApplication.UnitOfWork
}

// NewImportCoursesHandler creates a new ImportCoursesHandler.
func NewImportCoursesHandler(courseRepo domain.CourseRepository, uow sharedApplication.UnitOfWork) *ImportCoursesHandler {
	return &ImportCoursesHandler{courseRepo: courseRepo, uow: uow}
}

// Handle executes the ImportCoursesCommand. Records matching an existing
// (category, number) are skipped, not overwritten.
func (h *ImportCoursesHandler) Handle(ctx context.Context, cmd ImportCoursesCommand) (*ImportCoursesResult, error) {
	result := &ImportCoursesResult{}

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		for _, rec := range cmd.Records {
			course, err := domain.NewCourseFromSpec(rec.Category, rec.Number, rec.SlotSpec)
			if err != nil {
				return err
			}

			existing, err := h.courseRepo.FindByCourseID(txCtx, course.CourseID())
			if err != nil {
				return err
			}
			if existing != nil {
				result.Skipped++
				continue
			}

			if err := h.courseRepo.Save(txCtx, course); err != nil {
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
