package cli

import (
	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/semestra/semestra/internal/registration/application/queries"
	"github.com/semestra/semestra/internal/registration/infrastructure/coursefile"
)

// App holds the CLI application dependencies.
type App struct {
	// Command Handlers
	AddCourseHandler     *commands.AddCourseHandler
	DeleteCourseHandler  *commands.DeleteCourseHandler
	CommitCourseHandler  *commands.CommitCourseHandler
	RemoveCourseHandler  *commands.RemoveCourseHandler
	GeneratePlanHandler  *commands.GeneratePlanHandler
	ImportCoursesHandler *commands.ImportCoursesHandler

	// Query Handlers
	GetPlanHandler     *queries.GetPlanHandler
	ListCoursesHandler *queries.ListCoursesHandler

	// Course file store
	CourseFile *coursefile.Store

	// Default term (configured per environment)
	DefaultTerm string
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	addCourseHandler *commands.AddCourseHandler,
	deleteCourseHandler *commands.DeleteCourseHandler,
	commitCourseHandler *commands.CommitCourseHandler,
	removeCourseHandler *commands.RemoveCourseHandler,
	generatePlanHandler *commands.GeneratePlanHandler,
	importCoursesHandler *commands.ImportCoursesHandler,
	getPlanHandler *queries.GetPlanHandler,
	listCoursesHandler *queries.ListCoursesHandler,
	courseFile *coursefile.Store,
	defaultTerm string,
) *App {
	return &App{
		AddCourseHandler:     addCourseHandler,
		DeleteCourseHandler:  deleteCourseHandler,
		CommitCourseHandler:  commitCourseHandler,
		RemoveCourseHandler:  removeCourseHandler,
		GeneratePlanHandler:  generatePlanHandler,
		ImportCoursesHandler: importCoursesHandler,
		GetPlanHandler:       getPlanHandler,
		ListCoursesHandler:   listCoursesHandler,
		CourseFile:           courseFile,
		DefaultTerm:          defaultTerm,
	}
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
