// Package app wires configuration, storage and handlers together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/semestra/semestra/internal/registration/application/commands"
	"github.com/semestra/semestra/internal/registration/application/queries"
	registrationDomain "github.com/semestra/semestra/internal/registration/domain"
	"github.com/semestra/semestra/internal/registration/infrastructure/coursefile"
	sharedApplication "github.com/semestra/semestra/internal/shared/application"
	"github.com/semestra/semestra/internal/shared/infrastructure/database"
	_ "github.com/semestra/semestra/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	_ "github.com/semestra/semestra/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/semestra/semestra/internal/shared/infrastructure/migrations"
	"github.com/semestra/semestra/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	DBConn   database.Connection
	DBDriver database.Driver

	// Repositories
	CourseRepo registrationDomain.CourseRepository
	PlanRepo   registrationDomain.PlanRepository

	// Unit of Work
	UnitOfWork sharedApplication.UnitOfWork

	// Course file store
	CourseFile *coursefile.Store

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
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	conn, err := database.NewConnection(ctx, database.Config{
		Driver:     database.Driver(cfg.DatabaseDriver),
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DBConn = conn
	c.DBDriver = conn.Driver()
	logger.Info("connected to database", "driver", c.DBDriver)

	factory := NewRepositoryFactory(conn)

	if err := runMigrations(ctx, factory); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	c.CourseRepo, err = factory.CourseRepository()
	if err != nil {
		conn.Close()
		return nil, err
	}
	c.PlanRepo, err = factory.PlanRepository()
	if err != nil {
		conn.Close()
		return nil, err
	}
	c.UnitOfWork, err = factory.UnitOfWork()
	if err != nil {
		conn.Close()
		return nil, err
	}

	c.CourseFile = coursefile.NewStore(cfg.CourseFile)

	// Command handlers
	c.AddCourseHandler = commands.NewAddCourseHandler(c.CourseRepo, c.UnitOfWork)
	c.DeleteCourseHandler = commands.NewDeleteCourseHandler(c.CourseRepo, c.UnitOfWork)
	c.CommitCourseHandler = commands.NewCommitCourseHandler(c.CourseRepo, c.PlanRepo, c.UnitOfWork)
	c.RemoveCourseHandler = commands.NewRemoveCourseHandler(c.PlanRepo, c.UnitOfWork)
	c.GeneratePlanHandler = commands.NewGeneratePlanHandler(c.CourseRepo, c.PlanRepo, c.UnitOfWork)
	c.ImportCoursesHandler = commands.NewImportCoursesHandler(c.CourseRepo, c.UnitOfWork)

	// Query handlers
	c.GetPlanHandler = queries.NewGetPlanHandler(c.PlanRepo)
	c.ListCoursesHandler = queries.NewListCoursesHandler(c.CourseRepo)

	return c, nil
}

func runMigrations(ctx context.Context, factory *RepositoryFactory) error {
	switch factory.Driver() {
	case database.DriverPostgres:
		pool, err := factory.getPostgresPool()
		if err != nil {
			return err
		}
		return migrations.RunPostgresMigrations(ctx, pool)

	case database.DriverSQLite:
		db, err := factory.getSQLiteDB()
		if err != nil {
			return err
		}
		return migrations.RunSQLiteMigrations(ctx, db)

	default:
		return fmt.Errorf("unsupported driver: %s", factory.Driver())
	}
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.DBConn != nil {
		return c.DBConn.Close()
	}
	return nil
}
