package app

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	registrationDomain "github.com/semestra/semestra/internal/registration/domain"
	registrationPersistence "github.com/semestra/semestra/internal/registration/infrastructure/persistence"
	sharedApplication "github.com/semestra/semestra/internal/shared/application"
	"github.com/semestra/semestra/internal/shared/infrastructure/database"
	sharedPersistence "github.com/semestra/semestra/internal/shared/infrastructure/persistence"
)

// RepositoryFactory creates repositories based on the database driver.
type RepositoryFactory struct {
	conn   database.Connection
	driver database.Driver
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(conn database.Connection) *RepositoryFactory {
	return &RepositoryFactory{
		conn:   conn,
		driver: conn.Driver(),
	}
}

// CourseRepository creates a course repository for the configured driver.
func (f *RepositoryFactory) CourseRepository() (registrationDomain.CourseRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		pool, err := f.getPostgresPool()
		if err != nil {
			return nil, err
		}
		return registrationPersistence.NewPostgresCourseRepository(pool), nil

	case database.DriverSQLite:
		db, err := f.getSQLiteDB()
		if err != nil {
			return nil, err
		}
		return registrationPersistence.NewSQLiteCourseRepository(db), nil

	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// PlanRepository creates a plan repository for the configured driver.
func (f *RepositoryFactory) PlanRepository() (registrationDomain.PlanRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		pool, err := f.getPostgresPool()
		if err != nil {
			return nil, err
		}
		return registrationPersistence.NewPostgresPlanRepository(pool), nil

	case database.DriverSQLite:
		db, err := f.getSQLiteDB()
		if err != nil {
			return nil, err
		}
		return registrationPersistence.NewSQLitePlanRepository(db), nil

	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// UnitOfWork creates a unit of work for the configured driver.
func (f *RepositoryFactory) UnitOfWork() (sharedApplication.UnitOfWork, error) {
	switch f.driver {
	case database.DriverPostgres:
		pool, err := f.getPostgresPool()
		if err != nil {
			return nil, err
		}
		return sharedPersistence.NewPostgresUnitOfWork(pool), nil

	case database.DriverSQLite:
		db, err := f.getSQLiteDB()
		if err != nil {
			return nil, err
		}
		return sharedPersistence.NewSQLiteUnitOfWork(db), nil

	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

func (f *RepositoryFactory) getPostgresPool() (*pgxpool.Pool, error) {
	pgConn, ok := f.conn.(interface{ Pool() *pgxpool.Pool })
	if !ok {
		return nil, fmt.Errorf("postgres connection does not expose Pool()")
	}
	return pgConn.Pool(), nil
}

func (f *RepositoryFactory) getSQLiteDB() (*sql.DB, error) {
	sqliteConn, ok := f.conn.(interface{ DB() *sql.DB })
	if !ok {
		return nil, fmt.Errorf("sqlite connection does not expose DB()")
	}
	return sqliteConn.DB(), nil
}

// Driver returns the database driver type.
func (f *RepositoryFactory) Driver() database.Driver {
	return f.driver
}

// Connection returns the underlying database connection.
func (f *RepositoryFactory) Connection() database.Connection {
	return f.conn
}
