package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/semestra/semestra/internal/registration/domain"
	"github.com/semestra/semestra/internal/shared/infrastructure/database"
	sharedPersistence "github.com/semestra/semestra/internal/shared/infrastructure/persistence"
)

// PostgresPlanRepository implements domain.PlanRepository using PostgreSQL.
type PostgresPlanRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPlanRepository creates a new PostgreSQL plan repository.
func NewPostgresPlanRepository(pool *pgxpool.Pool) *PostgresPlanRepository {
	return &PostgresPlanRepository{pool: pool}
}

// Save persists a plan and rewrites its course list.
func (r *PostgresPlanRepository) Save(ctx context.Context, plan *domain.Plan) error {
	exec := sharedPersistence.Executor(ctx, r.pool)

	tag, err := exec.Exec(ctx,
		`UPDATE plans SET term = $1, updated_at = $2 WHERE id = $3`,
		plan.Term(), plan.UpdatedAt(), plan.ID(),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		_, err = exec.Exec(ctx,
			`INSERT INTO plans (id, term, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
			plan.ID(), plan.Term(), plan.CreatedAt(), plan.UpdatedAt(),
		)
		if err != nil {
			return err
		}
	}

	if _, err := exec.Exec(ctx,
		`DELETE FROM plan_courses WHERE plan_id = $1`, plan.ID(),
	); err != nil {
		return err
	}

	for i, course := range plan.Courses() {
		if _, err := exec.Exec(ctx,
			`INSERT INTO plan_courses (plan_id, position, course_id, category, number, slots, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			plan.ID(), i, course.ID(), course.Category(), course.Number(),
			course.SlotSpec(), course.CreatedAt(), course.UpdatedAt(),
		); err != nil {
			return err
		}
	}

	return nil
}

// FindByTerm retrieves the plan for a term. Returns nil without error when absent.
func (r *PostgresPlanRepository) FindByTerm(ctx context.Context, term string) (*domain.Plan, error) {
	exec := sharedPersistence.Executor(ctx, r.pool)

	var (
		id                 uuid.UUID
		createdAt, updated time.Time
	)
	err := exec.QueryRow(ctx,
		`SELECT id, created_at, updated_at FROM plans WHERE term = $1`, term,
	).Scan(&id, &createdAt, &updated)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	courses, err := r.loadCourses(ctx, exec, id)
	if err != nil {
		return nil, err
	}

	return domain.RehydratePlan(id, term, courses, createdAt, updated), nil
}

func (r *PostgresPlanRepository) loadCourses(ctx context.Context, exec sharedPersistence.DBExecutor, planID uuid.UUID) ([]*domain.Course, error) {
	rows, err := exec.Query(ctx,
		`SELECT course_id, category, number, slots, created_at, updated_at
		 FROM plan_courses WHERE plan_id = $1 ORDER BY position`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		var (
			id                   uuid.UUID
			category, number     string
			slotSpec             string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &category, &number, &slotSpec, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		slots, err := domain.ParseSlotSpec(slotSpec)
		if err != nil {
			return nil, fmt.Errorf("invalid slots in database: %w", err)
		}

		courses = append(courses, domain.RehydrateCourse(id, category, number, slots, createdAt, updatedAt))
	}

	return courses, rows.Err()
}
