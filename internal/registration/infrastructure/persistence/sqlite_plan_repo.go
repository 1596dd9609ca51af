package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/semestra/semestra/internal/registration/domain"
	"github.com/semestra/semestra/internal/shared/infrastructure/database"
	sharedPersistence "github.com/semestra/semestra/internal/shared/infrastructure/persistence"
)

// SQLitePlanRepository implements domain.PlanRepository using SQLite.
type SQLitePlanRepository struct {
	db *sql.DB
}

// NewSQLitePlanRepository creates a new SQLite plan repository.
func NewSQLitePlanRepository(db *sql.DB) *SQLitePlanRepository {
	return &SQLitePlanRepository{db: db}
}

func (r *SQLitePlanRepository) getQuerier(ctx context.Context) querier {
	if info, ok := sharedPersistence.SQLiteTxInfoFromContext(ctx); ok {
		return info.Tx
	}
	return r.db
}

// Save persists a plan and rewrites its course list.
func (r *SQLitePlanRepository) Save(ctx context.Context, plan *domain.Plan) error {
	q := r.getQuerier(ctx)

	result, err := q.ExecContext(ctx,
		`UPDATE plans SET term = ?, updated_at = ? WHERE id = ?`,
		plan.Term(),
		plan.UpdatedAt().Format(time.RFC3339),
		plan.ID().String(),
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		_, err = q.ExecContext(ctx,
			`INSERT INTO plans (id, term, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			plan.ID().String(),
			plan.Term(),
			plan.CreatedAt().Format(time.RFC3339),
			plan.UpdatedAt().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	}

	if _, err := q.ExecContext(ctx,
		`DELETE FROM plan_courses WHERE plan_id = ?`, plan.ID().String(),
	); err != nil {
		return err
	}

	for i, course := range plan.Courses() {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO plan_courses (plan_id, position, course_id, category, number, slots, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			plan.ID().String(),
			i,
			course.ID().String(),
			course.Category(),
			course.Number(),
			course.SlotSpec(),
			course.CreatedAt().Format(time.RFC3339),
			course.UpdatedAt().Format(time.RFC3339),
		); err != nil {
			return err
		}
	}

	return nil
}

// FindByTerm retrieves the plan for a term. Returns nil without error when absent.
func (r *SQLitePlanRepository) FindByTerm(ctx context.Context, term string) (*domain.Plan, error) {
	q := r.getQuerier(ctx)

	var (
		rawID                string
		createdAt, updatedAt string
	)
	err := q.QueryRowContext(ctx,
		`SELECT id, created_at, updated_at FROM plans WHERE term = ?`, term,
	).Scan(&rawID, &createdAt, &updatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid plan id: %w", err)
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}

	courses, err := r.loadCourses(ctx, q, rawID)
	if err != nil {
		return nil, err
	}

	return domain.RehydratePlan(id, term, courses, created, updated), nil
}

func (r *SQLitePlanRepository) loadCourses(ctx context.Context, q querier, planID string) ([]*domain.Course, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT course_id, category, number, slots, created_at, updated_at
		 FROM plan_courses WHERE plan_id = ? ORDER BY position`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		var (
			rawID, category, number, slotSpec string
			createdAt, updatedAt              string
		)
		if err := rows.Scan(&rawID, &category, &number, &slotSpec, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("invalid course id: %w", err)
		}
		slots, err := domain.ParseSlotSpec(slotSpec)
		if err != nil {
			return nil, fmt.Errorf("invalid slots in database: %w", err)
		}
		created, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at: %w", err)
		}
		updated, err := time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid updated_at: %w", err)
		}

		courses = append(courses, domain.RehydrateCourse(id, category, number, slots, created, updated))
	}

	return courses, rows.Err()
}
