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

// PostgresCourseRepository implements domain.CourseRepository using PostgreSQL.
type PostgresCourseRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCourseRepository creates a new PostgreSQL course repository.
func NewPostgresCourseRepository(pool *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{pool: pool}
}

// Save persists a course, inserting or updating by entity ID.
func (r *PostgresCourseRepository) Save(ctx context.Context, course *domain.Course) error {
	exec := sharedPersistence.Executor(ctx, r.pool)

	tag, err := exec.Exec(ctx,
		`UPDATE courses SET category = $1, number = $2, updated_at = $3 WHERE id = $4`,
		course.Category(), course.Number(), course.UpdatedAt(), course.ID(),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		_, err = exec.Exec(ctx,
			`INSERT INTO courses (id, category, number, position, created_at, updated_at)
			 VALUES ($1, $2, $3, (SELECT COALESCE(MAX(position), -1) + 1 FROM courses), $4, $5)`,
			course.ID(), course.Category(), course.Number(), course.CreatedAt(), course.UpdatedAt(),
		)
		if err != nil {
			return err
		}
	}

	if _, err := exec.Exec(ctx,
		`DELETE FROM course_slots WHERE course_id = $1`, course.ID(),
	); err != nil {
		return err
	}

	for i, slot := range course.Slots() {
		if _, err := exec.Exec(ctx,
			`INSERT INTO course_slots (course_id, position, days, start_min, end_min)
			 VALUES ($1, $2, $3, $4, $5)`,
			course.ID(), i, int(slot.Days()), int(slot.Start()), int(slot.End()),
		); err != nil {
			return err
		}
	}

	return nil
}

// FindByCourseID retrieves a course by (category, number).
func (r *PostgresCourseRepository) FindByCourseID(ctx context.Context, id domain.CourseID) (*domain.Course, error) {
	exec := sharedPersistence.Executor(ctx, r.pool)

	var h pgCourseRow
	err := exec.QueryRow(ctx,
		`SELECT id, category, number, created_at, updated_at
		 FROM courses WHERE category = $1 AND number = $2`,
		id.Category, id.Number,
	).Scan(&h.id, &h.category, &h.number, &h.createdAt, &h.updatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.hydrate(ctx, exec, h)
}

// List returns all catalog courses in insertion order.
func (r *PostgresCourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	exec := sharedPersistence.Executor(ctx, r.pool)

	rows, err := exec.Query(ctx,
		`SELECT id, category, number, created_at, updated_at
		 FROM courses ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}

	var headers []pgCourseRow
	for rows.Next() {
		var h pgCourseRow
		if err := rows.Scan(&h.id, &h.category, &h.number, &h.createdAt, &h.updatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	courses := make([]*domain.Course, 0, len(headers))
	for _, h := range headers {
		course, err := r.hydrate(ctx, exec, h)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// Delete removes a course by (category, number). Slots cascade.
func (r *PostgresCourseRepository) Delete(ctx context.Context, id domain.CourseID) error {
	exec := sharedPersistence.Executor(ctx, r.pool)

	_, err := exec.Exec(ctx,
		`DELETE FROM courses WHERE category = $1 AND number = $2`,
		id.Category, id.Number,
	)
	return err
}

type pgCourseRow struct {
	id        uuid.UUID
	category  string
	number    string
	createdAt time.Time
	updatedAt time.Time
}

func (r *PostgresCourseRepository) hydrate(ctx context.Context, exec sharedPersistence.DBExecutor, row pgCourseRow) (*domain.Course, error) {
	slotRows, err := exec.Query(ctx,
		`SELECT days, start_min, end_min FROM course_slots
		 WHERE course_id = $1 ORDER BY position`,
		row.id,
	)
	if err != nil {
		return nil, err
	}
	defer slotRows.Close()

	var slots []domain.TimeSlot
	for slotRows.Next() {
		var days, startMin, endMin int
		if err := slotRows.Scan(&days, &startMin, &endMin); err != nil {
			return nil, err
		}
		slot, err := domain.NewTimeSlot(domain.DaySet(days), domain.ClockTime(startMin), domain.ClockTime(endMin))
		if err != nil {
			return nil, fmt.Errorf("invalid slot in database: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := slotRows.Err(); err != nil {
		return nil, err
	}

	return domain.RehydrateCourse(row.id, row.category, row.number, slots, row.createdAt, row.updatedAt), nil
}
