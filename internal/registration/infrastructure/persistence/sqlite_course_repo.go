// Package persistence provides database implementations for registration repositories.
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

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteCourseRepository implements domain.CourseRepository using SQLite.
type SQLiteCourseRepository struct {
	db *sql.DB
}

// NewSQLiteCourseRepository creates a new SQLite course repository.
func NewSQLiteCourseRepository(db *sql.DB) *SQLiteCourseRepository {
	return &SQLiteCourseRepository{db: db}
}

// getQuerier returns the transaction from context when present, else the connection.
func (r *SQLiteCourseRepository) getQuerier(ctx context.Context) querier {
	if info, ok := sharedPersistence.SQLiteTxInfoFromContext(ctx); ok {
		return info.Tx
	}
	return r.db
}

// Save persists a course, inserting or updating by entity ID.
func (r *SQLiteCourseRepository) Save(ctx context.Context, course *domain.Course) error {
	q := r.getQuerier(ctx)

	result, err := q.ExecContext(ctx,
		`UPDATE courses SET category = ?, number = ?, updated_at = ? WHERE id = ?`,
		course.Category(),
		course.Number(),
		course.UpdatedAt().Format(time.RFC3339),
		course.ID().String(),
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
			`INSERT INTO courses (id, category, number, position, created_at, updated_at)
			 VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM courses), ?, ?)`,
			course.ID().String(),
			course.Category(),
			course.Number(),
			course.CreatedAt().Format(time.RFC3339),
			course.UpdatedAt().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	}

	if _, err := q.ExecContext(ctx,
		`DELETE FROM course_slots WHERE course_id = ?`, course.ID().String(),
	); err != nil {
		return err
	}

	for i, slot := range course.Slots() {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO course_slots (course_id, position, days, start_min, end_min)
			 VALUES (?, ?, ?, ?, ?)`,
			course.ID().String(), i, int(slot.Days()), int(slot.Start()), int(slot.End()),
		); err != nil {
			return err
		}
	}

	return nil
}

// FindByCourseID retrieves a course by (category, number).
func (r *SQLiteCourseRepository) FindByCourseID(ctx context.Context, id domain.CourseID) (*domain.Course, error) {
	q := r.getQuerier(ctx)

	row := q.QueryRowContext(ctx,
		`SELECT id, category, number, created_at, updated_at
		 FROM courses WHERE category = ? AND number = ?`,
		id.Category, id.Number,
	)

	var header courseRow
	if err := row.Scan(&header.id, &header.category, &header.number, &header.createdAt, &header.updatedAt); err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.hydrate(ctx, q, header)
}

// List returns all catalog courses in insertion order.
func (r *SQLiteCourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	q := r.getQuerier(ctx)

	rows, err := q.QueryContext(ctx,
		`SELECT id, category, number, created_at, updated_at
		 FROM courses ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}

	var headers []courseRow
	for rows.Next() {
		var h courseRow
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
		course, err := r.hydrate(ctx, q, h)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// Delete removes a course and its slots by (category, number).
func (r *SQLiteCourseRepository) Delete(ctx context.Context, id domain.CourseID) error {
	q := r.getQuerier(ctx)

	if _, err := q.ExecContext(ctx,
		`DELETE FROM course_slots WHERE course_id IN
		 (SELECT id FROM courses WHERE category = ? AND number = ?)`,
		id.Category, id.Number,
	); err != nil {
		return err
	}

	_, err := q.ExecContext(ctx,
		`DELETE FROM courses WHERE category = ? AND number = ?`,
		id.Category, id.Number,
	)
	return err
}

type courseRow struct {
	id        string
	category  string
	number    string
	createdAt string
	updatedAt string
}

func (r *SQLiteCourseRepository) hydrate(ctx context.Context, q querier, row courseRow) (*domain.Course, error) {
	id, err := uuid.Parse(row.id)
	if err != nil {
		return nil, fmt.Errorf("invalid course id: %w", err)
	}
	created, err := time.Parse(time.RFC3339, row.createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updated, err := time.Parse(time.RFC3339, row.updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}

	slots, err := r.loadSlots(ctx, q, row.id)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateCourse(id, row.category, row.number, slots, created, updated), nil
}

func (r *SQLiteCourseRepository) loadSlots(ctx context.Context, q querier, courseID string) ([]domain.TimeSlot, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT days, start_min, end_min FROM course_slots
		 WHERE course_id = ? ORDER BY position`,
		courseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.TimeSlot
	for rows.Next() {
		var days, startMin, endMin int
		if err := rows.Scan(&days, &startMin, &endMin); err != nil {
			return nil, err
		}
		slot, err := domain.NewTimeSlot(domain.DaySet(days), domain.ClockTime(startMin), domain.ClockTime(endMin))
		if err != nil {
			return nil, fmt.Errorf("invalid slot in database: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}
