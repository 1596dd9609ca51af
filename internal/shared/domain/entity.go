package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is a domain object with a stable identity.
type Entity interface {
	ID() uuid.UUID
	CreatedAt() time.Time
	UpdatedAt() time.Time
	Equals(other Entity) bool
}

// BaseEntity provides identity and timestamps for domain entities.
type BaseEntity struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewBaseEntity creates an entity with a fresh ID and current timestamps.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
}

// RehydrateBaseEntity recreates an entity from persisted state.
func RehydrateBaseEntity(id uuid.UUID, createdAt, updatedAt time.Time) BaseEntity {
	return BaseEntity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e BaseEntity) ID() uuid.UUID        { return e.id }
func (e BaseEntity) CreatedAt() time.Time { return e.createdAt }
func (e BaseEntity) UpdatedAt() time.Time { return e.updatedAt }

// Touch updates the updatedAt timestamp.
func (e *BaseEntity) Touch() {
	e.updatedAt = time.Now().UTC()
}

// Equals reports whether two entities share the same identity.
func (e BaseEntity) Equals(other Entity) bool {
	if other == nil {
		return false
	}
	return e.id == other.ID()
}
