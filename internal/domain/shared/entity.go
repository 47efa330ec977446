package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity holds the identity and timestamp columns shared by every
// persisted aggregate. Mutating methods on the aggregates refresh
// UpdatedAt themselves.
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// NewBaseEntity generates a fresh ID and stamps both timestamps.
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
