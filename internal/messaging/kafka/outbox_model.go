package kafka

import (
	"time"

	"github.com/google/uuid"
)

// OutboxRecord is the table layout behind OutboxRepository, used for
// schema migration only.
type OutboxRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID     *string   `gorm:"type:varchar(64)"`
	AggregateType string    `gorm:"type:varchar(50);not null"`
	AggregateID   string    `gorm:"type:varchar(64);not null"`
	EventType     string    `gorm:"type:varchar(100);not null"`
	Topic         string    `gorm:"type:varchar(200);not null"`
	Payload       []byte    `gorm:"type:jsonb;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:pending;index:idx_outbox_status_created,priority:1"`
	RetryCount    int       `gorm:"not null;default:0"`
	NextRetryAt   *time.Time
	LockedUntil   *time.Time
	ErrorMessage  *string `gorm:"type:varchar(500)"`
	ProcessedAt   *time.Time
	CreatedAt     time.Time `gorm:"not null;default:now();index:idx_outbox_status_created,priority:2"`
	UpdatedAt     time.Time `gorm:"not null;default:now()"`
}

func (OutboxRecord) TableName() string {
	return "outbox_events"
}
