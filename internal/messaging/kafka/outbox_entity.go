package kafka

import "time"

// OutboxRecord is the table layout for outbox_events, used only for migrations.
type OutboxRecord struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	RequestID     string     `gorm:"size:64"`
	AggregateType string     `gorm:"size:64;not null"`
	AggregateID   string     `gorm:"type:uuid;not null"`
	EventType     string     `gorm:"size:64;not null"`
	Topic         string     `gorm:"size:255;not null"`
	Payload       []byte     `gorm:"type:jsonb;not null"`
	Status        string     `gorm:"size:16;not null;default:pending;index:idx_outbox_status_created,priority:1"`
	RetryCount    int        `gorm:"not null;default:0"`
	NextRetryAt   *time.Time `gorm:"index"`
	ErrorMessage  *string    `gorm:"size:500"`
	ProcessedAt   *time.Time `gorm:"default:null"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index:idx_outbox_status_created,priority:2"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (OutboxRecord) TableName() string {
	return "outbox_events"
}
