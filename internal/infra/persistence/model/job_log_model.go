package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JobLogModel is the GORM-specific struct for the 'jobs_log' table.
type JobLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StartedAt  time.Time      `gorm:"not null"`
	FinishedAt time.Time      `gorm:"not null"`
	Status     string         `gorm:"type:varchar(16);not null"`
	Source     string         `gorm:"type:varchar(64);not null;index"`
	Meta       datatypes.JSON `gorm:"type:jsonb"`
	Error      *string        `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (JobLogModel) TableName() string {
	return "jobs_log"
}
