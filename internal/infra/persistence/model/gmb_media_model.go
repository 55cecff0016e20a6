package model

import (
	"time"

	"github.com/google/uuid"
)

// GMBMediaModel is the GORM-specific struct for the 'gmb_media' table.
// CreatedAt and UpdatedAt carry upstream timestamps, so GORM auto-tracking is disabled.
type GMBMediaModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GMBAccountID    uuid.UUID  `gorm:"column:gmb_account_id;type:uuid;not null;index"`
	LocationID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ExternalMediaID string     `gorm:"type:text;not null;uniqueIndex"`
	Type            *string    `gorm:"type:text"`
	URL             *string    `gorm:"column:url;type:text"`
	CreatedAt       *time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (GMBMediaModel) TableName() string {
	return "gmb_media"
}
