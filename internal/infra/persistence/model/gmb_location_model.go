package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GMBLocationModel is the GORM-specific struct for the 'gmb_locations' table.
type GMBLocationModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GMBAccountID uuid.UUID      `gorm:"column:gmb_account_id;type:uuid;not null;uniqueIndex:uq_gmb_locations_account_location,priority:1"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	LocationID   string         `gorm:"type:text;not null;uniqueIndex:uq_gmb_locations_account_location,priority:2"`
	LocationName string         `gorm:"type:text"`
	Address      *string        `gorm:"type:text"`
	Phone        *string        `gorm:"type:text"`
	Category     *string        `gorm:"type:text"`
	Website      *string        `gorm:"type:text"`
	IsActive     bool           `gorm:"not null;default:true"`
	Metadata     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GMBLocationModel) TableName() string {
	return "gmb_locations"
}
