package model

import (
	"time"

	"github.com/google/uuid"
)

// OAuthStateModel is the GORM-specific struct for the 'oauth_states' table.
type OAuthStateModel struct {
	State     string    `gorm:"type:text;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthStateModel) TableName() string {
	return "oauth_states"
}
