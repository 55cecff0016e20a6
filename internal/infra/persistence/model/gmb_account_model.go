// Package model contains the GORM table mappings used by the postgres repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// GMBAccountModel is the GORM-specific struct for the 'gmb_accounts' table.
type GMBAccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_gmb_accounts_user_account,priority:1"`
	AccountID       *string   `gorm:"column:account_id;type:text;uniqueIndex:uq_gmb_accounts_user_account,priority:2"`
	AccountName     string    `gorm:"type:text"`
	Email           string    `gorm:"type:text"`
	GoogleAccountID string    `gorm:"type:text"`
	AccessToken     string    `gorm:"type:text"`
	RefreshToken    string    `gorm:"type:text"`
	TokenExpiresAt  *time.Time
	IsActive        bool `gorm:"not null;default:true"`
	LastSync        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (GMBAccountModel) TableName() string {
	return "gmb_accounts"
}
