package model

import (
	"time"

	"github.com/google/uuid"
)

// OAuthTokenModel is the GORM-specific struct for the 'oauth_tokens' table.
type OAuthTokenModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_oauth_tokens_user_provider,priority:1"`
	Provider       string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_oauth_tokens_user_provider,priority:2"`
	AccessToken    string    `gorm:"type:text"`
	RefreshToken   string    `gorm:"type:text"`
	TokenExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthTokenModel) TableName() string {
	return "oauth_tokens"
}
