package model

import (
	"time"

	"github.com/google/uuid"
)

// GMBReviewModel is the GORM-specific struct for the 'gmb_reviews' table.
type GMBReviewModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GMBAccountID     uuid.UUID `gorm:"column:gmb_account_id;type:uuid;not null;index"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	LocationID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ExternalReviewID string    `gorm:"type:text;not null;uniqueIndex"`
	ReviewerName     *string   `gorm:"type:text"`
	Rating           *int
	ReviewText       *string `gorm:"type:text"`
	ReviewDate       *time.Time
	ReplyText        *string `gorm:"type:text"`
	ReplyDate        *time.Time
	HasReply         bool `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (GMBReviewModel) TableName() string {
	return "gmb_reviews"
}
