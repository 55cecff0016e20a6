package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is the local mirror of a customer review.
type Review struct {
	ID               uuid.UUID  `json:"id"`
	GMBAccountID     uuid.UUID  `json:"gmb_account_id"`
	UserID           uuid.UUID  `json:"user_id"`
	LocationID       uuid.UUID  `json:"location_id"`        // Local gmb_locations.id.
	ExternalReviewID string     `json:"external_review_id"` // Google review resource name.
	ReviewerName     string     `json:"reviewer_name"`
	Rating           *int       `json:"rating,omitempty"`
	Text             string     `json:"review_text"`
	ReviewDate       *time.Time `json:"review_date,omitempty"`
	ReplyText        *string    `json:"reply_text,omitempty"`
	ReplyDate        *time.Time `json:"reply_date,omitempty"`
	HasReply         bool       `json:"has_reply"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
