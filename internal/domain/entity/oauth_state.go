package entity

import (
	"time"

	"github.com/google/uuid"
)

// OAuthState is the single-use CSRF token binding an OAuth callback to the initiating user.
type OAuthState struct {
	State     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
