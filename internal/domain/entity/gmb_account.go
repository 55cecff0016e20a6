package entity

import (
	"time"

	"github.com/google/uuid"
)

// GMBAccount is a connected Google Business Profile account together with its OAuth credential.
type GMBAccount struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	AccountName     string     `json:"account_name"`      // Google resource name, e.g. "accounts/123". Empty until resolved.
	DisplayName     string     `json:"display_name"`      // Human readable account name.
	Email           string     `json:"email"`
	GoogleAccountID string     `json:"google_account_id"` // Google user id from userinfo.
	AccessToken     string     `json:"-"`
	RefreshToken    string     `json:"-"`
	TokenExpiresAt  *time.Time `json:"token_expires_at,omitempty"`
	IsActive        bool       `json:"is_active"`
	LastSync        *time.Time `json:"last_sync,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// HasUsableAccessToken reports whether the cached access token is valid past now+skew.
func (a *GMBAccount) HasUsableAccessToken(now time.Time, skew time.Duration) bool {
	return tokenUsable(a.AccessToken, a.TokenExpiresAt, now, skew)
}

func tokenUsable(accessToken string, expiresAt *time.Time, now time.Time, skew time.Duration) bool {
	if accessToken == "" || expiresAt == nil {
		return false
	}

	return expiresAt.After(now.Add(skew))
}
