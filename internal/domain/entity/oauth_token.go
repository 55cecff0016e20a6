package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenSource identifies which tier of the token chain produced a bearer token.
type TokenSource string

const (
	TokenSourceAccount        TokenSource = "account"
	TokenSourceUser           TokenSource = "user"
	TokenSourceServiceAccount TokenSource = "service_account"
)

// UserOAuthToken is a user-level OAuth grant not bound to a specific GMB account.
type UserOAuthToken struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasUsableAccessToken reports whether the cached access token is valid past now+skew.
func (t *UserOAuthToken) HasUsableAccessToken(now time.Time, skew time.Duration) bool {
	return tokenUsable(t.AccessToken, t.TokenExpiresAt, now, skew)
}

// Token is a bearer token ready to be sent to Google.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
	Source      TokenSource
}

// TokenGrant is the token endpoint response for code exchange and refresh.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string // Empty when Google did not rotate or issue one.
	ExpiresIn    time.Duration
	Scope        string
	TokenType    string
}

// ExpiresAt computes the absolute expiry of the grant.
func (g *TokenGrant) ExpiresAt(now time.Time) time.Time {
	return now.Add(g.ExpiresIn)
}
