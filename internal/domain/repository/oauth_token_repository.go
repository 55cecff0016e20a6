package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOAuthTokenNotFound is returned when the user has no token row.
var ErrOAuthTokenNotFound = errors.New("oauth token not found")

// OAuthTokenRepository defines persistence for user-level OAuth tokens.
type OAuthTokenRepository interface {
	// FindByUserAndProvider returns the token row of one provider.
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.UserOAuthToken, error)

	// UpdateTokens persists a refreshed access token on the row it came from.
	UpdateTokens(ctx context.Context, id uuid.UUID, update AccountTokenUpdate) error
}
