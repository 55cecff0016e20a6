package usecase

import (
	"context"
	"time"

	"studio/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenRequest is the input every token strategy sees.
type TokenRequest struct {
	Access  entity.AccessContext
	Account *entity.GMBAccount
}

// TokenStrategy is one tier of the credential chain.
type TokenStrategy interface {
	// Source names the tier for logs and the returned token.
	Source() entity.TokenSource

	// TryGetToken returns (nil, nil) when the tier does not apply to the request.
	// ErrReconnectRequired is terminal; any other error lets the chain continue.
	TryGetToken(ctx context.Context, req *TokenRequest) (*entity.Token, error)
}

// TokenProvider resolves a usable Google bearer token for an account.
type TokenProvider interface {
	AccessToken(ctx context.Context, access entity.AccessContext, account *entity.GMBAccount) (*entity.Token, error)
}

// UserTokenRefresh is the outcome of RefreshIfNeeded.
type UserTokenRefresh struct {
	Refreshed bool
	ExpiresAt *time.Time
}

// UserTokenUsecase keeps user-level provider tokens fresh for client-side integrations.
type UserTokenUsecase interface {
	// RefreshIfNeeded refreshes the user's token for provider when it expires within the configured skew.
	// A missing row or missing refresh token is not an error; Refreshed is false.
	RefreshIfNeeded(ctx context.Context, userID uuid.UUID, provider string) (*UserTokenRefresh, error)
}
