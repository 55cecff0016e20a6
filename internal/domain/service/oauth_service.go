package service

import (
	"context"

	"studio/internal/domain/entity"
)

// GoogleUser is the subset of the userinfo endpoint the connect flow stores.
type GoogleUser struct {
	ID    string
	Email string
	Name  string
}

// GoogleOAuthClient talks to Google's OAuth 2.0 endpoints on behalf of the configured client.
type GoogleOAuthClient interface {
	// AuthorizationURL builds the consent URL for the given state.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code string) (*entity.TokenGrant, error)

	// RefreshAccessToken exchanges a refresh token using the client registered for provider.
	// Returns ErrReconnectRequired on invalid_grant and ErrTokenRefreshFailed otherwise.
	RefreshAccessToken(ctx context.Context, provider, refreshToken string) (*entity.TokenGrant, error)

	// UserInfo fetches the Google profile of the token owner.
	UserInfo(ctx context.Context, accessToken string) (*GoogleUser, error)
}
