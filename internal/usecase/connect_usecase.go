package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ConnectResult summarises a completed OAuth callback.
type ConnectResult struct {
	UserID    uuid.UUID
	Email     string
	Accounts  int
	Locations int
}

// ConnectUsecase drives the Google account connection flow.
type ConnectUsecase interface {
	// CreateAuthURL stores a fresh single-use state for userID and returns the consent URL.
	CreateAuthURL(ctx context.Context, userID uuid.UUID) (string, error)

	// HandleCallback consumes state, exchanges code and stores the connected accounts.
	HandleCallback(ctx context.Context, code, state string) (*ConnectResult, error)
}
