// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"studio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when no account matches the lookup within the caller's scope.
var ErrAccountNotFound = errors.New("gmb account not found")

// AccountTokenUpdate carries a refreshed credential. A nil RefreshToken keeps the stored one.
type AccountTokenUpdate struct {
	AccessToken  string
	ExpiresAt    time.Time
	RefreshToken *string
}

// GMBAccountRepository defines persistence for connected Business Profile accounts.
type GMBAccountRepository interface {
	// FindByID loads an account visible to the access context.
	FindByID(ctx context.Context, access entity.AccessContext, id uuid.UUID) (*entity.GMBAccount, error)

	// ListActive returns every active account; used by the scheduler.
	ListActive(ctx context.Context) ([]*entity.GMBAccount, error)

	// Upsert inserts or updates by (user_id, account_id), keeping the old refresh token when the new one is empty.
	Upsert(ctx context.Context, account *entity.GMBAccount) error

	// UpdateTokens persists a refreshed access token.
	UpdateTokens(ctx context.Context, id uuid.UUID, update AccountTokenUpdate) error

	// UpdateAccountName stores the Google account resource name resolved by the account lookup.
	UpdateAccountName(ctx context.Context, id uuid.UUID, accountName string) error

	// UpdateLastSync stamps a successful sync.
	UpdateLastSync(ctx context.Context, id uuid.UUID, at time.Time) error

	// Deactivate sets is_active=false.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
