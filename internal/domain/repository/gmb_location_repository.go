package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a location lookup misses.
var ErrLocationNotFound = errors.New("gmb location not found")

// GMBLocationRepository defines persistence for mirrored locations.
type GMBLocationRepository interface {
	// UpsertBatch writes locations keyed by (gmb_account_id, location_id) in chunks of batchSize.
	UpsertBatch(ctx context.Context, locations []*entity.Location, batchSize int) error

	// ListByAccount returns every local location of an account.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Location, error)

	// FindByID loads a single location.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
}
