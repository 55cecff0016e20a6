package usecase

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncUsecase pulls an account's Business Profile data into local storage.
type SyncUsecase interface {
	// Sync runs one pass and always records exactly one job log row.
	// On failure the returned result still carries mode, timing and zero counts.
	Sync(ctx context.Context, access entity.AccessContext, accountID uuid.UUID, syncType entity.SyncType) (*entity.SyncResult, error)
}
