package usecase

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase manages connected accounts outside of a sync pass.
type AccountUsecase interface {
	// Disconnect soft-deactivates an account owned by the caller.
	Disconnect(ctx context.Context, access entity.AccessContext, accountID uuid.UUID) error

	// ScheduleSyncs publishes one sync event per active account and returns how many were queued.
	ScheduleSyncs(ctx context.Context, syncType entity.SyncType, requestID string) (int, error)
}
