package repository

import (
	"context"

	"studio/internal/domain/entity"
)

// GMBMediaRepository defines persistence for mirrored media items.
type GMBMediaRepository interface {
	// UpsertBatch writes media keyed by external_media_id in chunks of batchSize.
	UpsertBatch(ctx context.Context, media []*entity.Media, batchSize int) error
}
