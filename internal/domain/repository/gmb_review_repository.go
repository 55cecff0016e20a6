package repository

import (
	"context"
	"time"

	"studio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReviewNotFound is returned when a review is missing or outside the caller's scope.
var ErrReviewNotFound = errors.New("gmb review not found")

// GMBReviewRepository defines persistence for mirrored reviews.
type GMBReviewRepository interface {
	// UpsertBatch writes reviews keyed by external_review_id in chunks of batchSize.
	UpsertBatch(ctx context.Context, reviews []*entity.Review, batchSize int) error

	// FindByID loads a review visible to the access context.
	FindByID(ctx context.Context, access entity.AccessContext, id uuid.UUID) (*entity.Review, error)

	// UpdateReply mirrors a reply posted to Google.
	UpdateReply(ctx context.Context, id uuid.UUID, text string, at time.Time) error
}
