package usecase

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase handles owner actions on synced reviews.
type ReviewUsecase interface {
	// Reply posts the owner reply to Google and mirrors it on the local review.
	Reply(ctx context.Context, access entity.AccessContext, reviewID uuid.UUID, comment string) (*entity.Review, error)
}
