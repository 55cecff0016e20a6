package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	accountRepo  repository.GMBAccountRepository
	locationRepo repository.GMBLocationRepository
	reviewRepo   repository.GMBReviewRepository
	tokens       usecase.TokenProvider
	gbp          service.BusinessProfileClient
	now          func() time.Time
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	AccountRepo   repository.GMBAccountRepository
	LocationRepo  repository.GMBLocationRepository
	ReviewRepo    repository.GMBReviewRepository
	TokenProvider usecase.TokenProvider
	GBP           service.BusinessProfileClient
	Logger        *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		accountRepo:  params.AccountRepo,
		locationRepo: params.LocationRepo,
		reviewRepo:   params.ReviewRepo,
		tokens:       params.TokenProvider,
		gbp:          params.GBP,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// Reply posts comment as the owner reply and mirrors it locally.
func (s *reviewService) Reply(ctx context.Context, access entity.AccessContext, reviewID uuid.UUID, comment string) (*entity.Review, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("replyText is required")
	}

	review, err := s.reviewRepo.FindByID(ctx, access, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, err
	}

	account, err := s.accountRepo.FindByID(ctx, access, review.GMBAccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, err
	}

	reviewName, err := s.reviewResource(ctx, account, review)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.AccessToken(ctx, access, account)
	if err != nil {
		return nil, err
	}

	if _, err := s.gbp.ReplyToReview(ctx, token.AccessToken, reviewName, comment); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.reviewRepo.UpdateReply(ctx, review.ID, comment, now); err != nil {
		return nil, err
	}

	review.ReplyText = &comment
	review.ReplyDate = &now
	review.HasReply = true

	s.logger.Info("Review reply posted",
		slog.String("review_id", review.ID.String()),
		slog.String("account_id", account.ID.String()),
		slog.String("source", string(token.Source)),
	)

	return review, nil
}

// reviewResource returns the full Google name of the review, building it from the location when the
// stored id is a bare review id.
func (s *reviewService) reviewResource(ctx context.Context, account *entity.GMBAccount, review *entity.Review) (string, error) {
	if strings.Contains(review.ExternalReviewID, "/reviews/") {
		return review.ExternalReviewID, nil
	}

	location, err := s.locationRepo.FindByID(ctx, review.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return "", domainerrors.ErrLocationNotFound
		}

		return "", err
	}

	return locationResource(account.AccountName, location.LocationID) + "/reviews/" + review.ExternalReviewID, nil
}
