package impl

import (
	"context"
	"testing"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	mockRepo "studio/internal/mocks/repository"
	mockSvc "studio/internal/mocks/service"
	mockUC "studio/internal/mocks/usecase"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service      usecase.ReviewUsecase
	accountRepo  *mockRepo.MockGMBAccountRepository
	locationRepo *mockRepo.MockGMBLocationRepository
	reviewRepo   *mockRepo.MockGMBReviewRepository
	tokens       *mockUC.MockTokenProvider
	gbp          *mockSvc.MockBusinessProfileClient
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		accountRepo:  mockRepo.NewMockGMBAccountRepository(t),
		locationRepo: mockRepo.NewMockGMBLocationRepository(t),
		reviewRepo:   mockRepo.NewMockGMBReviewRepository(t),
		tokens:       mockUC.NewMockTokenProvider(t),
		gbp:          mockSvc.NewMockBusinessProfileClient(t),
	}

	fx.service = &reviewService{
		accountRepo:  fx.accountRepo,
		locationRepo: fx.locationRepo,
		reviewRepo:   fx.reviewRepo,
		tokens:       fx.tokens,
		gbp:          fx.gbp,
		now:          fixedClock,
		logger:       newDiscardLogger(),
	}

	return fx
}

func TestReviewService_Reply_BuildsResourceName(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	access := entity.UserScoped(userID)
	account := &entity.GMBAccount{ID: uuid.New(), UserID: userID, AccountName: "accounts/1", IsActive: true}
	review := &entity.Review{ID: uuid.New(), GMBAccountID: account.ID, LocationID: uuid.New(), ExternalReviewID: "r-9"}

	fx.reviewRepo.EXPECT().FindByID(ctx, access, review.ID).Return(review, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, access, account.ID).Return(account, nil)
	fx.locationRepo.EXPECT().FindByID(ctx, review.LocationID).
		Return(&entity.Location{ID: review.LocationID, LocationID: "locations/5"}, nil)
	fx.tokens.EXPECT().AccessToken(ctx, access, account).Return(&entity.Token{AccessToken: "tok"}, nil)
	fx.gbp.EXPECT().ReplyToReview(ctx, "tok", "accounts/1/locations/5/reviews/r-9", "Thank you").
		Return(&service.ReviewReply{Comment: "Thank you"}, nil)
	fx.reviewRepo.EXPECT().UpdateReply(ctx, review.ID, "Thank you", fixedNow).Return(nil)

	got, err := fx.service.Reply(ctx, access, review.ID, "Thank you")

	require.NoError(t, err)
	require.NotNil(t, got.ReplyText)
	assert.Equal(t, "Thank you", *got.ReplyText)
	assert.True(t, got.HasReply)
	assert.Equal(t, fixedNow, *got.ReplyDate)
}

func TestReviewService_Reply_UsesFullName(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	access := entity.ServiceScoped()
	account := &entity.GMBAccount{ID: uuid.New(), AccountName: "accounts/1"}
	review := &entity.Review{ID: uuid.New(), GMBAccountID: account.ID, ExternalReviewID: "accounts/1/locations/5/reviews/r-9"}

	fx.reviewRepo.EXPECT().FindByID(ctx, access, review.ID).Return(review, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, access, account.ID).Return(account, nil)
	fx.tokens.EXPECT().AccessToken(ctx, access, account).Return(&entity.Token{AccessToken: "tok"}, nil)
	fx.gbp.EXPECT().ReplyToReview(ctx, "tok", review.ExternalReviewID, "Thanks").Return(&service.ReviewReply{}, nil)
	fx.reviewRepo.EXPECT().UpdateReply(ctx, review.ID, "Thanks", fixedNow).Return(nil)

	_, err := fx.service.Reply(ctx, access, review.ID, "Thanks")

	require.NoError(t, err)
	fx.locationRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestReviewService_Reply_NotVisible(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	access := entity.UserScoped(uuid.New())
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, access, reviewID).Return(nil, repository.ErrReviewNotFound)

	_, err := fx.service.Reply(ctx, access, reviewID, "hi")

	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_Reply_EmptyComment(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.Reply(context.Background(), entity.ServiceScoped(), uuid.New(), "   ")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_Reply_UpstreamFailureLeavesRowUntouched(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	access := entity.ServiceScoped()
	account := &entity.GMBAccount{ID: uuid.New(), AccountName: "accounts/1"}
	review := &entity.Review{ID: uuid.New(), GMBAccountID: account.ID, ExternalReviewID: "accounts/1/locations/5/reviews/r-9"}

	fx.reviewRepo.EXPECT().FindByID(ctx, access, review.ID).Return(review, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, access, account.ID).Return(account, nil)
	fx.tokens.EXPECT().AccessToken(ctx, access, account).Return(&entity.Token{AccessToken: "tok"}, nil)
	fx.gbp.EXPECT().ReplyToReview(ctx, "tok", review.ExternalReviewID, "Thanks").Return(nil, domainerrors.ErrReplyAPI)

	_, err := fx.service.Reply(ctx, access, review.ID, "Thanks")

	assert.True(t, errors.Is(err, domainerrors.ErrReplyAPI))
	fx.reviewRepo.AssertNotCalled(t, "UpdateReply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
