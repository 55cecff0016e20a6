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
	"studio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockGMBAccountRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockGMBAccountRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			AccountRepo: accountRepo,
			Publisher:   publisher,
			Logger:      newDiscardLogger(),
		}),
		accountRepo: accountRepo,
		publisher:   publisher,
	}
}

func TestAccountService_Disconnect(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := &entity.GMBAccount{ID: uuid.New(), UserID: uuid.New(), IsActive: true}

	fx.accountRepo.EXPECT().FindByID(ctx, entity.ServiceScoped(), account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Deactivate(ctx, account.ID).Return(nil)

	err := fx.service.Disconnect(ctx, entity.UserScoped(account.UserID), account.ID)

	assert.NoError(t, err)
}

func TestAccountService_Disconnect_Errors(t *testing.T) {
	t.Run("unknown account", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.accountRepo.EXPECT().FindByID(ctx, entity.ServiceScoped(), id).Return(nil, repository.ErrAccountNotFound)

		err := fx.service.Disconnect(ctx, entity.UserScoped(uuid.New()), id)

		assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	})

	t.Run("other owner", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		account := &entity.GMBAccount{ID: uuid.New(), UserID: uuid.New()}

		fx.accountRepo.EXPECT().FindByID(ctx, entity.ServiceScoped(), account.ID).Return(account, nil)

		err := fx.service.Disconnect(ctx, entity.UserScoped(uuid.New()), account.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrAccountForbidden))
		fx.accountRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
	})
}

func TestAccountService_ScheduleSyncs(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	a1 := &entity.GMBAccount{ID: uuid.New()}
	a2 := &entity.GMBAccount{ID: uuid.New()}
	a3 := &entity.GMBAccount{ID: uuid.New()}

	fx.accountRepo.EXPECT().ListActive(ctx).Return([]*entity.GMBAccount{a1, a2, a3}, nil)
	fx.publisher.EXPECT().
		PublishSyncEvent(ctx, &service.SyncEvent{RequestID: "req-1", AccountID: a1.ID.String(), SyncType: "incremental"}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishSyncEvent(ctx, &service.SyncEvent{RequestID: "req-1", AccountID: a2.ID.String(), SyncType: "incremental"}).
		Return(errors.New("topic unavailable"))
	fx.publisher.EXPECT().
		PublishSyncEvent(ctx, &service.SyncEvent{RequestID: "req-1", AccountID: a3.ID.String(), SyncType: "incremental"}).
		Return(nil)

	queued, err := fx.service.ScheduleSyncs(ctx, entity.SyncTypeIncremental, "req-1")

	require.NoError(t, err)
	assert.Equal(t, 2, queued)
}

func TestAccountService_ScheduleSyncs_AllFail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().ListActive(ctx).Return([]*entity.GMBAccount{{ID: uuid.New()}}, nil)
	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.AnythingOfType("*service.SyncEvent")).Return(errors.New("topic unavailable"))

	queued, err := fx.service.ScheduleSyncs(ctx, entity.SyncTypeFull, "")

	assert.Error(t, err)
	assert.Zero(t, queued)
}

func TestAccountService_ScheduleSyncs_NoAccounts(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().ListActive(ctx).Return(nil, nil)

	queued, err := fx.service.ScheduleSyncs(ctx, entity.SyncTypeFull, "")

	assert.NoError(t, err)
	assert.Zero(t, queued)
}
