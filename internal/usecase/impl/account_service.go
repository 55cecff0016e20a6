package impl

import (
	"context"
	"log/slog"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.GMBAccountRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.GMBAccountRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// Disconnect looks the account up without the owner filter so a foreign account answers 403 instead of 404.
func (s *accountService) Disconnect(ctx context.Context, access entity.AccessContext, accountID uuid.UUID) error {
	account, err := s.accountRepo.FindByID(ctx, entity.ServiceScoped(), accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return err
	}
	if !access.CanSee(account.UserID) {
		return domainerrors.ErrAccountForbidden
	}

	if err := s.accountRepo.Deactivate(ctx, account.ID); err != nil {
		return err
	}

	s.logger.Info("GMB account disconnected",
		slog.String("account_id", account.ID.String()),
		slog.String("user_id", account.UserID.String()),
	)

	return nil
}

// ScheduleSyncs queues one sync event per active account. Publish failures are logged and skipped;
// the call fails only when nothing could be queued.
func (s *accountService) ScheduleSyncs(ctx context.Context, syncType entity.SyncType, requestID string) (int, error) {
	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	queued := 0
	var lastErr error
	for _, account := range accounts {
		event := &service.SyncEvent{
			RequestID: requestID,
			AccountID: account.ID.String(),
			SyncType:  string(syncType),
		}
		if err := s.publisher.PublishSyncEvent(ctx, event); err != nil {
			s.logger.Error("Failed to publish sync event",
				slog.String("account_id", event.AccountID),
				slog.Any("error", err),
			)
			lastErr = err

			continue
		}
		queued++
	}

	if queued == 0 && lastErr != nil {
		return 0, errors.Wrap(lastErr, "publish sync events")
	}

	s.logger.Info("Scheduled GMB syncs",
		slog.Int("queued", queued),
		slog.Int("active", len(accounts)),
		slog.String("sync_type", string(syncType)),
	)

	return queued, nil
}
