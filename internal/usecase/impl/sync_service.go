package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"studio/config"
	"studio/internal/domain/constants"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"
	"studio/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const reviewOrderNewestFirst = "updateTime desc"

// syncService implements the SyncUsecase interface.
type syncService struct {
	accountRepo    repository.GMBAccountRepository
	locationRepo   repository.GMBLocationRepository
	reviewRepo     repository.GMBReviewRepository
	mediaRepo      repository.GMBMediaRepository
	jobLogRepo     repository.JobLogRepository
	tokens         usecase.TokenProvider
	gbp            service.BusinessProfileClient
	metrics        service.SyncMetrics
	batchSize      int
	errorMaxLength int
	now            func() time.Time
	logger         *slog.Logger
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	AccountRepo   repository.GMBAccountRepository
	LocationRepo  repository.GMBLocationRepository
	ReviewRepo    repository.GMBReviewRepository
	MediaRepo     repository.GMBMediaRepository
	JobLogRepo    repository.JobLogRepository
	TokenProvider usecase.TokenProvider
	GBP           service.BusinessProfileClient
	Metrics       service.SyncMetrics
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		accountRepo:    params.AccountRepo,
		locationRepo:   params.LocationRepo,
		reviewRepo:     params.ReviewRepo,
		mediaRepo:      params.MediaRepo,
		jobLogRepo:     params.JobLogRepo,
		tokens:         params.TokenProvider,
		gbp:            params.GBP,
		metrics:        params.Metrics,
		batchSize:      params.Config.Sync.UpsertBatchSize,
		errorMaxLength: params.Config.Sync.ErrorMaxLength,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// Sync runs one pass. Partial progress stays committed when a later step fails.
func (s *syncService) Sync(ctx context.Context, access entity.AccessContext, accountID uuid.UUID, syncType entity.SyncType) (*entity.SyncResult, error) {
	started := s.now()
	result := &entity.SyncResult{
		AccountID: accountID,
		SyncType:  syncType,
		Mode:      access.Mode(),
	}

	logger := s.logger.With(
		slog.String("account_id", accountID.String()),
		slog.String("sync_type", string(syncType)),
		slog.String("mode", result.Mode),
	)

	counts, runErr := s.run(ctx, access, accountID, syncType)

	finished := s.now()
	result.TookMs = finished.Sub(started).Milliseconds()

	status := entity.JobStatusSuccess
	if runErr != nil {
		status = entity.JobStatusError
		counts = entity.SyncCounts{}
	}
	result.Counts = counts

	s.recordJob(ctx, logger, result, status, started, finished, runErr)
	s.metrics.ObserveSync(result.Mode, syncType, status, finished.Sub(started), counts)

	if runErr != nil {
		logger.Error("GMB sync failed", slog.Any("error", runErr), slog.Int64("took_ms", result.TookMs))

		return result, classifySyncError(runErr)
	}

	logger.Info("GMB sync finished",
		slog.Int("locations", counts.Locations),
		slog.Int("reviews", counts.Reviews),
		slog.Int("media", counts.Media),
		slog.Int64("took_ms", result.TookMs),
	)

	return result, nil
}

func (s *syncService) run(ctx context.Context, access entity.AccessContext, accountID uuid.UUID, syncType entity.SyncType) (entity.SyncCounts, error) {
	var counts entity.SyncCounts

	account, err := s.accountRepo.FindByID(ctx, access, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return counts, domainerrors.ErrAccountNotFound
		}

		return counts, err
	}
	if !account.IsActive {
		return counts, domainerrors.ErrAccountInactive
	}

	token, err := s.tokens.AccessToken(ctx, access, account)
	if err != nil {
		return counts, err
	}

	accountName := account.AccountName
	if accountName == "" {
		if accountName, err = s.resolveAccountName(ctx, token.AccessToken, account); err != nil {
			return counts, err
		}
	}

	if counts.Locations, err = s.syncLocations(ctx, token.AccessToken, account, accountName); err != nil {
		return counts, err
	}

	locations, err := s.locationRepo.ListByAccount(ctx, account.ID)
	if err != nil {
		return counts, err
	}

	var since *time.Time
	if syncType == entity.SyncTypeIncremental {
		since = account.LastSync
	}

	for _, location := range locations {
		resource := locationResource(accountName, location.LocationID)

		reviews, err := s.syncReviews(ctx, token.AccessToken, account, location, resource, since)
		if err != nil {
			return counts, err
		}
		counts.Reviews += reviews

		media, err := s.syncMedia(ctx, token.AccessToken, account, location, resource)
		if err != nil {
			return counts, err
		}
		counts.Media += media
	}

	if err := s.accountRepo.UpdateLastSync(ctx, account.ID, s.now()); err != nil {
		return counts, err
	}

	return counts, nil
}

// resolveAccountName takes the first account visible to the token and stores it on the row.
func (s *syncService) resolveAccountName(ctx context.Context, token string, account *entity.GMBAccount) (string, error) {
	accounts, err := s.gbp.ListAccounts(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNetwork) {
			return "", err
		}

		return "", domainerrors.ErrMissingGoogleAccountID.WithDetails(err.Error())
	}
	if len(accounts) == 0 || accounts[0].Name == "" {
		return "", domainerrors.ErrMissingGoogleAccountID
	}

	name := accounts[0].Name
	if err := s.accountRepo.UpdateAccountName(ctx, account.ID, name); err != nil {
		return "", err
	}
	account.AccountName = name

	return name, nil
}

func (s *syncService) syncLocations(ctx context.Context, token string, account *entity.GMBAccount, accountName string) (int, error) {
	total := 0
	pageToken := ""

	for {
		page, err := s.gbp.ListLocations(ctx, token, accountName, pageToken)
		if err != nil {
			return total, err
		}

		if len(page.Items) > 0 {
			rows := make([]*entity.Location, 0, len(page.Items))
			for i := range page.Items {
				rows = append(rows, mapLocation(account, &page.Items[i]))
			}
			if err := s.locationRepo.UpsertBatch(ctx, rows, s.batchSize); err != nil {
				return total, err
			}
			total += len(page.Items)
		}

		if page.NextPageToken == "" {
			return total, nil
		}
		pageToken = page.NextPageToken
	}
}

// syncReviews pages through a location's reviews. With since set, reviews come newest first and
// paging stops after the first page holding a review last updated before since.
func (s *syncService) syncReviews(ctx context.Context, token string, account *entity.GMBAccount, location *entity.Location, resource string, since *time.Time) (int, error) {
	total := 0
	opts := service.ReviewListOptions{}
	if since != nil {
		opts.OrderBy = reviewOrderNewestFirst
	}

	for {
		page, err := s.gbp.ListReviews(ctx, token, resource, opts)
		if err != nil {
			return total, err
		}

		reachedOld := false
		if len(page.Items) > 0 {
			rows := make([]*entity.Review, 0, len(page.Items))
			for i := range page.Items {
				review := &page.Items[i]
				rows = append(rows, mapReview(account, location, review))
				if since != nil {
					if updated := reviewUpdatedAt(review); updated != nil && updated.Before(*since) {
						reachedOld = true
					}
				}
			}
			if err := s.reviewRepo.UpsertBatch(ctx, rows, s.batchSize); err != nil {
				return total, err
			}
			total += len(page.Items)
		}

		if reachedOld || page.NextPageToken == "" {
			return total, nil
		}
		opts.PageToken = page.NextPageToken
	}
}

func (s *syncService) syncMedia(ctx context.Context, token string, account *entity.GMBAccount, location *entity.Location, resource string) (int, error) {
	total := 0
	pageToken := ""

	for {
		page, err := s.gbp.ListMedia(ctx, token, resource, pageToken)
		if err != nil {
			return total, err
		}

		if len(page.Items) > 0 {
			rows := make([]*entity.Media, 0, len(page.Items))
			for i := range page.Items {
				rows = append(rows, mapMedia(account, location, &page.Items[i]))
			}
			if err := s.mediaRepo.UpsertBatch(ctx, rows, s.batchSize); err != nil {
				return total, err
			}
			total += len(page.Items)
		}

		if page.NextPageToken == "" {
			return total, nil
		}
		pageToken = page.NextPageToken
	}
}

// recordJob writes the job log row even when the caller's context is already cancelled.
func (s *syncService) recordJob(ctx context.Context, logger *slog.Logger, result *entity.SyncResult, status entity.JobStatus, started, finished time.Time, runErr error) {
	job := &entity.JobLog{
		StartedAt:  started,
		FinishedAt: finished,
		Status:     status,
		Source:     constants.JobSourceGMBSync,
		Meta: entity.JobLogMeta{
			AccountID: result.AccountID.String(),
			SyncType:  result.SyncType,
			Counts:    result.Counts,
			Mode:      result.Mode,
		},
	}
	if runErr != nil {
		msg := util.TruncateRunes(jobErrorText(runErr), s.errorMaxLength)
		job.Error = &msg
	}

	if err := s.jobLogRepo.Create(context.WithoutCancel(ctx), job); err != nil {
		logger.Error("Failed to write job log", slog.Any("error", err))
	}
}

// jobErrorText leads with the error code so the column is greppable.
func jobErrorText(err error) string {
	appErr, ok := domainerrors.AsAppError(err)
	if !ok {
		return err.Error()
	}
	if details := appErr.Details(); details != "" {
		return appErr.ErrorCode() + ": " + details
	}

	return appErr.ErrorCode()
}

// classifySyncError keeps the errors callers can act on and folds the rest into sync_failed.
func classifySyncError(err error) error {
	appErr, ok := domainerrors.AsAppError(err)
	if !ok {
		return domainerrors.ErrSyncFailed.WithDetails(err.Error())
	}

	code := appErr.ErrorCode()
	switch {
	case code == domainerrors.ErrServiceAccountMissing.ErrorCode(),
		code == domainerrors.ErrNetwork.ErrorCode(),
		code == domainerrors.ErrReconnectRequired.ErrorCode(),
		code == domainerrors.ErrAccountNotFound.ErrorCode(),
		code == domainerrors.ErrAccountInactive.ErrorCode(),
		code == domainerrors.ErrMissingGoogleAccountID.ErrorCode(),
		strings.HasSuffix(code, "_api_error"):
		return err
	default:
		return domainerrors.ErrSyncFailed.WithDetails(err.Error())
	}
}
