package impl

import (
	"context"
	"log/slog"
	"time"

	"studio/config"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// connectService implements the ConnectUsecase interface.
type connectService struct {
	txManager   repository.TransactionManager
	accountRepo repository.GMBAccountRepository
	stateRepo   repository.OAuthStateRepository
	oauth       service.GoogleOAuthClient
	gbp         service.BusinessProfileClient
	stateTTL    time.Duration
	batchSize   int
	now         func() time.Time
	logger      *slog.Logger
}

// ConnectServiceParams holds dependencies for ConnectService, injected by Fx.
type ConnectServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.GMBAccountRepository
	StateRepo   repository.OAuthStateRepository
	OAuthClient service.GoogleOAuthClient
	GBP         service.BusinessProfileClient
	Config      *config.Config
	Logger      *slog.Logger
}

// NewConnectService is the constructor for connectService.
func NewConnectService(params ConnectServiceParams) usecase.ConnectUsecase {
	return &connectService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		stateRepo:   params.StateRepo,
		oauth:       params.OAuthClient,
		gbp:         params.GBP,
		stateTTL:    params.Config.OAuthState.TTL,
		batchSize:   params.Config.Sync.UpsertBatchSize,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// CreateAuthURL stores a single-use state bound to userID and returns the consent URL.
func (s *connectService) CreateAuthURL(ctx context.Context, userID uuid.UUID) (string, error) {
	now := s.now()
	state := &entity.OAuthState{
		State:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.stateTTL),
		CreatedAt: now,
	}

	if err := s.stateRepo.Create(ctx, state); err != nil {
		return "", errors.Wrap(err, "create oauth state")
	}

	return s.oauth.AuthorizationURL(state.State), nil
}

// HandleCallback redeems the state, exchanges the code and stores every account the grant can see.
// A failure on one account is logged and skipped so the others still connect.
func (s *connectService) HandleCallback(ctx context.Context, code, state string) (*usecase.ConnectResult, error) {
	if code == "" || state == "" {
		return nil, domainerrors.ErrOAuthStateInvalid.WithDetails("missing code or state")
	}

	oauthState, err := s.stateRepo.Consume(ctx, state, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrOAuthStateInvalid) {
			return nil, domainerrors.ErrOAuthStateInvalid
		}

		return nil, err
	}

	grant, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	expiresAt := grant.ExpiresAt(s.now())

	user, err := s.oauth.UserInfo(ctx, grant.AccessToken)
	if err != nil {
		return nil, err
	}

	accounts, err := s.gbp.ListAccounts(ctx, grant.AccessToken)
	if err != nil {
		return nil, err
	}

	result := &usecase.ConnectResult{UserID: oauthState.UserID, Email: user.Email}
	logger := s.logger.With(slog.String("user_id", oauthState.UserID.String()))

	for i := range accounts {
		googleAccount := &accounts[i]
		if googleAccount.Name == "" {
			continue
		}

		account := &entity.GMBAccount{
			UserID:          oauthState.UserID,
			AccountName:     googleAccount.Name,
			DisplayName:     googleAccount.AccountName,
			Email:           user.Email,
			GoogleAccountID: user.ID,
			AccessToken:     grant.AccessToken,
			RefreshToken:    grant.RefreshToken,
			TokenExpiresAt:  &expiresAt,
			IsActive:        true,
		}
		if account.DisplayName == "" {
			account.DisplayName = googleAccount.Name
		}

		if err := s.accountRepo.Upsert(ctx, account); err != nil {
			logger.Warn("Failed to store connected account, skipping",
				slog.String("account_name", googleAccount.Name),
				slog.Any("error", err),
			)

			continue
		}
		result.Accounts++
		result.Locations += s.storeFirstLocations(ctx, logger, grant.AccessToken, account)
	}

	logger.Info("Google account connected",
		slog.Int("accounts", result.Accounts),
		slog.Int("locations", result.Locations),
	)

	return result, nil
}

// storeFirstLocations mirrors the first page of locations for a freshly stored account.
// Failures only cost the locations; the next sync fills them in.
func (s *connectService) storeFirstLocations(ctx context.Context, logger *slog.Logger, token string, account *entity.GMBAccount) int {
	logger = logger.With(slog.String("account_name", account.AccountName))

	page, err := s.gbp.ListLocations(ctx, token, account.AccountName, "")
	if err != nil {
		logger.Warn("Failed to list locations for connected account", slog.Any("error", err))

		return 0
	}
	if len(page.Items) == 0 {
		return 0
	}

	rows := make([]*entity.Location, 0, len(page.Items))
	for i := range page.Items {
		rows = append(rows, mapLocation(account, &page.Items[i]))
	}

	// The first page is written all or nothing.
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewGMBLocationRepository().UpsertBatch(ctx, rows, s.batchSize)
	})
	if err != nil {
		logger.Warn("Failed to store locations for connected account", slog.Any("error", err))

		return 0
	}

	return len(rows)
}
