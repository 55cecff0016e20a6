package impl

import (
	"context"
	"log/slog"
	"time"

	"studio/config"
	"studio/internal/domain/constants"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"

	"go.uber.org/fx"
)

// tokenProvider walks the strategy list in order until one yields a token.
type tokenProvider struct {
	strategies []usecase.TokenStrategy
	logger     *slog.Logger
}

// TokenProviderParams holds dependencies for the token provider, injected by Fx.
type TokenProviderParams struct {
	fx.In

	AccountRepo    repository.GMBAccountRepository
	OAuthTokenRepo repository.OAuthTokenRepository
	OAuthClient    service.GoogleOAuthClient
	ServiceAccount service.ServiceAccountTokenSource
	Config         *config.Config
	Logger         *slog.Logger
}

// NewTokenProvider builds the chain account credential → user token → service account.
func NewTokenProvider(params TokenProviderParams) usecase.TokenProvider {
	skew := params.Config.Sync.TokenRefreshSkew

	return newTokenProvider(params.Logger,
		&accountTokenStrategy{
			accountRepo: params.AccountRepo,
			oauth:       params.OAuthClient,
			skew:        skew,
			now:         time.Now,
		},
		&userTokenStrategy{
			tokenRepo: params.OAuthTokenRepo,
			oauth:     params.OAuthClient,
			skew:      skew,
			now:       time.Now,
		},
		&serviceAccountStrategy{source: params.ServiceAccount},
	)
}

func newTokenProvider(logger *slog.Logger, strategies ...usecase.TokenStrategy) *tokenProvider {
	return &tokenProvider{strategies: strategies, logger: logger}
}

// AccessToken returns the first token produced by the chain.
// invalid_grant on the account credential stops the chain; every other failure,
// including a revoked user token, falls through to the next tier.
func (p *tokenProvider) AccessToken(ctx context.Context, access entity.AccessContext, account *entity.GMBAccount) (*entity.Token, error) {
	req := &usecase.TokenRequest{Access: access, Account: account}

	var lastErr error
	for _, strategy := range p.strategies {
		token, err := strategy.TryGetToken(ctx, req)
		if err != nil {
			if errors.Is(err, domainerrors.ErrReconnectRequired) && strategy.Source() == entity.TokenSourceAccount {
				return nil, err
			}

			p.logger.Warn("Token strategy failed, trying next",
				slog.String("source", string(strategy.Source())),
				slog.String("account_id", account.ID.String()),
				slog.Any("error", err),
			)
			lastErr = err

			continue
		}
		if token != nil {
			return token, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return nil, domainerrors.ErrNoUserToken
}

// accountTokenStrategy uses the credential stored on the account row.
type accountTokenStrategy struct {
	accountRepo repository.GMBAccountRepository
	oauth       service.GoogleOAuthClient
	skew        time.Duration
	now         func() time.Time
}

func (s *accountTokenStrategy) Source() entity.TokenSource { return entity.TokenSourceAccount }

func (s *accountTokenStrategy) TryGetToken(ctx context.Context, req *usecase.TokenRequest) (*entity.Token, error) {
	account := req.Account
	if account == nil {
		return nil, nil
	}

	now := s.now()
	if account.HasUsableAccessToken(now, s.skew) {
		return &entity.Token{AccessToken: account.AccessToken, ExpiresAt: *account.TokenExpiresAt, Source: entity.TokenSourceAccount}, nil
	}
	if account.RefreshToken == "" {
		return nil, nil
	}

	grant, err := s.oauth.RefreshAccessToken(ctx, constants.ProviderGoogle, account.RefreshToken)
	if err != nil {
		return nil, err
	}

	expiresAt := grant.ExpiresAt(now)
	if err := s.accountRepo.UpdateTokens(ctx, account.ID, tokenUpdate(grant, expiresAt)); err != nil {
		return nil, errors.Wrap(err, "persist refreshed account token")
	}

	account.AccessToken = grant.AccessToken
	account.TokenExpiresAt = &expiresAt
	if grant.RefreshToken != "" {
		account.RefreshToken = grant.RefreshToken
	}

	return &entity.Token{AccessToken: grant.AccessToken, ExpiresAt: expiresAt, Source: entity.TokenSourceAccount}, nil
}

// userTokenStrategy uses the account owner's Google token. Tokens of other providers never authorize Business Profile calls.
type userTokenStrategy struct {
	tokenRepo repository.OAuthTokenRepository
	oauth     service.GoogleOAuthClient
	skew      time.Duration
	now       func() time.Time
}

func (s *userTokenStrategy) Source() entity.TokenSource { return entity.TokenSourceUser }

func (s *userTokenStrategy) TryGetToken(ctx context.Context, req *usecase.TokenRequest) (*entity.Token, error) {
	if req.Account == nil {
		return nil, nil
	}

	stored, err := s.tokenRepo.FindByUserAndProvider(ctx, req.Account.UserID, constants.ProviderGoogle)
	if err != nil {
		if errors.Is(err, repository.ErrOAuthTokenNotFound) {
			return nil, nil
		}

		return nil, err
	}

	now := s.now()
	if stored.HasUsableAccessToken(now, s.skew) {
		return &entity.Token{AccessToken: stored.AccessToken, ExpiresAt: *stored.TokenExpiresAt, Source: entity.TokenSourceUser}, nil
	}
	if stored.RefreshToken == "" {
		return nil, nil
	}

	expiresAt, err := refreshUserToken(ctx, s.oauth, s.tokenRepo, stored, now)
	if err != nil {
		return nil, err
	}

	return &entity.Token{AccessToken: stored.AccessToken, ExpiresAt: expiresAt, Source: entity.TokenSourceUser}, nil
}

// serviceAccountStrategy is the last tier and always applies.
type serviceAccountStrategy struct {
	source service.ServiceAccountTokenSource
}

func (s *serviceAccountStrategy) Source() entity.TokenSource { return entity.TokenSourceServiceAccount }

func (s *serviceAccountStrategy) TryGetToken(ctx context.Context, _ *usecase.TokenRequest) (*entity.Token, error) {
	return s.source.Token(ctx)
}

// refreshUserToken refreshes stored with its provider's client, persists it on the same row and updates stored in place.
func refreshUserToken(ctx context.Context, oauth service.GoogleOAuthClient, repo repository.OAuthTokenRepository, stored *entity.UserOAuthToken, now time.Time) (time.Time, error) {
	grant, err := oauth.RefreshAccessToken(ctx, stored.Provider, stored.RefreshToken)
	if err != nil {
		return time.Time{}, err
	}

	expiresAt := grant.ExpiresAt(now)
	if err := repo.UpdateTokens(ctx, stored.ID, tokenUpdate(grant, expiresAt)); err != nil {
		return time.Time{}, errors.Wrap(err, "persist refreshed user token")
	}

	stored.AccessToken = grant.AccessToken
	stored.TokenExpiresAt = &expiresAt
	if grant.RefreshToken != "" {
		stored.RefreshToken = grant.RefreshToken
	}

	return expiresAt, nil
}

func tokenUpdate(grant *entity.TokenGrant, expiresAt time.Time) repository.AccountTokenUpdate {
	update := repository.AccountTokenUpdate{
		AccessToken: grant.AccessToken,
		ExpiresAt:   expiresAt,
	}
	if grant.RefreshToken != "" {
		rotated := grant.RefreshToken
		update.RefreshToken = &rotated
	}

	return update
}
