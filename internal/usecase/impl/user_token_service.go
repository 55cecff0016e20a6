package impl

import (
	"context"
	"log/slog"
	"time"

	"studio/config"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userTokenService implements the UserTokenUsecase interface.
type userTokenService struct {
	tokenRepo repository.OAuthTokenRepository
	oauth     service.GoogleOAuthClient
	skew      time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// UserTokenServiceParams holds dependencies for UserTokenService, injected by Fx.
type UserTokenServiceParams struct {
	fx.In

	TokenRepo   repository.OAuthTokenRepository
	OAuthClient service.GoogleOAuthClient
	Config      *config.Config
	Logger      *slog.Logger
}

// NewUserTokenService is the constructor for userTokenService.
func NewUserTokenService(params UserTokenServiceParams) usecase.UserTokenUsecase {
	return &userTokenService{
		tokenRepo: params.TokenRepo,
		oauth:     params.OAuthClient,
		skew:      params.Config.Sync.UserTokenSkew,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (s *userTokenService) RefreshIfNeeded(ctx context.Context, userID uuid.UUID, provider string) (*usecase.UserTokenRefresh, error) {
	stored, err := s.tokenRepo.FindByUserAndProvider(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrOAuthTokenNotFound) {
			return &usecase.UserTokenRefresh{}, nil
		}

		return nil, err
	}

	now := s.now()
	if stored.RefreshToken == "" {
		return &usecase.UserTokenRefresh{ExpiresAt: stored.TokenExpiresAt}, nil
	}
	if stored.TokenExpiresAt != nil && stored.TokenExpiresAt.After(now.Add(s.skew)) {
		return &usecase.UserTokenRefresh{ExpiresAt: stored.TokenExpiresAt}, nil
	}

	expiresAt, err := refreshUserToken(ctx, s.oauth, s.tokenRepo, stored, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User token refreshed",
		slog.String("user_id", userID.String()),
		slog.String("provider", provider),
	)

	return &usecase.UserTokenRefresh{Refreshed: true, ExpiresAt: &expiresAt}, nil
}
