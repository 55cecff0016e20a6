package impl

import (
	"context"
	"testing"
	"time"

	"studio/internal/domain/constants"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	mockRepo "studio/internal/mocks/repository"
	mockSvc "studio/internal/mocks/service"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tokenProviderFixtures struct {
	provider    usecase.TokenProvider
	accountRepo *mockRepo.MockGMBAccountRepository
	tokenRepo   *mockRepo.MockOAuthTokenRepository
	oauth       *mockSvc.MockGoogleOAuthClient
	sa          *mockSvc.MockServiceAccountTokenSource
}

func createTestTokenProvider(t *testing.T) tokenProviderFixtures {
	accountRepo := mockRepo.NewMockGMBAccountRepository(t)
	tokenRepo := mockRepo.NewMockOAuthTokenRepository(t)
	oauth := mockSvc.NewMockGoogleOAuthClient(t)
	sa := mockSvc.NewMockServiceAccountTokenSource(t)

	provider := newTokenProvider(newDiscardLogger(),
		&accountTokenStrategy{accountRepo: accountRepo, oauth: oauth, skew: time.Minute, now: fixedClock},
		&userTokenStrategy{tokenRepo: tokenRepo, oauth: oauth, skew: time.Minute, now: fixedClock},
		&serviceAccountStrategy{source: sa},
	)

	return tokenProviderFixtures{
		provider:    provider,
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		oauth:       oauth,
		sa:          sa,
	}
}

func newExpiringAccount(expiresIn time.Duration, refreshToken string) *entity.GMBAccount {
	expiresAt := fixedNow.Add(expiresIn)

	return &entity.GMBAccount{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		AccessToken:    "cached",
		RefreshToken:   refreshToken,
		TokenExpiresAt: &expiresAt,
		IsActive:       true,
	}
}

func TestTokenProvider_ReusesValidAccountToken(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(time.Hour, "rt")

	token, err := fx.provider.AccessToken(ctx, entity.UserScoped(account.UserID), account)

	require.NoError(t, err)
	assert.Equal(t, "cached", token.AccessToken)
	assert.Equal(t, entity.TokenSourceAccount, token.Source)
	fx.oauth.AssertNotCalled(t, "RefreshAccessToken")
}

func TestTokenProvider_RefreshesAndPersistsAccountToken(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(30*time.Second, "rt")
	wantExpiry := fixedNow.Add(time.Hour)

	fx.oauth.EXPECT().
		RefreshAccessToken(ctx, constants.ProviderGoogle, "rt").
		Return(&entity.TokenGrant{AccessToken: "fresh", ExpiresIn: time.Hour}, nil).
		Once()
	fx.accountRepo.EXPECT().
		UpdateTokens(ctx, account.ID, repository.AccountTokenUpdate{AccessToken: "fresh", ExpiresAt: wantExpiry}).
		Return(nil).
		Once()

	token, err := fx.provider.AccessToken(ctx, entity.ServiceScoped(), account)

	require.NoError(t, err)
	assert.Equal(t, "fresh", token.AccessToken)
	assert.Equal(t, wantExpiry, token.ExpiresAt)
	assert.Equal(t, "fresh", account.AccessToken)
	assert.Equal(t, "rt", account.RefreshToken)
}

func TestTokenProvider_InvalidGrantStopsChain(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(-time.Minute, "revoked")

	fx.oauth.EXPECT().
		RefreshAccessToken(ctx, constants.ProviderGoogle, "revoked").
		Return(nil, domainerrors.ErrReconnectRequired.WithDetails("Token has been expired or revoked."))

	token, err := fx.provider.AccessToken(ctx, entity.UserScoped(account.UserID), account)

	assert.Nil(t, token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReconnectRequired))
	fx.tokenRepo.AssertNotCalled(t, "FindByUserAndProvider")
	fx.sa.AssertNotCalled(t, "Token")
}

func TestTokenProvider_FallsBackToUserToken(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(-time.Minute, "rt")
	userExpiry := fixedNow.Add(20 * time.Minute)

	fx.oauth.EXPECT().
		RefreshAccessToken(ctx, constants.ProviderGoogle, "rt").
		Return(nil, domainerrors.ErrTokenRefreshFailed)
	fx.tokenRepo.EXPECT().
		FindByUserAndProvider(ctx, account.UserID, constants.ProviderGoogle).
		Return(&entity.UserOAuthToken{
			ID:             uuid.New(),
			UserID:         account.UserID,
			Provider:       constants.ProviderGoogle,
			AccessToken:    "user-token",
			TokenExpiresAt: &userExpiry,
		}, nil)

	token, err := fx.provider.AccessToken(ctx, entity.UserScoped(account.UserID), account)

	require.NoError(t, err)
	assert.Equal(t, "user-token", token.AccessToken)
	assert.Equal(t, entity.TokenSourceUser, token.Source)
	fx.sa.AssertNotCalled(t, "Token")
}

func TestTokenProvider_RefreshesAndPersistsUserToken(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(-time.Minute, "")
	stored := &entity.UserOAuthToken{
		ID:           uuid.New(),
		UserID:       account.UserID,
		Provider:     constants.ProviderGoogle,
		RefreshToken: "user-rt",
	}
	wantExpiry := fixedNow.Add(time.Hour)

	fx.tokenRepo.EXPECT().FindByUserAndProvider(ctx, account.UserID, constants.ProviderGoogle).Return(stored, nil)
	fx.oauth.EXPECT().
		RefreshAccessToken(ctx, constants.ProviderGoogle, "user-rt").
		Return(&entity.TokenGrant{AccessToken: "user-fresh", RefreshToken: "user-rt-2", ExpiresIn: time.Hour}, nil)

	rotated := "user-rt-2"
	fx.tokenRepo.EXPECT().
		UpdateTokens(ctx, stored.ID, repository.AccountTokenUpdate{AccessToken: "user-fresh", ExpiresAt: wantExpiry, RefreshToken: &rotated}).
		Return(nil)

	token, err := fx.provider.AccessToken(ctx, entity.UserScoped(account.UserID), account)

	require.NoError(t, err)
	assert.Equal(t, "user-fresh", token.AccessToken)
	assert.Equal(t, entity.TokenSourceUser, token.Source)
	assert.Equal(t, "user-rt-2", stored.RefreshToken)
}

func TestTokenProvider_UserTierOnlyReadsGoogleToken(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(-time.Minute, "")

	// The owner also holds a newer YouTube token; only the Google row is looked up.
	fx.tokenRepo.EXPECT().
		FindByUserAndProvider(ctx, account.UserID, constants.ProviderGoogle).
		Return(nil, repository.ErrOAuthTokenNotFound).
		Once()
	fx.sa.EXPECT().
		Token(ctx).
		Return(&entity.Token{AccessToken: "sa-token", Source: entity.TokenSourceServiceAccount}, nil)

	token, err := fx.provider.AccessToken(ctx, entity.UserScoped(account.UserID), account)

	require.NoError(t, err)
	assert.Equal(t, entity.TokenSourceServiceAccount, token.Source)
	fx.tokenRepo.AssertNotCalled(t, "FindByUserAndProvider", ctx, account.UserID, constants.ProviderYouTube)
	fx.oauth.AssertNotCalled(t, "RefreshAccessToken", ctx, constants.ProviderYouTube, mock.Anything)
}

func TestTokenProvider_RevokedUserTokenFallsBackToServiceAccount(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(-time.Minute, "rt")

	fx.oauth.EXPECT().
		RefreshAccessToken(ctx, constants.ProviderGoogle, "rt").
		Return(nil, domainerrors.ErrTokenRefreshFailed).
		Once()
	fx.tokenRepo.EXPECT().
		FindByUserAndProvider(ctx, account.UserID, constants.ProviderGoogle).
		Return(&entity.UserOAuthToken{
			ID:           uuid.New(),
			UserID:       account.UserID,
			Provider:     constants.ProviderGoogle,
			RefreshToken: "user-revoked",
		}, nil)
	fx.oauth.EXPECT().
		RefreshAccessToken(ctx, constants.ProviderGoogle, "user-revoked").
		Return(nil, domainerrors.ErrReconnectRequired.WithDetails("Token has been expired or revoked.")).
		Once()
	fx.sa.EXPECT().
		Token(ctx).
		Return(&entity.Token{AccessToken: "sa-token", Source: entity.TokenSourceServiceAccount}, nil)

	token, err := fx.provider.AccessToken(ctx, entity.UserScoped(account.UserID), account)

	require.NoError(t, err)
	assert.Equal(t, "sa-token", token.AccessToken)
	assert.Equal(t, entity.TokenSourceServiceAccount, token.Source)
}

func TestTokenProvider_FallsBackToServiceAccount(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(-time.Minute, "")

	fx.tokenRepo.EXPECT().
		FindByUserAndProvider(ctx, account.UserID, constants.ProviderGoogle).
		Return(nil, repository.ErrOAuthTokenNotFound)
	fx.sa.EXPECT().
		Token(ctx).
		Return(&entity.Token{AccessToken: "sa-token", Source: entity.TokenSourceServiceAccount}, nil)

	token, err := fx.provider.AccessToken(ctx, entity.ServiceScoped(), account)

	require.NoError(t, err)
	assert.Equal(t, "sa-token", token.AccessToken)
	assert.Equal(t, entity.TokenSourceServiceAccount, token.Source)
}

func TestTokenProvider_ReturnsLastError(t *testing.T) {
	fx := createTestTokenProvider(t)
	ctx := context.Background()
	account := newExpiringAccount(-time.Minute, "")
	dbErr := errors.New("connection reset")

	fx.tokenRepo.EXPECT().FindByUserAndProvider(ctx, account.UserID, constants.ProviderGoogle).Return(nil, dbErr)
	fx.sa.EXPECT().Token(ctx).Return(nil, domainerrors.ErrServiceAccountMissing)

	_, err := fx.provider.AccessToken(ctx, entity.ServiceScoped(), account)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceAccountMissing))
}

type stubStrategy struct {
	source entity.TokenSource
	token  *entity.Token
	err    error
	calls  int
}

func (s *stubStrategy) Source() entity.TokenSource { return s.source }

func (s *stubStrategy) TryGetToken(context.Context, *usecase.TokenRequest) (*entity.Token, error) {
	s.calls++

	return s.token, s.err
}

func TestTokenProvider_StopsOnlyOnAccountInvalidGrant(t *testing.T) {
	account := &stubStrategy{source: entity.TokenSourceAccount, err: domainerrors.ErrTokenRefreshFailed}
	user := &stubStrategy{source: entity.TokenSourceUser, err: domainerrors.ErrReconnectRequired}
	sa := &stubStrategy{source: entity.TokenSourceServiceAccount, token: &entity.Token{AccessToken: "sa"}}
	provider := newTokenProvider(newDiscardLogger(), account, user, sa)

	token, err := provider.AccessToken(context.Background(), entity.ServiceScoped(), &entity.GMBAccount{ID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, "sa", token.AccessToken)
	assert.Equal(t, 1, sa.calls)
}

func TestTokenProvider_NoStrategyApplies(t *testing.T) {
	first := &stubStrategy{source: entity.TokenSourceAccount}
	second := &stubStrategy{source: entity.TokenSourceUser}
	provider := newTokenProvider(newDiscardLogger(), first, second)

	_, err := provider.AccessToken(context.Background(), entity.ServiceScoped(), &entity.GMBAccount{ID: uuid.New()})

	assert.True(t, errors.Is(err, domainerrors.ErrNoUserToken))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}
