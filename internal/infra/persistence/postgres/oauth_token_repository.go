package postgres

import (
	"context"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// oauthTokenRepository implements the repository.OAuthTokenRepository interface.
type oauthTokenRepository struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// NewOAuthTokenRepository is the constructor for oauthTokenRepository.
func NewOAuthTokenRepository(db *gorm.DB, cipher service.TokenCipher) repository.OAuthTokenRepository {
	return &oauthTokenRepository{
		db:     db,
		cipher: cipher,
	}
}

// FindByUserAndProvider returns the token row for one provider.
func (repo *oauthTokenRepository) FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.UserOAuthToken, error) {
	var tokenM model.OAuthTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Order("created_at DESC").
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOAuthTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find oauth token")
	}

	return repo.toDomain(&tokenM)
}

// UpdateTokens persists a refreshed credential on the given row.
func (repo *oauthTokenRepository) UpdateTokens(ctx context.Context, id uuid.UUID, update repository.AccountTokenUpdate) error {
	values, err := tokenUpdateValues(repo.cipher, update)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OAuthTokenModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update oauth token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOAuthTokenNotFound
	}

	return nil
}

func (repo *oauthTokenRepository) toDomain(data *model.OAuthTokenModel) (*entity.UserOAuthToken, error) {
	accessToken, err := repo.cipher.Open(data.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "open access token")
	}
	refreshToken, err := repo.cipher.Open(data.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "open refresh token")
	}

	return &entity.UserOAuthToken{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		TokenExpiresAt: data.TokenExpiresAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}
