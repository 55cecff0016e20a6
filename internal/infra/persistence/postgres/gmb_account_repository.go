// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/infra/persistence/model"
	"studio/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gmbAccountRepository implements the repository.GMBAccountRepository interface.
type gmbAccountRepository struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// NewGMBAccountRepository is the constructor for gmbAccountRepository.
func NewGMBAccountRepository(db *gorm.DB, cipher service.TokenCipher) repository.GMBAccountRepository {
	return &gmbAccountRepository{
		db:     db,
		cipher: cipher,
	}
}

// FindByID loads an account, adding an owner filter for user-scoped callers.
func (repo *gmbAccountRepository) FindByID(ctx context.Context, access entity.AccessContext, id uuid.UUID) (*entity.GMBAccount, error) {
	var accountM model.GMBAccountModel

	query := repo.db.WithContext(ctx).Where("id = ?", id)
	if !access.IsService() {
		query = query.Where("user_id = ?", access.UserID)
	}

	if err := query.First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find gmb account")
	}

	return repo.toDomain(&accountM)
}

// ListActive returns every active account ordered by last sync, oldest first.
func (repo *gmbAccountRepository) ListActive(ctx context.Context) ([]*entity.GMBAccount, error) {
	var accountModels []*model.GMBAccountModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("last_sync ASC NULLS FIRST").
		Find(&accountModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list active gmb accounts")
	}

	accounts := make([]*entity.GMBAccount, 0, len(accountModels))
	for _, accountM := range accountModels {
		account, err := repo.toDomain(accountM)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Upsert writes the account keyed by (user_id, account_id). An empty refresh token never overwrites a stored one.
func (repo *gmbAccountRepository) Upsert(ctx context.Context, account *entity.GMBAccount) error {
	accountM, err := repo.fromDomain(account)
	if err != nil {
		return err
	}

	updates := clause.AssignmentColumns([]string{
		"account_name", "email", "google_account_id", "access_token", "token_expires_at", "is_active", "updated_at",
	})
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "refresh_token"},
		Value:  gorm.Expr("COALESCE(NULLIF(EXCLUDED.refresh_token, ''), gmb_accounts.refresh_token)"),
	})

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   columns("user_id", "account_id"),
			DoUpdates: updates,
		}).
		Create(accountM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert gmb account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateTokens persists a refreshed access token and, when present, a rotated refresh token.
func (repo *gmbAccountRepository) UpdateTokens(ctx context.Context, id uuid.UUID, update repository.AccountTokenUpdate) error {
	values, err := tokenUpdateValues(repo.cipher, update)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.GMBAccountModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update gmb account tokens")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdateAccountName stores the resolved Google resource name in account_id.
func (repo *gmbAccountRepository) UpdateAccountName(ctx context.Context, id uuid.UUID, accountName string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GMBAccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"account_id": accountName, "updated_at": time.Now()})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("google account already connected for this user")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account name")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdateLastSync stamps the account after a successful sync.
func (repo *gmbAccountRepository) UpdateLastSync(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GMBAccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_sync": at, "updated_at": at})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last sync")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Deactivate marks the account disconnected; data is kept.
func (repo *gmbAccountRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GMBAccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate gmb account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// tokenUpdateValues builds the column map shared by account and user token updates.
func tokenUpdateValues(cipher service.TokenCipher, update repository.AccountTokenUpdate) (map[string]any, error) {
	accessToken, err := cipher.Seal(update.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "seal access token")
	}

	values := map[string]any{
		"access_token":     accessToken,
		"token_expires_at": update.ExpiresAt,
		"updated_at":       time.Now(),
	}

	if update.RefreshToken != nil && *update.RefreshToken != "" {
		refreshToken, err := cipher.Seal(*update.RefreshToken)
		if err != nil {
			return nil, errors.Wrap(err, "seal refresh token")
		}
		values["refresh_token"] = refreshToken
	}

	return values, nil
}

// --- Mapper Functions ---

func (repo *gmbAccountRepository) toDomain(data *model.GMBAccountModel) (*entity.GMBAccount, error) {
	if data == nil {
		return nil, nil
	}

	accessToken, err := repo.cipher.Open(data.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "open access token")
	}
	refreshToken, err := repo.cipher.Open(data.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "open refresh token")
	}

	return &entity.GMBAccount{
		ID:              data.ID,
		UserID:          data.UserID,
		AccountName:     util.DerefString(data.AccountID),
		DisplayName:     data.AccountName,
		Email:           data.Email,
		GoogleAccountID: data.GoogleAccountID,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		TokenExpiresAt:  data.TokenExpiresAt,
		IsActive:        data.IsActive,
		LastSync:        data.LastSync,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

func (repo *gmbAccountRepository) fromDomain(data *entity.GMBAccount) (*model.GMBAccountModel, error) {
	accessToken, err := repo.cipher.Seal(data.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "seal access token")
	}
	refreshToken, err := repo.cipher.Seal(data.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "seal refresh token")
	}

	return &model.GMBAccountModel{
		ID:              data.ID,
		UserID:          data.UserID,
		AccountID:       util.OptionalString(data.AccountName),
		AccountName:     data.DisplayName,
		Email:           data.Email,
		GoogleAccountID: data.GoogleAccountID,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		TokenExpiresAt:  data.TokenExpiresAt,
		IsActive:        data.IsActive,
		LastSync:        data.LastSync,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}
