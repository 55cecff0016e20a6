package postgres

import (
	"context"
	"time"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// oauthStateRepository implements the repository.OAuthStateRepository interface.
type oauthStateRepository struct {
	db *gorm.DB
}

// NewOAuthStateRepository is the constructor for oauthStateRepository.
func NewOAuthStateRepository(db *gorm.DB) repository.OAuthStateRepository {
	return &oauthStateRepository{
		db: db,
	}
}

// Create persists a fresh state.
func (repo *oauthStateRepository) Create(ctx context.Context, state *entity.OAuthState) error {
	stateM := &model.OAuthStateModel{
		State:     state.State,
		UserID:    state.UserID,
		ExpiresAt: state.ExpiresAt,
		Used:      false,
		CreatedAt: state.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(stateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOAuthStateInvalid.WrapMessage("duplicate state")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create oauth state")
	}

	return nil
}

// Consume flips used=false to true in a single UPDATE ... RETURNING so a state can be redeemed once.
func (repo *oauthStateRepository) Consume(ctx context.Context, state string, now time.Time) (*entity.OAuthState, error) {
	var stateM model.OAuthStateModel

	result := repo.db.WithContext(ctx).
		Model(&stateM).
		Clauses(clause.Returning{}).
		Where("state = ? AND used = ? AND expires_at > ?", state, false, now).
		Update("used", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume oauth state")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOAuthStateInvalid
	}

	return &entity.OAuthState{
		State:     stateM.State,
		UserID:    stateM.UserID,
		ExpiresAt: stateM.ExpiresAt,
		Used:      stateM.Used,
		CreatedAt: stateM.CreatedAt,
	}, nil
}
