package postgres

import (
	"context"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/infra/persistence/model"
	"studio/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gmbMediaRepository implements the repository.GMBMediaRepository interface.
type gmbMediaRepository struct {
	db *gorm.DB
}

// NewGMBMediaRepository is the constructor for gmbMediaRepository.
func NewGMBMediaRepository(db *gorm.DB) repository.GMBMediaRepository {
	return &gmbMediaRepository{
		db: db,
	}
}

// UpsertBatch writes media keyed by external_media_id.
func (repo *gmbMediaRepository) UpsertBatch(ctx context.Context, media []*entity.Media, batchSize int) error {
	rows := make([]*model.GMBMediaModel, 0, len(media))
	for _, item := range media {
		rows = append(rows, &model.GMBMediaModel{
			ID:              item.ID,
			GMBAccountID:    item.GMBAccountID,
			LocationID:      item.LocationID,
			ExternalMediaID: item.ExternalMediaID,
			Type:            util.OptionalString(item.Type),
			URL:             util.OptionalString(item.URL),
			CreatedAt:       item.CreatedAt,
			UpdatedAt:       item.UpdatedAt,
		})
	}

	conflict := clause.OnConflict{
		Columns: columns("external_media_id"),
		DoUpdates: clause.AssignmentColumns([]string{
			"gmb_account_id", "location_id", "type", "url", "created_at", "updated_at",
		}),
	}

	if err := upsertInChunks(ctx, repo.db, rows, batchSize, conflict); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationNotFound.WrapMessage("media references unknown location")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert media")
	}

	return nil
}
