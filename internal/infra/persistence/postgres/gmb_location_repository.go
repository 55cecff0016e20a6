package postgres

import (
	"context"
	"time"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/infra/persistence/model"
	"studio/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gmbLocationRepository implements the repository.GMBLocationRepository interface.
type gmbLocationRepository struct {
	db *gorm.DB
}

// NewGMBLocationRepository is the constructor for gmbLocationRepository.
func NewGMBLocationRepository(db *gorm.DB) repository.GMBLocationRepository {
	return &gmbLocationRepository{
		db: db,
	}
}

// UpsertBatch writes locations keyed by (gmb_account_id, location_id).
func (repo *gmbLocationRepository) UpsertBatch(ctx context.Context, locations []*entity.Location, batchSize int) error {
	now := time.Now()
	rows := make([]*model.GMBLocationModel, 0, len(locations))
	for _, location := range locations {
		row := fromLocationDomain(location)
		row.UpdatedAt = now
		rows = append(rows, row)
	}

	conflict := clause.OnConflict{
		Columns: columns("gmb_account_id", "location_id"),
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "location_name", "address", "phone", "category", "website", "is_active", "metadata", "updated_at",
		}),
	}

	if err := upsertInChunks(ctx, repo.db, rows, batchSize, conflict); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("location references unknown account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert locations")
	}

	return nil
}

// ListByAccount returns all locations stored for an account.
func (repo *gmbLocationRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Location, error) {
	var locationModels []*model.GMBLocationModel

	if err := repo.db.WithContext(ctx).
		Where("gmb_account_id = ?", accountID).
		Order("created_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindByID loads a single location.
func (repo *gmbLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.GMBLocationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find location")
	}

	return toLocationDomain(&locationM), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.GMBLocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:           data.ID,
		GMBAccountID: data.GMBAccountID,
		UserID:       data.UserID,
		LocationID:   data.LocationID,
		Name:         data.LocationName,
		Address:      util.DerefString(data.Address),
		Phone:        util.DerefString(data.Phone),
		Category:     util.DerefString(data.Category),
		Website:      util.DerefString(data.Website),
		IsActive:     data.IsActive,
		Metadata:     []byte(data.Metadata),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.GMBLocationModel {
	var metadata datatypes.JSON
	if len(data.Metadata) > 0 {
		metadata = datatypes.JSON(data.Metadata)
	}

	return &model.GMBLocationModel{
		ID:           data.ID,
		GMBAccountID: data.GMBAccountID,
		UserID:       data.UserID,
		LocationID:   data.LocationID,
		LocationName: data.Name,
		Address:      util.OptionalString(data.Address),
		Phone:        util.OptionalString(data.Phone),
		Category:     util.OptionalString(data.Category),
		Website:      util.OptionalString(data.Website),
		IsActive:     data.IsActive,
		Metadata:     metadata,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
