package postgres

import (
	"context"
	"encoding/json"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// jobLogRepository implements the repository.JobLogRepository interface.
type jobLogRepository struct {
	db *gorm.DB
}

// NewJobLogRepository is the constructor for jobLogRepository.
func NewJobLogRepository(db *gorm.DB) repository.JobLogRepository {
	return &jobLogRepository{
		db: db,
	}
}

// Create appends a job log row.
func (repo *jobLogRepository) Create(ctx context.Context, log *entity.JobLog) error {
	meta, err := json.Marshal(log.Meta)
	if err != nil {
		return errors.Wrap(err, "marshal job log meta")
	}

	logM := &model.JobLogModel{
		ID:         log.ID,
		StartedAt:  log.StartedAt,
		FinishedAt: log.FinishedAt,
		Status:     string(log.Status),
		Source:     log.Source,
		Meta:       datatypes.JSON(meta),
		Error:      log.Error,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create job log")
	}

	log.ID = logM.ID

	return nil
}
