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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gmbReviewRepository implements the repository.GMBReviewRepository interface.
type gmbReviewRepository struct {
	db *gorm.DB
}

// NewGMBReviewRepository is the constructor for gmbReviewRepository.
func NewGMBReviewRepository(db *gorm.DB) repository.GMBReviewRepository {
	return &gmbReviewRepository{
		db: db,
	}
}

// UpsertBatch writes reviews keyed by external_review_id.
func (repo *gmbReviewRepository) UpsertBatch(ctx context.Context, reviews []*entity.Review, batchSize int) error {
	now := time.Now()
	rows := make([]*model.GMBReviewModel, 0, len(reviews))
	for _, review := range reviews {
		row := fromReviewDomain(review)
		row.UpdatedAt = now
		rows = append(rows, row)
	}

	conflict := clause.OnConflict{
		Columns: columns("external_review_id"),
		DoUpdates: clause.AssignmentColumns([]string{
			"gmb_account_id", "user_id", "location_id", "reviewer_name", "rating", "review_text",
			"review_date", "reply_text", "reply_date", "has_reply", "updated_at",
		}),
	}

	if err := upsertInChunks(ctx, repo.db, rows, batchSize, conflict); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationNotFound.WrapMessage("review references unknown location")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert reviews")
	}

	return nil
}

// FindByID loads a review, adding an owner filter for user-scoped callers.
func (repo *gmbReviewRepository) FindByID(ctx context.Context, access entity.AccessContext, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.GMBReviewModel

	query := repo.db.WithContext(ctx).Where("id = ?", id)
	if !access.IsService() {
		query = query.Where("user_id = ?", access.UserID)
	}

	if err := query.First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// UpdateReply mirrors a reply that was accepted by Google.
func (repo *gmbReviewRepository) UpdateReply(ctx context.Context, id uuid.UUID, text string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GMBReviewModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reply_text": text,
			"reply_date": at,
			"has_reply":  true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review reply")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.GMBReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:               data.ID,
		GMBAccountID:     data.GMBAccountID,
		UserID:           data.UserID,
		LocationID:       data.LocationID,
		ExternalReviewID: data.ExternalReviewID,
		ReviewerName:     util.DerefString(data.ReviewerName),
		Rating:           data.Rating,
		Text:             util.DerefString(data.ReviewText),
		ReviewDate:       data.ReviewDate,
		ReplyText:        data.ReplyText,
		ReplyDate:        data.ReplyDate,
		HasReply:         data.HasReply,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.GMBReviewModel {
	return &model.GMBReviewModel{
		ID:               data.ID,
		GMBAccountID:     data.GMBAccountID,
		UserID:           data.UserID,
		LocationID:       data.LocationID,
		ExternalReviewID: data.ExternalReviewID,
		ReviewerName:     util.OptionalString(data.ReviewerName),
		Rating:           data.Rating,
		ReviewText:       util.OptionalString(data.Text),
		ReviewDate:       data.ReviewDate,
		ReplyText:        data.ReplyText,
		ReplyDate:        data.ReplyDate,
		HasReply:         data.HasReply,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
