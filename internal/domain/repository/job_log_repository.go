package repository

import (
	"context"

	"studio/internal/domain/entity"
)

// JobLogRepository appends rows to jobs_log.
type JobLogRepository interface {
	Create(ctx context.Context, log *entity.JobLog) error
}
