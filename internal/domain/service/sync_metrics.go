package service

import (
	"time"

	"studio/internal/domain/entity"
)

// SyncMetrics records operational counters for syncs and upstream calls.
type SyncMetrics interface {
	ObserveSync(mode string, syncType entity.SyncType, status entity.JobStatus, took time.Duration, counts entity.SyncCounts)
	ObserveGoogleRequest(endpoint string, statusCode int)
}
