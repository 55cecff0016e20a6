package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the terminal state of a logged job.
type JobStatus string

const (
	JobStatusSuccess JobStatus = "success"
	JobStatusError   JobStatus = "error"
)

// JobLogMeta is stored as JSON in jobs_log.meta.
type JobLogMeta struct {
	AccountID string     `json:"accountId"`
	SyncType  SyncType   `json:"syncType"`
	Counts    SyncCounts `json:"counts"`
	Mode      string     `json:"mode"`
}

// JobLog records one sync attempt.
type JobLog struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Status     JobStatus
	Source     string
	Meta       JobLogMeta
	Error      *string
}
