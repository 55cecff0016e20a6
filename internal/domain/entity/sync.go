package entity

import "github.com/google/uuid"

// SyncType selects how much upstream data a sync pass reads.
type SyncType string

const (
	SyncTypeFull        SyncType = "full"
	SyncTypeIncremental SyncType = "incremental"
)

// ParseSyncType maps user input to a SyncType, defaulting to full.
func ParseSyncType(raw string) SyncType {
	if SyncType(raw) == SyncTypeIncremental {
		return SyncTypeIncremental
	}

	return SyncTypeFull
}

// SyncCounts is the number of rows written per entity kind.
type SyncCounts struct {
	Locations int `json:"locations"`
	Reviews   int `json:"reviews"`
	Media     int `json:"media"`
}

// SyncResult describes a finished sync pass, successful or not.
type SyncResult struct {
	AccountID uuid.UUID
	SyncType  SyncType
	Mode      string
	Counts    SyncCounts
	TookMs    int64
}
