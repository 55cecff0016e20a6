package service

import (
	"context"
)

// SyncEvent asks the sync worker to run one account sync in service scope.
type SyncEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	AccountID string `json:"account_id"`
	SyncType  string `json:"sync_type"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncEvent publishes a sync request for async processing
	PublishSyncEvent(ctx context.Context, event *SyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
