package pubsub

import "studio/internal/domain/service"

// syncEventAttributes are the message attributes used for subscription filtering and tracing.
func syncEventAttributes(event *service.SyncEvent) map[string]string {
	attributes := map[string]string{
		"account_id": event.AccountID,
		"sync_type":  event.SyncType,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
