package pubsub

import (
	"context"
	"testing"

	"studio/config"
	"studio/internal/domain/constants"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePubSubConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr []string
	}{
		{
			name: "local with endpoint",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: []string{"pubsub.localEndpoint"},
		},
		{
			name:    "google missing project and topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
			wantErr: []string{"pubsub.projectId", "pubsub.topicId"},
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: []string{"unknown pubsub provider: kafka"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePubSubConfig(tt.cfg)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestDisabledPublisher(t *testing.T) {
	var publisher service.EventPublisher = disabledPublisher{}

	err := publisher.PublishSyncEvent(context.Background(), &service.SyncEvent{AccountID: "acc-1"})
	assert.True(t, errors.Is(err, domainerrors.ErrSchedulingDisabled))
	assert.NoError(t, publisher.Close())
}
