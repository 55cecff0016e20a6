package pubsub

import (
	"context"
	"log/slog"

	"studio/config"
	"studio/internal/domain/constants"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/errors"

	"go.uber.org/fx"
)

// disabledPublisher stands in when no provider is configured. Scheduling through it fails
// loudly; on-demand syncs do not depend on it.
type disabledPublisher struct{}

func (disabledPublisher) PublishSyncEvent(context.Context, *service.SyncEvent) error {
	return domainerrors.ErrSchedulingDisabled
}

func (disabledPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the sync event transport from pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "sync_publisher"))

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("PubSub not configured, scheduled syncs are disabled")

		return disabledPublisher{}, nil
	}
	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := newPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing sync event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Delivering sync events straight to the worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// validatePubSubConfig reports every missing field for the chosen provider at once.
func validatePubSubConfig(cfg *config.PubSubConfig) error {
	var errs []error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			errs = append(errs, errors.New("pubsub.localEndpoint is required for the local provider"))
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			errs = append(errs, errors.New("pubsub.projectId is required for the google provider"))
		}
		if cfg.TopicID == "" {
			errs = append(errs, errors.New("pubsub.topicId is required for the google provider"))
		}
	default:
		errs = append(errs, errors.Errorf("unknown pubsub provider: %s", cfg.Provider))
	}

	return errors.Join(errs...)
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
