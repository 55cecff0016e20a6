package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"studio/config"
	"studio/internal/domain/repository"
	mockRepo "studio/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

//nolint:gochecknoglobals
var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Sync: &config.SyncConfig{
			UpsertBatchSize:  100,
			ErrorMaxLength:   300,
			TokenRefreshSkew: time.Minute,
			UserTokenSkew:    5 * time.Minute,
		},
		OAuthState: &config.OAuthStateConfig{TTL: 30 * time.Minute},
	}
}

func fixedClock() time.Time {
	return fixedNow
}

// expectTransaction runs the callback against a fresh mock factory prepared by setup.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
