package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"sync": map[string]any{
			"triggerSecret":   "",
			"upsertBatchSize": 100,
		},
		"googleOAuth": map[string]any{
			"clientSecret": "",
		},
		"serviceAccount": map[string]any{
			"credentialsJson": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SYNC_TRIGGERSECRET", want: "sync.triggerSecret"},
		{envKey: "SYNC_UPSERTBATCHSIZE", want: "sync.upsertBatchSize"},
		{envKey: "GOOGLEOAUTH_CLIENTSECRET", want: "googleOAuth.clientSecret"},
		{envKey: "SERVICEACCOUNT_CREDENTIALSJSON", want: "serviceAccount.credentialsJson"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsSyncSettings(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 60*time.Second, cfg.Sync.RequestTimeout)
	assert.Equal(t, 2, cfg.Sync.MaxRetries)
	assert.Equal(t, 300*time.Millisecond, cfg.Sync.RetryBaseDelay)
	assert.Equal(t, 100, cfg.Sync.UpsertBatchSize)
	assert.Equal(t, 300, cfg.Sync.ErrorMaxLength)
	assert.Equal(t, time.Minute, cfg.Sync.TokenRefreshSkew)
	assert.Equal(t, 30*time.Minute, cfg.OAuthState.TTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.NotNil(t, cfg.GoogleOAuth)
	assert.NotNil(t, cfg.ServiceAccount)
}

func TestApplyDefaults_NegativeValuesMeanZero(t *testing.T) {
	cfg := &Config{Sync: &SyncConfig{MaxRetries: -1, TokenRefreshSkew: -time.Second, UpsertBatchSize: 25}}
	applyDefaults(cfg)

	assert.Equal(t, 0, cfg.Sync.MaxRetries)
	assert.Equal(t, time.Duration(0), cfg.Sync.TokenRefreshSkew)
	assert.Equal(t, 25, cfg.Sync.UpsertBatchSize)
}
