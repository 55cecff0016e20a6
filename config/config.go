package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultRequestTimeout   = 60 * time.Second
	defaultMaxRetries       = 2
	defaultRetryBaseDelay   = 300 * time.Millisecond
	defaultUpsertBatchSize  = 100
	defaultErrorMaxLength   = 300
	defaultTokenRefreshSkew = time.Minute
	defaultOAuthStateTTL    = 30 * time.Minute
	defaultUserTokenSkew    = 5 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	GoogleOAuth *OAuthClientConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// YouTubeOAuth overrides the client used to refresh youtube user tokens. Falls back to GoogleOAuth.
	YouTubeOAuth *OAuthClientConfig `json:"youtubeOAuth" yaml:"youtubeOAuth"`

	ServiceAccount *ServiceAccountConfig `json:"serviceAccount" yaml:"serviceAccount"`

	GoogleAPI *GoogleAPIConfig `json:"googleApi" yaml:"googleApi"`

	Sync *SyncConfig `json:"sync" yaml:"sync"`

	OAuthState *OAuthStateConfig `json:"oauthState" yaml:"oauthState"`

	Frontend *FrontendConfig `json:"frontend" yaml:"frontend"`

	// PubSub configuration for scheduled sync events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	TokenEncryption *TokenEncryptionConfig `json:"tokenEncryption" yaml:"tokenEncryption"`
}

// AuthConfig holds the session verification secret of the hosted auth provider.
type AuthConfig struct {
	SessionSecret string `json:"sessionSecret" yaml:"sessionSecret"`
}

// OAuthClientConfig is a Google OAuth web client.
type OAuthClientConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
}

// Configured reports whether the client can call the token endpoint.
func (c *OAuthClientConfig) Configured() bool {
	return c != nil && c.ClientID != "" && c.ClientSecret != ""
}

// ServiceAccountConfig points at the platform service-account key.
// CredentialsJSON wins over CredentialsURL (a gocloud.dev blob URL such as file:///secrets/sa.json or gs://bucket/sa.json).
type ServiceAccountConfig struct {
	CredentialsJSON string `json:"credentialsJson" yaml:"credentialsJson"`
	CredentialsURL  string `json:"credentialsUrl" yaml:"credentialsUrl"`
}

// GoogleAPIConfig overrides upstream base URLs; empty values use Google production hosts.
type GoogleAPIConfig struct {
	AuthURL                string `json:"authUrl" yaml:"authUrl"`
	TokenURL               string `json:"tokenUrl" yaml:"tokenUrl"`
	UserInfoURL            string `json:"userInfoUrl" yaml:"userInfoUrl"`
	AccountManagementURL   string `json:"accountManagementUrl" yaml:"accountManagementUrl"`
	BusinessProfileURL     string `json:"businessProfileUrl" yaml:"businessProfileUrl"`
	BusinessInformationURL string `json:"businessInformationUrl" yaml:"businessInformationUrl"`
	MyBusinessURL          string `json:"myBusinessUrl" yaml:"myBusinessUrl"`
}

// SyncConfig tunes the sync engine and the upstream gateway.
// Zero values take defaults; a negative MaxRetries or TokenRefreshSkew means zero.
type SyncConfig struct {
	TriggerSecret    string        `json:"triggerSecret" yaml:"triggerSecret"`
	RequestTimeout   time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	MaxRetries       int           `json:"maxRetries" yaml:"maxRetries"`
	RetryBaseDelay   time.Duration `json:"retryBaseDelay" yaml:"retryBaseDelay"`
	UpsertBatchSize  int           `json:"upsertBatchSize" yaml:"upsertBatchSize"`
	ErrorMaxLength   int           `json:"errorMaxLength" yaml:"errorMaxLength"`
	TokenRefreshSkew time.Duration `json:"tokenRefreshSkew" yaml:"tokenRefreshSkew"`
	UserTokenSkew    time.Duration `json:"userTokenSkew" yaml:"userTokenSkew"`
}

// OAuthStateConfig controls connect-flow state lifetime.
type OAuthStateConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// FrontendConfig holds the redirect targets of the OAuth callback.
type FrontendConfig struct {
	SuccessURL string `json:"successUrl" yaml:"successUrl"`
	ErrorURL   string `json:"errorUrl" yaml:"errorUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// TokenEncryptionConfig holds the base64 32-byte key used to seal OAuth tokens at rest.
type TokenEncryptionConfig struct {
	Key string `json:"key" yaml:"key"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never nil-check them.
func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &OAuthClientConfig{}
	}
	if cfg.ServiceAccount == nil {
		cfg.ServiceAccount = &ServiceAccountConfig{}
	}
	if cfg.GoogleAPI == nil {
		cfg.GoogleAPI = &GoogleAPIConfig{}
	}
	if cfg.Frontend == nil {
		cfg.Frontend = &FrontendConfig{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	if cfg.Sync.RequestTimeout <= 0 {
		cfg.Sync.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Sync.MaxRetries < 0 {
		cfg.Sync.MaxRetries = 0
	} else if cfg.Sync.MaxRetries == 0 {
		cfg.Sync.MaxRetries = defaultMaxRetries
	}
	if cfg.Sync.RetryBaseDelay <= 0 {
		cfg.Sync.RetryBaseDelay = defaultRetryBaseDelay
	}
	if cfg.Sync.UpsertBatchSize <= 0 {
		cfg.Sync.UpsertBatchSize = defaultUpsertBatchSize
	}
	if cfg.Sync.ErrorMaxLength <= 0 {
		cfg.Sync.ErrorMaxLength = defaultErrorMaxLength
	}
	if cfg.Sync.TokenRefreshSkew < 0 {
		cfg.Sync.TokenRefreshSkew = 0
	} else if cfg.Sync.TokenRefreshSkew == 0 {
		cfg.Sync.TokenRefreshSkew = defaultTokenRefreshSkew
	}
	if cfg.Sync.UserTokenSkew <= 0 {
		cfg.Sync.UserTokenSkew = defaultUserTokenSkew
	}

	if cfg.OAuthState == nil {
		cfg.OAuthState = &OAuthStateConfig{}
	}
	if cfg.OAuthState.TTL <= 0 {
		cfg.OAuthState.TTL = defaultOAuthStateTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
