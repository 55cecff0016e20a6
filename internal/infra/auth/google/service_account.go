package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"studio/config"
	"studio/internal/domain/constants"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/infra/gateway"

	"github.com/golang-jwt/jwt/v5"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// credentials
	_ "gocloud.dev/blob/gcsblob"  // gs:// credentials
)

const (
	jwtBearerGrant         = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionLifetime      = time.Hour
	serviceAccountEndpoint = "oauth.service_account"
)

type serviceAccountKey struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// ServiceAccountTokenSource signs a JWT assertion with the platform key and trades it for an access token.
type ServiceAccountTokenSource struct {
	cfg      *config.ServiceAccountConfig
	tokenURL string
	gw       *gateway.Gateway
	now      func() time.Time

	mu  sync.Mutex
	key *serviceAccountKey
}

// NewServiceAccountTokenSource creates the service-account tier of the token chain.
func NewServiceAccountTokenSource(cfg *config.Config, gw *gateway.Gateway) service.ServiceAccountTokenSource {
	return newServiceAccountTokenSource(cfg, gw)
}

func newServiceAccountTokenSource(cfg *config.Config, gw *gateway.Gateway) *ServiceAccountTokenSource {
	saCfg := cfg.ServiceAccount
	if saCfg == nil {
		saCfg = &config.ServiceAccountConfig{}
	}
	tokenURL := googleTokenURL
	if cfg.GoogleAPI != nil && cfg.GoogleAPI.TokenURL != "" {
		tokenURL = cfg.GoogleAPI.TokenURL
	}

	return &ServiceAccountTokenSource{
		cfg:      saCfg,
		tokenURL: tokenURL,
		gw:       gw,
		now:      time.Now,
	}
}

// Token mints a fresh access token scoped to business.manage.
func (s *ServiceAccountTokenSource) Token(ctx context.Context) (*entity.Token, error) {
	key, err := s.loadKey(ctx)
	if err != nil {
		return nil, err
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(key.PrivateKey))
	if err != nil {
		return nil, domainerrors.ErrServiceAccountInvalid.WithDetails(err.Error())
	}

	audience := key.TokenURI
	if audience == "" {
		audience = s.tokenURL
	}

	now := s.now()
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   key.ClientEmail,
		"scope": constants.ScopeBusinessManage,
		"aud":   audience,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}).SignedString(privateKey)
	if err != nil {
		return nil, domainerrors.ErrServiceAccountInvalid.WithDetails(err.Error())
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	resp, err := s.gw.Do(ctx, &gateway.Request{
		Name:   serviceAccountEndpoint,
		Method: http.MethodPost,
		URL:    audience,
		Header: http.Header{"Content-Type": []string{"application/x-www-form-urlencoded"}},
		Body:   []byte(form.Encode()),
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, domainerrors.ErrServiceAccountTokenError.WithDetails(describeTokenError(resp))
	}

	var body tokenResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.AccessToken == "" {
		return nil, domainerrors.ErrServiceAccountTokenMissing
	}

	return &entity.Token{
		AccessToken: body.AccessToken,
		ExpiresAt:   body.grant().ExpiresAt(now),
		Source:      entity.TokenSourceServiceAccount,
	}, nil
}

// loadKey reads and caches the credentials. Inline JSON wins over the blob URL.
func (s *ServiceAccountTokenSource) loadKey(ctx context.Context) (*serviceAccountKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		return s.key, nil
	}

	var raw []byte
	switch {
	case strings.TrimSpace(s.cfg.CredentialsJSON) != "":
		raw = []byte(s.cfg.CredentialsJSON)
	case s.cfg.CredentialsURL != "":
		data, err := readBlob(ctx, s.cfg.CredentialsURL)
		if err != nil {
			return nil, domainerrors.ErrServiceAccountMissing.WithDetails(err.Error())
		}
		raw = data
	default:
		return nil, domainerrors.ErrServiceAccountMissing
	}

	var key serviceAccountKey
	if err := json.Unmarshal(raw, &key); err != nil {
		return nil, domainerrors.ErrServiceAccountInvalid.WithDetails(err.Error())
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, domainerrors.ErrServiceAccountInvalid.WithDetails("client_email and private_key are required")
	}

	s.key = &key

	return s.key, nil
}

func readBlob(ctx context.Context, rawURL string) ([]byte, error) {
	bucketURL, key, err := splitBlobURL(rawURL)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

// splitBlobURL splits file:///dir/sa.json into (file:///dir, sa.json) and gs://bucket/a/sa.json into (gs://bucket, a/sa.json).
func splitBlobURL(rawURL string) (bucketURL, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.Wrap(err, "parse credentials url")
	}

	if u.Scheme == "file" {
		dir, file := path.Split(u.Path)
		if file == "" {
			return "", "", errors.Errorf("credentials url %q has no object key", rawURL)
		}
		bucket := url.URL{Scheme: u.Scheme, Path: strings.TrimSuffix(dir, "/"), RawQuery: u.RawQuery}

		return bucket.String(), file, nil
	}

	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", errors.Errorf("credentials url %q has no object key", rawURL)
	}
	bucket := url.URL{Scheme: u.Scheme, Host: u.Host, RawQuery: u.RawQuery}

	return bucket.String(), key, nil
}
