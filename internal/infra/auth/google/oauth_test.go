package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"studio/config"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/errors"
	"studio/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(serverURL string) *config.Config {
	return &config.Config{
		GoogleOAuth: &config.OAuthClientConfig{
			ClientID:     "google-client",
			ClientSecret: "google-secret",
			RedirectURI:  "https://studio.example/api/v1/gmb/oauth/callback",
		},
		GoogleAPI: &config.GoogleAPIConfig{
			TokenURL:    serverURL + "/token",
			UserInfoURL: serverURL + "/userinfo",
		},
		ServiceAccount: &config.ServiceAccountConfig{},
	}
}

func newTestGateway(server *httptest.Server) *gateway.Gateway {
	return gateway.New(server.Client(), gateway.Options{Timeout: time.Second}, nil, newDiscardLogger())
}

func TestOAuthClient_AuthorizationURL(t *testing.T) {
	client := newOAuthClient(newTestConfig("http://unused"), nil)

	raw := client.AuthorizationURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", u.Host)
	q := u.Query()
	assert.Equal(t, "google-client", q.Get("client_id"))
	assert.Equal(t, "https://studio.example/api/v1/gmb/oauth/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "true", q.Get("include_granted_scopes"))
	assert.Equal(t, "state-123", q.Get("state"))

	scopes := strings.Split(q.Get("scope"), " ")
	assert.ElementsMatch(t, connectScopes, scopes)
}

func TestOAuthClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "google-secret", r.PostForm.Get("client_secret"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at",
			"refresh_token": "rt",
			"expires_in":    3599,
			"token_type":    "Bearer",
		})
	}))
	defer server.Close()

	client := newOAuthClient(newTestConfig(server.URL), newTestGateway(server))

	grant, err := client.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "at", grant.AccessToken)
	assert.Equal(t, "rt", grant.RefreshToken)
	assert.Equal(t, 3599*time.Second, grant.ExpiresIn)
}

func TestOAuthClient_ExchangeCode_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_request","error_description":"Malformed auth code."}`))
	}))
	defer server.Close()

	client := newOAuthClient(newTestConfig(server.URL), newTestGateway(server))

	_, err := client.ExchangeCode(context.Background(), "bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExchangeFailed))
	assert.Contains(t, err.Error(), "Malformed auth code.")
}

func TestOAuthClient_ExchangeCode_NotConfigured(t *testing.T) {
	cfg := newTestConfig("http://unused")
	cfg.GoogleOAuth = &config.OAuthClientConfig{}

	_, err := newOAuthClient(cfg, nil).ExchangeCode(context.Background(), "code")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthMissing))
}

func TestOAuthClient_RefreshAccessToken(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantAccess string
	}{
		{
			name:       "refreshed",
			status:     http.StatusOK,
			body:       `{"access_token":"fresh","expires_in":3600}`,
			wantAccess: "fresh",
		},
		{
			name:    "invalid grant",
			status:  http.StatusBadRequest,
			body:    `{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`,
			wantErr: domainerrors.ErrReconnectRequired,
		},
		{
			name:    "other failure",
			status:  http.StatusUnauthorized,
			body:    `{"error":"unauthorized_client"}`,
			wantErr: domainerrors.ErrTokenRefreshFailed,
		},
		{
			name:    "missing access token",
			status:  http.StatusOK,
			body:    `{"expires_in":3600}`,
			wantErr: domainerrors.ErrTokenRefreshFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
				assert.Equal(t, "rt", r.PostForm.Get("refresh_token"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newOAuthClient(newTestConfig(server.URL), newTestGateway(server))

			grant, err := client.RefreshAccessToken(context.Background(), "google", "rt")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, grant.AccessToken)
			assert.Empty(t, grant.RefreshToken)
		})
	}
}

func TestOAuthClient_RefreshUsesYouTubeClientWhenConfigured(t *testing.T) {
	var gotClientID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotClientID = r.PostForm.Get("client_id")
		_, _ = w.Write([]byte(`{"access_token":"yt","expires_in":60}`))
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	client := newOAuthClient(cfg, newTestGateway(server))

	_, err := client.RefreshAccessToken(context.Background(), "youtube", "rt")
	require.NoError(t, err)
	assert.Equal(t, "google-client", gotClientID)

	cfg.YouTubeOAuth = &config.OAuthClientConfig{ClientID: "yt-client", ClientSecret: "yt-secret"}
	client = newOAuthClient(cfg, newTestGateway(server))

	_, err = client.RefreshAccessToken(context.Background(), "youtube", "rt")
	require.NoError(t, err)
	assert.Equal(t, "yt-client", gotClientID)
}

func TestOAuthClient_UserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/userinfo", r.URL.Path)
		assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"g-1","email":"owner@example.com","name":"Owner"}`))
	}))
	defer server.Close()

	client := newOAuthClient(newTestConfig(server.URL), newTestGateway(server))

	user, err := client.UserInfo(context.Background(), "at")
	require.NoError(t, err)
	assert.Equal(t, "g-1", user.ID)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "Owner", user.Name)
}

func TestOAuthClient_UserInfo_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newOAuthClient(newTestConfig(server.URL), newTestGateway(server))

	_, err := client.UserInfo(context.Background(), "at")
	assert.True(t, errors.Is(err, domainerrors.ErrUserInfoFailed))
}
