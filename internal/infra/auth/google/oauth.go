package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studio/config"
	"studio/internal/domain/constants"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/infra/gateway"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	defaultTokenLifetime = time.Hour
)

// connectScopes are requested on every consent screen.
//
//nolint:gochecknoglobals
var connectScopes = []string{
	constants.ScopeBusinessManage,
	constants.ScopeUserInfoEmail,
	constants.ScopeUserProfile,
}

// OAuthClient handles the Google OAuth 2.0 web-server flow
type OAuthClient struct {
	google      *config.OAuthClientConfig
	youtube     *config.OAuthClientConfig
	authURL     string
	tokenURL    string
	userInfoURL string
	gw          *gateway.Gateway
	now         func() time.Time
}

// NewOAuthClient creates the Google OAuth client
func NewOAuthClient(cfg *config.Config, gw *gateway.Gateway) service.GoogleOAuthClient {
	return newOAuthClient(cfg, gw)
}

func newOAuthClient(cfg *config.Config, gw *gateway.Gateway) *OAuthClient {
	api := cfg.GoogleAPI
	if api == nil {
		api = &config.GoogleAPIConfig{}
	}

	return &OAuthClient{
		google:      cfg.GoogleOAuth,
		youtube:     cfg.YouTubeOAuth,
		authURL:     orDefault(api.AuthURL, googleOAuthURL),
		tokenURL:    orDefault(api.TokenURL, googleTokenURL),
		userInfoURL: orDefault(api.UserInfoURL, googleUserInfoURL),
		gw:          gw,
		now:         time.Now,
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}

// AuthorizationURL builds the consent URL requesting offline access so Google issues a refresh token.
func (c *OAuthClient) AuthorizationURL(state string) string {
	params := url.Values{}
	if c.google != nil {
		params.Set("client_id", c.google.ClientID)
		params.Set("redirect_uri", c.google.RedirectURI)
	}
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(connectScopes, " "))
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("include_granted_scopes", "true")
	params.Set("state", state)

	return c.authURL + "?" + params.Encode()
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}

func (r *tokenResponse) grant() *entity.TokenGrant {
	lifetime := time.Duration(r.ExpiresIn) * time.Second
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}

	return &entity.TokenGrant{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresIn:    lifetime,
		Scope:        r.Scope,
		TokenType:    r.TokenType,
	}
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeCode exchanges an authorization code for tokens
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (*entity.TokenGrant, error) {
	if !c.google.Configured() {
		return nil, domainerrors.ErrOAuthMissing
	}

	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", c.google.ClientID)
	form.Set("client_secret", c.google.ClientSecret)
	form.Set("redirect_uri", c.google.RedirectURI)
	form.Set("grant_type", "authorization_code")

	resp, err := c.postForm(ctx, "oauth.exchange", form)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, domainerrors.ErrTokenExchangeFailed.WithDetails(describeTokenError(resp))
	}

	var body tokenResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, domainerrors.ErrTokenExchangeFailed.WithDetails("decode: " + err.Error())
	}
	if body.AccessToken == "" {
		return nil, domainerrors.ErrTokenExchangeFailed.WithDetails("no access_token in response")
	}

	return body.grant(), nil
}

// RefreshAccessToken refreshes with the client registered for provider.
// youtube uses its own client when configured and falls back to the Google client.
func (c *OAuthClient) RefreshAccessToken(ctx context.Context, provider, refreshToken string) (*entity.TokenGrant, error) {
	creds := c.clientFor(provider)
	if !creds.Configured() {
		return nil, domainerrors.ErrOAuthMissing
	}

	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("refresh_token", refreshToken)
	form.Set("grant_type", "refresh_token")

	resp, err := c.postForm(ctx, "oauth.refresh", form)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		var body tokenErrorResponse
		if json.Unmarshal(resp.Body, &body) == nil && body.Error == "invalid_grant" {
			return nil, domainerrors.ErrReconnectRequired.WithDetails(body.ErrorDescription)
		}

		return nil, domainerrors.ErrTokenRefreshFailed.WithDetails(describeTokenError(resp))
	}

	var body tokenResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, domainerrors.ErrTokenRefreshFailed.WithDetails("decode: " + err.Error())
	}
	if body.AccessToken == "" {
		return nil, domainerrors.ErrTokenRefreshFailed.WithDetails("no access_token in response")
	}

	return body.grant(), nil
}

func (c *OAuthClient) clientFor(provider string) *config.OAuthClientConfig {
	if provider == constants.ProviderYouTube && c.youtube.Configured() {
		return c.youtube
	}

	return c.google
}

// UserInfo retrieves the profile of the token owner
func (c *OAuthClient) UserInfo(ctx context.Context, accessToken string) (*service.GoogleUser, error) {
	resp, err := c.gw.Do(ctx, &gateway.Request{
		Name:   "oauth.userinfo",
		Method: http.MethodGet,
		URL:    c.userInfoURL,
		Header: http.Header{"Authorization": []string{"Bearer " + accessToken}},
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, domainerrors.ErrUserInfoFailed.WithDetails(describeTokenError(resp))
	}

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUserInfoFailed, err.Error())
	}

	return &service.GoogleUser{ID: body.ID, Email: body.Email, Name: body.Name}, nil
}

func (c *OAuthClient) postForm(ctx context.Context, name string, form url.Values) (*gateway.Response, error) {
	return c.gw.Do(ctx, &gateway.Request{
		Name:   name,
		Method: http.MethodPost,
		URL:    c.tokenURL,
		Header: http.Header{"Content-Type": []string{"application/x-www-form-urlencoded"}},
		Body:   []byte(form.Encode()),
	})
}

func describeTokenError(resp *gateway.Response) string {
	var body tokenErrorResponse
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Error != "" {
		if body.ErrorDescription != "" {
			return body.Error + ": " + body.ErrorDescription
		}

		return body.Error
	}

	return http.StatusText(resp.StatusCode)
}
