package businessprofile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"studio/config"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) service.BusinessProfileClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{GoogleAPI: &config.GoogleAPIConfig{
		AccountManagementURL:   server.URL + "/am",
		BusinessProfileURL:     server.URL + "/bp",
		BusinessInformationURL: server.URL + "/bi",
		MyBusinessURL:          server.URL + "/mb",
	}}
	gw := gateway.New(server.Client(), gateway.Options{Timeout: time.Second}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewClient(cfg, gw)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestListAccounts_FallsBackToSecondEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/am/v1/accounts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusForbidden, map[string]string{"error": "denied"})
	})
	mux.HandleFunc("/bp/v1/accounts", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"items": []map[string]string{{"name": "accounts/42", "accountName": "Cafe"}},
		})
	})

	accounts, err := newTestClient(t, mux).ListAccounts(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "accounts/42", accounts[0].Name)
	assert.Equal(t, "Cafe", accounts[0].AccountName)
}

func TestListAccounts_AllEndpointsFail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
	})

	_, err := newTestClient(t, mux).ListAccounts(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountsAPI))
}

func TestListAccounts_EmptyList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})

	accounts, err := newTestClient(t, mux).ListAccounts(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestListLocations_KeepsRawAndPaginates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bi/v1/accounts/42/locations", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, locationReadMask, q.Get("readMask"))
		assert.Equal(t, "100", q.Get("pageSize"))
		assert.Equal(t, "p2", q.Get("pageToken"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"locations": []map[string]any{{
				"name":  "locations/7",
				"title": "Cafe Downtown",
				"storefrontAddress": map[string]any{
					"addressLines": []string{"1 Main St"},
					"locality":     "Springfield",
				},
				"phoneNumbers": map[string]string{"primaryPhone": "+1 555"},
				"websiteUri":   "https://cafe.example",
				"categories":   map[string]any{"primaryCategory": map[string]string{"displayName": "Cafe"}},
			}},
			"nextPageToken": "p3",
		})
	})

	page, err := newTestClient(t, mux).ListLocations(context.Background(), "tok", "accounts/42", "p2")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	loc := page.Items[0]
	assert.Equal(t, "locations/7", loc.Name)
	assert.Equal(t, "Cafe Downtown", loc.Title)
	assert.Equal(t, "Springfield", loc.StorefrontAddress.Locality)
	assert.Equal(t, "+1 555", loc.PhoneNumbers.PrimaryPhone)
	assert.Equal(t, "Cafe", loc.Categories.PrimaryCategory.DisplayName)
	assert.Contains(t, string(loc.Raw), `"websiteUri"`)
	assert.Equal(t, "p3", page.NextPageToken)
}

func TestListLocations_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]string{"error": "PERMISSION_DENIED"})
	})

	_, err := newTestClient(t, mux).ListLocations(context.Background(), "tok", "accounts/42", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationsAPI))
	assert.Contains(t, err.Error(), "status 403")
}

func TestListReviews_PassesOrderBy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mb/v4/accounts/42/locations/7/reviews", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "updateTime desc", r.URL.Query().Get("orderBy"))
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"reviews": []map[string]any{{
				"name":        "accounts/42/locations/7/reviews/r1",
				"reviewId":    "r1",
				"reviewer":    map[string]string{"displayName": "Ann"},
				"starRating":  "FIVE",
				"comment":     "Great",
				"createTime":  "2024-01-02T03:04:05Z",
				"updateTime":  "2024-01-03T03:04:05Z",
				"reviewReply": map[string]string{"comment": "Thanks", "updateTime": "2024-01-04T00:00:00Z"},
			}},
		})
	})

	page, err := newTestClient(t, mux).ListReviews(context.Background(), "tok", "accounts/42/locations/7",
		service.ReviewListOptions{OrderBy: "updateTime desc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	review := page.Items[0]
	assert.Equal(t, "r1", review.ReviewID)
	assert.Equal(t, "Ann", review.Reviewer.DisplayName)
	assert.JSONEq(t, `"FIVE"`, string(review.StarRating))
	require.NotNil(t, review.ReviewReply)
	assert.Equal(t, "Thanks", review.ReviewReply.Comment)
	assert.Empty(t, page.NextPageToken)
}

func TestListMedia(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mb/v4/accounts/42/locations/7/media", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"mediaItems": []map[string]string{{
				"name":        "accounts/42/locations/7/media/m1",
				"mediaFormat": "PHOTO",
				"googleUrl":   "https://lh3.example/m1",
			}},
		})
	})

	page, err := newTestClient(t, mux).ListMedia(context.Background(), "tok", "accounts/42/locations/7", "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "PHOTO", page.Items[0].MediaFormat)
	assert.Equal(t, "https://lh3.example/m1", page.Items[0].GoogleURL)
}

func TestReplyToReview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mb/v4/accounts/42/locations/7/reviews/r1/reply", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Thank you!", body["comment"])
		writeJSON(t, w, http.StatusOK, map[string]string{"comment": "Thank you!", "updateTime": "2024-02-01T00:00:00Z"})
	})

	reply, err := newTestClient(t, mux).ReplyToReview(context.Background(), "tok", "accounts/42/locations/7/reviews/r1", "Thank you!")
	require.NoError(t, err)
	assert.Equal(t, "Thank you!", reply.Comment)
	assert.Equal(t, "2024-02-01T00:00:00Z", reply.UpdateTime)
}

func TestReplyToReview_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	})

	_, err := newTestClient(t, mux).ReplyToReview(context.Background(), "tok", "accounts/42/locations/7/reviews/r1", "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReplyAPI))
}

func TestNewClient_DefaultHosts(t *testing.T) {
	c, ok := NewClient(&config.Config{}, nil).(*client)
	require.True(t, ok)

	assert.Equal(t, []accountEndpoint{
		{name: "accounts.accountmanagement", url: "https://mybusinessaccountmanagement.googleapis.com/v1/accounts"},
		{name: "accounts.businessprofile", url: "https://businessprofile.googleapis.com/v1/accounts"},
	}, c.accountEndpoints)
	assert.Equal(t, "https://mybusinessbusinessinformation.googleapis.com", c.businessInformationURL)
	assert.Equal(t, "https://mybusiness.googleapis.com", c.myBusinessURL)
}

func TestAPIError_TruncatesOnRuneBoundary(t *testing.T) {
	err := apiError(domainerrors.ErrLocationsAPI, &gateway.Response{
		StatusCode: http.StatusBadGateway,
		Body:       []byte(strings.Repeat("é", 300)),
	})

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	details := strings.TrimPrefix(appErr.Details(), "status 502: ")
	assert.True(t, utf8.ValidString(details))
	assert.Equal(t, maxErrorBodyRunes, utf8.RuneCountInString(details))
}
