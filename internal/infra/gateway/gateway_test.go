package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "studio/internal/domain/errors"
	"studio/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGateway(client *http.Client, maxRetries int) (*Gateway, *[]time.Duration) {
	g := New(client, Options{
		Timeout:    time.Second,
		MaxRetries: maxRetries,
		BaseDelay:  300 * time.Millisecond,
	}, nil, newDiscardLogger())

	var delays []time.Duration
	g.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)

		return nil
	}

	return g, &delays
}

func TestRetryDecision(t *testing.T) {
	tests := []struct {
		name       string
		attempt    int
		maxRetries int
		wantRetry  bool
		wantDelay  time.Duration
	}{
		{name: "first failure", attempt: 1, maxRetries: 2, wantRetry: true, wantDelay: 300 * time.Millisecond},
		{name: "second failure", attempt: 2, maxRetries: 2, wantRetry: true, wantDelay: 600 * time.Millisecond},
		{name: "budget exhausted", attempt: 3, maxRetries: 2},
		{name: "retries disabled", attempt: 1, maxRetries: 0},
		{name: "invalid attempt", attempt: 0, maxRetries: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retry, delay := RetryDecision(tt.attempt, tt.maxRetries, 300*time.Millisecond)
			assert.Equal(t, tt.wantRetry, retry)
			assert.Equal(t, tt.wantDelay, delay)
		})
	}
}

func TestGateway_RetriesServerErrorsThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	g, delays := newTestGateway(server.Client(), 2)

	resp, err := g.Do(context.Background(), &Request{
		Name:   "locations",
		Method: http.MethodGet,
		URL:    server.URL,
		Header: http.Header{"Authorization": []string{"Bearer tok"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.EqualValues(t, 3, calls.Load())
	assert.Equal(t, []time.Duration{300 * time.Millisecond, 600 * time.Millisecond}, *delays)
}

func TestGateway_ReturnsLastServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	g, _ := newTestGateway(server.Client(), 2)

	resp, err := g.Do(context.Background(), &Request{Name: "reviews", Method: http.MethodGet, URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.EqualValues(t, 3, calls.Load())
}

func TestGateway_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	g, delays := newTestGateway(server.Client(), 2)

	resp, err := g.Do(context.Background(), &Request{Name: "media", Method: http.MethodGet, URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.EqualValues(t, 1, calls.Load())
	assert.Empty(t, *delays)
}

type failingTransport struct {
	calls atomic.Int32
}

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	f.calls.Add(1)

	return nil, errors.New("connection refused")
}

func TestGateway_NetworkFailureBecomesNetworkError(t *testing.T) {
	transport := &failingTransport{}
	g, delays := newTestGateway(&http.Client{Transport: transport}, 2)

	resp, err := g.Do(context.Background(), &Request{Name: "accounts", Method: http.MethodGet, URL: "http://upstream.invalid"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	assert.EqualValues(t, 3, transport.calls.Load())
	assert.Len(t, *delays, 2)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusGatewayTimeout, appErr.HTTPCode())
}

func TestGateway_StopsWhenContextCancelled(t *testing.T) {
	transport := &failingTransport{}
	g, _ := newTestGateway(&http.Client{Transport: transport}, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Do(ctx, &Request{Name: "accounts", Method: http.MethodGet, URL: "http://upstream.invalid"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	assert.EqualValues(t, 1, transport.calls.Load())
}

func TestGateway_SendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.JSONEq(t, `{"comment":"thanks"}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	g, _ := newTestGateway(server.Client(), 0)

	resp, err := g.Do(context.Background(), &Request{
		Name:   "reply",
		Method: http.MethodPut,
		URL:    server.URL,
		Body:   []byte(`{"comment":"thanks"}`),
	})
	require.NoError(t, err)
	assert.True(t, resp.OK())
}
