// Package gateway performs outbound Google API calls with per-attempt timeouts and bounded retries.
package gateway

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"studio/config"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/errors"

	"go.uber.org/fx"
)

const maxResponseBytes = 16 << 20

// Request is one logical upstream call. Name labels metrics and logs.
type Request struct {
	Name   string
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Options tunes a Gateway.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// Gateway is shared by every Google client.
type Gateway struct {
	client  *http.Client
	opts    Options
	metrics service.SyncMetrics
	logger  *slog.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

// Params holds dependencies for the Gateway, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	Metrics service.SyncMetrics
	Logger  *slog.Logger
}

// NewGateway builds the gateway from sync configuration.
func NewGateway(params Params) *Gateway {
	cfg := params.Config.Sync

	return New(&http.Client{}, Options{
		Timeout:    cfg.RequestTimeout,
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.RetryBaseDelay,
	}, params.Metrics, params.Logger)
}

// New creates a Gateway around client. metrics may be nil.
func New(client *http.Client, opts Options, metrics service.SyncMetrics, logger *slog.Logger) *Gateway {
	return &Gateway{
		client:  client,
		opts:    opts,
		metrics: metrics,
		logger:  logger,
		sleep:   sleepContext,
	}
}

// Do sends req, retrying transport failures and 5xx responses.
// Non-5xx responses are returned as-is; a final 5xx is returned, not converted to an error.
// Exhausted transport failures become ErrNetwork.
func (g *Gateway) Do(ctx context.Context, req *Request) (*Response, error) {
	for attempt := 1; ; attempt++ {
		resp, err := g.attempt(ctx, req)
		g.observe(req.Name, resp)

		if err == nil && !Retryable(resp.StatusCode) {
			return resp, nil
		}

		retry, delay := RetryDecision(attempt, g.opts.MaxRetries, g.opts.BaseDelay)
		if ctx.Err() != nil {
			retry = false
		}

		if !retry {
			if err != nil {
				return nil, errors.Wrap(domainerrors.ErrNetwork.WithDetails(err.Error()), req.Name)
			}

			return resp, nil
		}

		g.logger.Warn("Retrying upstream request",
			slog.String("endpoint", req.Name),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.Any("error", err),
			slog.Int("status", statusOf(resp)),
		)

		if sleepErr := g.sleep(ctx, delay); sleepErr != nil {
			return nil, errors.Wrap(domainerrors.ErrNetwork.WithDetails(sleepErr.Error()), req.Name)
		}
	}
}

func (g *Gateway) attempt(ctx context.Context, req *Request) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, req.Method, req.URL, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}

func (g *Gateway) observe(name string, resp *Response) {
	if g.metrics == nil {
		return
	}
	g.metrics.ObserveGoogleRequest(name, statusOf(resp))
}

func statusOf(resp *Response) int {
	if resp == nil {
		return 0
	}

	return resp.StatusCode
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Module provides the FX module for the gateway
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGateway),
)
