package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"studio/config"
	"studio/internal/delivery"
	apimiddleware "studio/internal/delivery/api/middleware"
	"studio/internal/delivery/middleware"
	"studio/internal/delivery/worker/handler"
	"studio/internal/domain/lifecycle"
	"studio/internal/errors"
	"studio/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Pub/Sub caps push payloads at 10MB; sync events are a few hundred bytes.
const maxPushBodySize = "1M"

type syncWorkerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Recorder    metrics.Recorder
	Registry    *prometheus.Registry
	PushHandler *handler.PushHandler
}

// NewServer creates the sync worker HTTP server receiving Pub/Sub pushes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "sync_worker"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, params.Cfg).Handle)
	e.Use(echomiddleware.BodyLimit(maxPushBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(metrics.NewHandler(params.Registry)))
	}

	// One message per account sync. The status code is the ack: 2xx drops, 503 redelivers.
	e.POST("/push", params.PushHandler.HandlePush, apimiddleware.NewMetricsMiddleware(params.Recorder).Handle)

	srv := &syncWorkerServer{
		cfg:    params.Cfg,
		logger: logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *syncWorkerServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting sync worker", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *syncWorkerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Draining sync worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
