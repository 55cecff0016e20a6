package handler

import (
	"log/slog"
	"strings"

	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/response"
	deliverycontext "studio/internal/delivery/context"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC         usecase.SyncUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// SyncHandler serves the sync trigger.
type SyncHandler struct {
	syncUC usecase.SyncUsecase
	auth   *middleware.AuthMiddleware
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC: params.SyncUC,
		auth:   params.AuthMiddleware,
		logger: params.Logger,
	}
}

// SyncRequest is the sync trigger body. Any syncType other than "incremental" means full.
type SyncRequest struct {
	AccountID string `json:"accountId"`
	SyncType  string `json:"syncType"`
}

// Trigger runs one sync pass for the requested account.
func (h *SyncHandler) Trigger(c echo.Context) error {
	var req SyncRequest
	if err := c.Bind(&req); err != nil {
		return response.SyncError(c, domainerrors.ErrInvalidJSON, nil)
	}

	rawID := strings.TrimSpace(req.AccountID)
	if rawID == "" {
		return response.SyncError(c, domainerrors.ErrMissingAccountID, nil)
	}

	access, err := h.auth.SyncAccess(c)
	if err != nil {
		return response.SyncError(c, err, nil)
	}

	accountID, err := uuid.Parse(rawID)
	if err != nil {
		return response.SyncError(c, domainerrors.ErrInvalidAccountID, nil)
	}

	ctx := c.Request().Context()
	result, err := h.syncUC.Sync(ctx, access, accountID, entity.ParseSyncType(req.SyncType))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Sync failed",
			slog.String("account_id", accountID.String()),
			slog.String("mode", access.Mode()),
			slog.Any("error", err),
		)

		return response.SyncError(c, err, result)
	}

	return response.SyncSuccess(c, result)
}
