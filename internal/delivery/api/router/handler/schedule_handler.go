package handler

import (
	"net/http"

	"studio/internal/delivery/api/response"
	deliverycontext "studio/internal/delivery/context"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// ScheduleHandler fans scheduled syncs out to the sync worker.
type ScheduleHandler struct {
	accountUC usecase.AccountUsecase
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{accountUC: params.AccountUC}
}

// ScheduleRequest is the optional schedule body.
type ScheduleRequest struct {
	SyncType string `json:"syncType"`
}

// ScheduleResponse reports how many sync events were published.
type ScheduleResponse struct {
	Queued   int             `json:"queued"`
	SyncType entity.SyncType `json:"syncType"`
}

// Schedule publishes one sync event per active account.
func (h *ScheduleHandler) Schedule(c echo.Context) error {
	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidJSON
	}

	syncType := entity.ParseSyncType(req.SyncType)
	queued, err := h.accountUC.ScheduleSyncs(c.Request().Context(), syncType, deliverycontext.GetRequestID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, ScheduleResponse{Queued: queued, SyncType: syncType})
}
