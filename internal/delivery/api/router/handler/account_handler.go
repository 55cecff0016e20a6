package handler

import (
	"net/http"

	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/response"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AccountHandler holds dependencies for account management handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{accountUC: params.AccountUC}
}

// Disconnect deactivates one of the caller's connected accounts.
func (h *AccountHandler) Disconnect(c echo.Context) error {
	access, ok := middleware.GetAccess(c)
	if !ok {
		return domainerrors.ErrMissingBearerToken
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidAccountID
	}

	if err := h.accountUC.Disconnect(c.Request().Context(), access, accountID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accountId": accountID,
		"isActive":  false,
	})
}
