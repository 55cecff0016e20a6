package handler

import (
	"net/http"
	"time"

	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/response"
	"studio/internal/delivery/api/validator"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	UserTokenUC usecase.UserTokenUsecase
}

// TokenHandler serves user-level token maintenance.
type TokenHandler struct {
	userTokenUC usecase.UserTokenUsecase
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{userTokenUC: params.UserTokenUC}
}

type refreshTokenPath struct {
	Provider string `param:"provider" validate:"required,oneof=google youtube"`
}

// RefreshTokenResponse reports whether a refresh happened and the current expiry.
type RefreshTokenResponse struct {
	Refreshed bool       `json:"refreshed"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Refresh refreshes the caller's provider token when it is close to expiry.
func (h *TokenHandler) Refresh(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingBearerToken
	}

	path := refreshTokenPath{Provider: c.Param("provider")}
	if err := c.Validate(&path); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	result, err := h.userTokenUC.RefreshIfNeeded(c.Request().Context(), userID, path.Provider)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, RefreshTokenResponse{
		Refreshed: result.Refreshed,
		ExpiresAt: result.ExpiresAt,
	})
}
