package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"studio/config"
	"studio/internal/delivery/api/middleware"
	deliverycontext "studio/internal/delivery/context"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const callbackFallbackMessage = "Failed to connect Google account"

// ConnectHandlerParams holds dependencies for ConnectHandler, injected by Fx.
type ConnectHandlerParams struct {
	fx.In

	ConnectUC usecase.ConnectUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ConnectHandler serves the Google account connection flow.
type ConnectHandler struct {
	connectUC  usecase.ConnectUsecase
	successURL string
	errorURL   string
	logger     *slog.Logger
}

// NewConnectHandler is the constructor for ConnectHandler
func NewConnectHandler(params ConnectHandlerParams) *ConnectHandler {
	return &ConnectHandler{
		connectUC:  params.ConnectUC,
		successURL: params.Config.Frontend.SuccessURL,
		errorURL:   params.Config.Frontend.ErrorURL,
		logger:     params.Logger,
	}
}

// AuthURLResponse carries the consent URL under both names used by clients.
type AuthURLResponse struct {
	AuthURL string `json:"authUrl"`
	URL     string `json:"url"`
}

// CreateAuthURL stores a fresh state for the caller and returns the consent URL.
func (h *ConnectHandler) CreateAuthURL(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingBearerToken
	}

	authURL, err := h.connectUC.CreateAuthURL(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AuthURLResponse{AuthURL: authURL, URL: authURL})
}

// Callback completes the OAuth flow and redirects the browser to the frontend.
func (h *ConnectHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if denied := strings.TrimSpace(c.QueryParam("error")); denied != "" {
		logger.Info("OAuth consent denied", slog.String("reason", denied))

		return c.Redirect(http.StatusFound, h.errorRedirect(denied))
	}

	result, err := h.connectUC.HandleCallback(ctx, c.QueryParam("code"), c.QueryParam("state"))
	if err != nil {
		logger.Warn("OAuth callback failed", slog.Any("error", err))

		message := callbackFallbackMessage
		if appErr, ok := domainerrors.AsAppError(err); ok {
			message = appErr.Message()
		}

		return c.Redirect(http.StatusFound, h.errorRedirect(message))
	}

	logger.Info("Google account connected",
		slog.String("user_id", result.UserID.String()),
		slog.Int("accounts", result.Accounts),
		slog.Int("locations", result.Locations),
	)

	return c.Redirect(http.StatusFound, h.successURL+"#success=true")
}

func (h *ConnectHandler) errorRedirect(message string) string {
	return h.errorURL + "#error=" + url.QueryEscape(message)
}
