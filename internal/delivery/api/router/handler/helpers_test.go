package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio/config"
	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/validator"
	mockSvc "studio/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testTriggerSecret = "trigger-secret"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Sync:     &config.SyncConfig{TriggerSecret: testTriggerSecret},
		Frontend: &config.FrontendConfig{SuccessURL: "https://app.example/gmb", ErrorURL: "https://app.example/gmb/error"},
	}
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

// newSessionAuth returns an auth middleware accepting "Bearer session" as userID.
func newSessionAuth(t *testing.T, userID uuid.UUID) *middleware.AuthMiddleware {
	t.Helper()

	verifier := mockSvc.NewMockSessionVerifier(t)
	verifier.EXPECT().VerifySession("session").Return(userID, nil).Maybe()

	return middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		Verifier: verifier,
		Config:   newTestConfig(),
	})
}
