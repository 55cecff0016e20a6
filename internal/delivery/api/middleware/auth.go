package middleware

import (
	"crypto/subtle"
	"strings"

	"studio/config"
	"studio/internal/domain/constants"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyUserID = "user_id"
	contextKeyAccess = "access"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.SessionVerifier
	Config   *config.Config
}

// AuthMiddleware authenticates end users by session token and schedulers by the shared trigger secret.
type AuthMiddleware struct {
	verifier      service.SessionVerifier
	triggerSecret string
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:      params.Verifier,
		triggerSecret: params.Config.Sync.TriggerSecret,
	}
}

// Authenticate requires a valid bearer session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.verifyBearer(bearerToken(c))
		if err != nil {
			return err
		}
		setUser(c, userID)

		return next(c)
	}
}

// AuthenticateWithQuery accepts the session either as a bearer header or as ?token=,
// for browser navigations that cannot set headers.
func (m *AuthMiddleware) AuthenticateWithQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			token = strings.TrimSpace(c.QueryParam("token"))
		}

		userID, err := m.verifyBearer(token)
		if err != nil {
			return err
		}
		setUser(c, userID)

		return next(c)
	}
}

// SyncAccess admits either the internal trigger or a bearer session. A trigger header that
// does not match falls through to bearer auth.
func (m *AuthMiddleware) SyncAccess(c echo.Context) (entity.AccessContext, error) {
	if m.isInternalRun(c) {
		access := entity.ServiceScoped()
		c.Set(contextKeyAccess, access)

		return access, nil
	}

	userID, err := m.verifyBearer(bearerToken(c))
	if err != nil {
		return entity.AccessContext{}, err
	}
	setUser(c, userID)

	return entity.UserScoped(userID), nil
}

// RequireInternal only admits callers presenting the trigger secret.
func (m *AuthMiddleware) RequireInternal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.isInternalRun(c) {
			return domainerrors.ErrInvalidInternalSecret
		}
		c.Set(contextKeyAccess, entity.ServiceScoped())

		return next(c)
	}
}

func (m *AuthMiddleware) isInternalRun(c echo.Context) bool {
	header := c.Request().Header.Get(constants.HeaderInternalRun)
	if header == "" || m.triggerSecret == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(header), []byte(m.triggerSecret)) == 1
}

func (m *AuthMiddleware) verifyBearer(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, domainerrors.ErrMissingBearerToken
	}

	userID, err := m.verifier.VerifySession(token)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidSession
	}

	return userID, nil
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

func setUser(c echo.Context, userID uuid.UUID) {
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyAccess, entity.UserScoped(userID))
}

// GetUserID extracts the authenticated user ID from context
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetAccess returns the access context established by the auth middleware.
func GetAccess(c echo.Context) (entity.AccessContext, bool) {
	access, ok := c.Get(contextKeyAccess).(entity.AccessContext)

	return access, ok
}
