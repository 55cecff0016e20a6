package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"studio/internal/delivery/api/middleware"
	"studio/internal/domain/constants"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	mockSvc "studio/internal/mocks/service"
	mockUC "studio/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var syncAccountID = uuid.MustParse("6f1c2d84-93a5-4b8e-9d10-2c7e5f4a1b30")

type syncFixture struct {
	e        *echo.Echo
	syncUC   *mockUC.MockSyncUsecase
	verifier *mockSvc.MockSessionVerifier
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()

	syncUC := mockUC.NewMockSyncUsecase(t)
	verifier := mockSvc.NewMockSessionVerifier(t)

	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		Verifier: verifier,
		Config:   newTestConfig(),
	})
	h := NewSyncHandler(SyncHandlerParams{SyncUC: syncUC, AuthMiddleware: auth, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/v1/gmb/sync", h.Trigger)

	return &syncFixture{e: e, syncUC: syncUC, verifier: verifier}
}

func (f *syncFixture) do(t *testing.T, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := newJSONRequest(http.MethodPost, "/api/v1/gmb/sync", body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func TestSyncHandler_RejectsBeforeEngine(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		headers    map[string]string
		setup      func(f *syncFixture)
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid json",
			body:       `{"accountId":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_json",
		},
		{
			name:       "missing account id",
			body:       `{"syncType":"full"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "missing_account_id",
		},
		{
			name:       "missing bearer",
			body:       `{"accountId":"` + syncAccountID.String() + `"}`,
			wantStatus: http.StatusUnauthorized,
			wantError:  "missing_bearer_token",
		},
		{
			name:       "wrong internal secret falls back to bearer",
			body:       `{"accountId":"` + syncAccountID.String() + `"}`,
			headers:    map[string]string{constants.HeaderInternalRun: "nope"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "missing_bearer_token",
		},
		{
			name:    "invalid session",
			body:    `{"accountId":"` + syncAccountID.String() + `"}`,
			headers: map[string]string{"Authorization": "Bearer expired"},
			setup: func(f *syncFixture) {
				f.verifier.EXPECT().VerifySession("expired").Return(uuid.Nil, assert.AnError).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid_session",
		},
		{
			name:       "account id not a uuid",
			body:       `{"accountId":"acc-1"}`,
			headers:    map[string]string{constants.HeaderInternalRun: testTriggerSecret},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_account_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := f.do(t, tt.body, tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["ok"])
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, body, "took_ms")
		})
	}
}

func TestSyncHandler_InternalRun(t *testing.T) {
	f := newSyncFixture(t)

	f.syncUC.EXPECT().
		Sync(mock.Anything, entity.ServiceScoped(), syncAccountID, entity.SyncTypeIncremental).
		Return(&entity.SyncResult{
			AccountID: syncAccountID,
			SyncType:  entity.SyncTypeIncremental,
			Mode:      entity.ModeInternal,
			Counts:    entity.SyncCounts{Locations: 3, Reviews: 12, Media: 4},
			TookMs:    812,
		}, nil).Once()

	rec := f.do(t, `{"accountId":"`+syncAccountID.String()+`","syncType":"incremental"}`,
		map[string]string{constants.HeaderInternalRun: testTriggerSecret})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "internal", body["mode"])
	assert.Equal(t, syncAccountID.String(), body["accountId"])
	assert.Equal(t, "incremental", body["syncType"])
	assert.Equal(t, map[string]any{"locations": 3.0, "reviews": 12.0, "media": 4.0}, body["counts"])
	assert.EqualValues(t, 812, body["took_ms"])
}

func TestSyncHandler_ExternalRunDefaultsToFull(t *testing.T) {
	f := newSyncFixture(t)
	userID := uuid.New()

	f.verifier.EXPECT().VerifySession("session").Return(userID, nil).Once()
	f.syncUC.EXPECT().
		Sync(mock.Anything, entity.UserScoped(userID), syncAccountID, entity.SyncTypeFull).
		Return(&entity.SyncResult{AccountID: syncAccountID, SyncType: entity.SyncTypeFull, Mode: entity.ModeExternal}, nil).Once()

	rec := f.do(t, `{"accountId":"`+syncAccountID.String()+`","syncType":"weekly"}`,
		map[string]string{"Authorization": "Bearer session"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "external", body["mode"])
	assert.Equal(t, "full", body["syncType"])
}

func TestSyncHandler_EngineErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantMessage any
	}{
		{
			name:        "reconnect required",
			err:         domainerrors.ErrReconnectRequired.WithDetails("Token has been expired or revoked."),
			wantStatus:  http.StatusUnauthorized,
			wantError:   "invalid_grant",
			wantMessage: "reconnect_required",
		},
		{
			name:       "upstream api error",
			err:        domainerrors.ErrLocationsAPI,
			wantStatus: http.StatusBadGateway,
			wantError:  "locations_api_error",
		},
		{
			name:       "network",
			err:        domainerrors.ErrNetwork,
			wantStatus: http.StatusGatewayTimeout,
			wantError:  "network_error",
		},
		{
			name:       "not found",
			err:        domainerrors.ErrAccountNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "account_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t)

			f.syncUC.EXPECT().
				Sync(mock.Anything, entity.ServiceScoped(), syncAccountID, entity.SyncTypeFull).
				Return(&entity.SyncResult{
					AccountID: syncAccountID,
					SyncType:  entity.SyncTypeFull,
					Mode:      entity.ModeInternal,
					TookMs:    45,
				}, tt.err).Once()

			rec := f.do(t, `{"accountId":"`+syncAccountID.String()+`"}`,
				map[string]string{constants.HeaderInternalRun: testTriggerSecret})

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["ok"])
			assert.Equal(t, tt.wantError, body["error"])
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, "internal", body["mode"])
			assert.Equal(t, syncAccountID.String(), body["accountId"])
			assert.Equal(t, "full", body["syncType"])
			assert.EqualValues(t, 45, body["took_ms"])
		})
	}
}
