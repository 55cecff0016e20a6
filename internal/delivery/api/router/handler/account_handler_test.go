package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	mockUC "studio/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountHandler_Disconnect(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	tests := []struct {
		name       string
		path       string
		setup      func(uc *mockUC.MockAccountUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "disconnected",
			path: "/api/v1/gmb/accounts/" + accountID.String() + "/disconnect",
			setup: func(uc *mockUC.MockAccountUsecase) {
				uc.EXPECT().Disconnect(mock.Anything, entity.UserScoped(userID), accountID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "other owner",
			path: "/api/v1/gmb/accounts/" + accountID.String() + "/disconnect",
			setup: func(uc *mockUC.MockAccountUsecase) {
				uc.EXPECT().Disconnect(mock.Anything, entity.UserScoped(userID), accountID).
					Return(domainerrors.ErrAccountForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
		},
		{
			name: "unknown account",
			path: "/api/v1/gmb/accounts/" + accountID.String() + "/disconnect",
			setup: func(uc *mockUC.MockAccountUsecase) {
				uc.EXPECT().Disconnect(mock.Anything, entity.UserScoped(userID), accountID).
					Return(domainerrors.ErrAccountNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "account_not_found",
		},
		{
			name:       "bad id",
			path:       "/api/v1/gmb/accounts/acc-1/disconnect",
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_account_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountUC := mockUC.NewMockAccountUsecase(t)
			if tt.setup != nil {
				tt.setup(accountUC)
			}

			h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC})
			e := newTestEcho()
			e.POST("/api/v1/gmb/accounts/:id/disconnect", h.Disconnect, newSessionAuth(t, userID).Authenticate)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer session")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.wantCode == "" {
				data := body["data"].(map[string]any)
				assert.Equal(t, accountID.String(), data["accountId"])
				assert.Equal(t, false, data["isActive"])

				return
			}
			assert.Equal(t, tt.wantCode, body["error"].(map[string]any)["code"])
		})
	}
}
