package response

import (
	"net/http"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/errors"

	"github.com/labstack/echo/v4"
)

// SyncSuccessBody is the body of a successful sync trigger.
type SyncSuccessBody struct {
	OK        bool              `json:"ok"`
	Mode      string            `json:"mode"`
	AccountID string            `json:"accountId"`
	SyncType  entity.SyncType   `json:"syncType"`
	Counts    entity.SyncCounts `json:"counts"`
	TookMs    int64             `json:"took_ms"`
}

// SyncErrorBody is the body of a failed sync trigger. Message is only set for invalid_grant;
// the remaining fields only once the request reached the sync engine.
type SyncErrorBody struct {
	OK        bool            `json:"ok"`
	Error     string          `json:"error"`
	Message   string          `json:"message,omitempty"`
	Mode      string          `json:"mode,omitempty"`
	AccountID string          `json:"accountId,omitempty"`
	SyncType  entity.SyncType `json:"syncType,omitempty"`
	TookMs    *int64          `json:"took_ms,omitempty"`
}

// SyncSuccess writes the 200 body for a finished sync.
func SyncSuccess(c echo.Context, result *entity.SyncResult) error {
	return c.JSON(http.StatusOK, SyncSuccessBody{
		OK:        true,
		Mode:      result.Mode,
		AccountID: result.AccountID.String(),
		SyncType:  result.SyncType,
		Counts:    result.Counts,
		TookMs:    result.TookMs,
	})
}

// SyncError writes {ok:false, error:<code>} with the status of err. result may be nil.
func SyncError(c echo.Context, err error, result *entity.SyncResult) error {
	appErr, ok := domainerrors.AsAppError(err)
	if !ok {
		appErr = domainerrors.ErrSyncFailed
	}

	body := SyncErrorBody{Error: appErr.ErrorCode()}
	if errors.Is(appErr, domainerrors.ErrReconnectRequired) {
		body.Message = appErr.Message()
	}
	if result != nil {
		took := result.TookMs
		body.Mode = result.Mode
		body.AccountID = result.AccountID.String()
		body.SyncType = result.SyncType
		body.TookMs = &took
	}

	return c.JSON(appErr.HTTPCode(), body)
}
