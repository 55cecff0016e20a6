package handler

import (
	"net/http"

	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/response"
	"studio/internal/delivery/api/validator"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler holds dependencies for review handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// ReplyRequest represents the request body for replying to a review
type ReplyRequest struct {
	ReplyText string `json:"replyText" validate:"required,max=4096"`
}

// ReplyResponse echoes the stored reply.
type ReplyResponse struct {
	ReviewID  uuid.UUID `json:"reviewId"`
	ReplyText string    `json:"replyText"`
	HasReply  bool      `json:"hasReply"`
}

// Reply posts an owner reply to a synced review.
func (h *ReviewHandler) Reply(c echo.Context) error {
	access, ok := middleware.GetAccess(c)
	if !ok {
		return domainerrors.ErrMissingBearerToken
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrReviewNotFound
	}

	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidJSON
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	review, err := h.reviewUC.Reply(c.Request().Context(), access, reviewID, req.ReplyText)
	if err != nil {
		return err
	}

	resp := ReplyResponse{ReviewID: review.ID, HasReply: review.HasReply}
	if review.ReplyText != nil {
		resp.ReplyText = *review.ReplyText
	}

	return response.Success(c, http.StatusOK, resp)
}
