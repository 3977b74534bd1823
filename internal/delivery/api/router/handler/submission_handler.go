package handler

import (
	"log/slog"
	"net/http"

	"safemap/internal/delivery/api/response"
	deliverycontext "safemap/internal/delivery/context"
	"safemap/internal/domain/submission"
	"safemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubmissionHandlerParams holds dependencies for SubmissionHandler, injected by Fx.
type SubmissionHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	Logger       *slog.Logger
}

// SubmissionHandler accepts tips, pins and zones into the moderation queue.
// Field rules are enforced by the submission validator inside the usecase.
type SubmissionHandler struct {
	submissionUC usecase.SubmissionUsecase
	logger       *slog.Logger
}

// NewSubmissionHandler is the constructor for SubmissionHandler
func NewSubmissionHandler(params SubmissionHandlerParams) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUC: params.SubmissionUC,
		logger:       params.Logger,
	}
}

// SubmitTip handles tip submissions. Requires a signed-in caller.
func (h *SubmissionHandler) SubmitTip(c echo.Context) error {
	var req submission.TipInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tip input")
	}

	sub, err := h.submissionUC.SubmitTip(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSubmissionResponse(sub))
}

// SubmitPin handles pin submissions. Guests may submit with a display name.
func (h *SubmissionHandler) SubmitPin(c echo.Context) error {
	var req submission.PinInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pin input")
	}

	sub, err := h.submissionUC.SubmitPin(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSubmissionResponse(sub))
}

// SubmitZone handles zone submissions. Requires a signed-in caller.
func (h *SubmissionHandler) SubmitZone(c echo.Context) error {
	var req submission.ZoneInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid zone input")
	}

	sub, err := h.submissionUC.SubmitZone(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSubmissionResponse(sub))
}
