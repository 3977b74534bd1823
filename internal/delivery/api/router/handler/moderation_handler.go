package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"safemap/internal/delivery/api/response"
	deliverycontext "safemap/internal/delivery/context"
	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/repository"
	"safemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	ModerationUC usecase.ModerationUsecase
	Logger       *slog.Logger
}

// ModerationHandler serves the guardian review queue
type ModerationHandler struct {
	submissionUC usecase.SubmissionUsecase
	moderationUC usecase.ModerationUsecase
	logger       *slog.Logger
}

// NewModerationHandler is the constructor for ModerationHandler
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{
		submissionUC: params.SubmissionUC,
		moderationUC: params.ModerationUC,
		logger:       params.Logger,
	}
}

// QueueQuery holds the moderation queue filter. Limits above the maximum are capped by the usecase.
type QueueQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
	CityID int64  `query:"city_id" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// ListQueue returns submissions of one kind, pending unless ?status= says otherwise
func (h *ModerationHandler) ListQueue(c echo.Context) error {
	kind, err := parseKind(c.Param("kind"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var query QueueQuery
	err = echo.QueryParamsBinder(c).
		String("status", &query.Status).
		Int64("city_id", &query.CityID).
		Int("limit", &query.Limit).
		Int("offset", &query.Offset).
		BindError()
	if err != nil {
		return response.BadRequestWithDetails(c, "INVALID_QUERY", "Invalid queue filter", bindingDetails(err))
	}

	query.Status = strings.ToLower(strings.TrimSpace(query.Status))
	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	filter := repository.SubmissionFilter{
		Kind:   kind,
		Status: entity.SubmissionStatus(query.Status),
		CityID: query.CityID,
		Limit:  query.Limit,
		Offset: query.Offset,
	}

	subs, err := h.submissionUC.ListSubmissions(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubmissionResponses(subs))
}

// GetSubmission returns one submission of the given kind
func (h *ModerationHandler) GetSubmission(c echo.Context) error {
	kind, id, err := parseKindAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sub, err := h.submissionUC.GetSubmission(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if sub.Kind != kind {
		return response.HandleAppError(c, domainerrors.ErrSubmissionNotFound)
	}

	return response.Success(c, http.StatusOK, toSubmissionResponse(sub))
}

// Approve publishes a pending submission
func (h *ModerationHandler) Approve(c echo.Context) error {
	kind, id, err := parseKindAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviewer := deliverycontext.GetIdentity(c)
	if reviewer == nil {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationRequired)
	}

	result, err := h.moderationUC.Approve(c.Request().Context(), kind, id, reviewer.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toModerationResponse(result.Submission, result.Published))
}

// Reject closes a pending submission without publishing it
func (h *ModerationHandler) Reject(c echo.Context) error {
	kind, id, err := parseKindAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviewer := deliverycontext.GetIdentity(c)
	if reviewer == nil {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationRequired)
	}

	sub, err := h.moderationUC.Reject(c.Request().Context(), kind, id, reviewer.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toModerationResponse(sub, nil))
}

// parseKind accepts "tip" or "tips" style path segments.
func parseKind(raw string) (entity.SubmissionKind, error) {
	kind := entity.SubmissionKind(strings.TrimSuffix(strings.ToLower(raw), "s"))
	if !kind.IsValid() {
		return "", domainerrors.ErrInvalidField.WithDetails("unknown submission kind: " + raw)
	}

	return kind, nil
}

func parseKindAndID(c echo.Context) (entity.SubmissionKind, int64, error) {
	kind, err := parseKind(c.Param("kind"))
	if err != nil {
		return "", 0, err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return "", 0, domainerrors.ErrInvalidField.WithDetails("invalid submission id: " + c.Param("id"))
	}

	return kind, id, nil
}
