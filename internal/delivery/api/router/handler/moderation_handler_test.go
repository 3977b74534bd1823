package handler

import (
	"net/http"
	"testing"

	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/repository"
	mockUC "safemap/internal/mocks/usecase"
	"safemap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moderationTestHandler struct {
	handler      *ModerationHandler
	submissionUC *mockUC.MockSubmissionUsecase
	moderationUC *mockUC.MockModerationUsecase
}

func newModerationTestHandler(t *testing.T) moderationTestHandler {
	t.Helper()

	submissionUC := mockUC.NewMockSubmissionUsecase(t)
	moderationUC := mockUC.NewMockModerationUsecase(t)

	return moderationTestHandler{
		handler: NewModerationHandler(ModerationHandlerParams{
			SubmissionUC: submissionUC,
			ModerationUC: moderationUC,
			Logger:       testLogger(),
		}),
		submissionUC: submissionUC,
		moderationUC: moderationUC,
	}
}

func TestModerationHandler_ListQueue(t *testing.T) {
	m := newModerationTestHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/moderation/zones?city_id=4&limit=20&status=Pending", "", "kind", "zones")

	m.submissionUC.EXPECT().
		ListSubmissions(mock.Anything, repository.SubmissionFilter{
			Kind:   entity.SubmissionKindZone,
			Status: entity.SubmissionStatusPending,
			CityID: 4,
			Limit:  20,
		}).
		Return([]*entity.Submission{
			{ID: 1, Kind: entity.SubmissionKindZone, Geometry: "POLYGON((0 0,1 0,1 1,0 0))"},
			{ID: 2, Kind: entity.SubmissionKindZone, Geometry: "POLYGON((0 0,1 0))"},
		}, nil)

	require.NoError(t, m.handler.ListQueue(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[[]*SubmissionResponse](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "Polygon", got[0].Geometry.Type)
	assert.Nil(t, got[1].Geometry)
	assert.True(t, got[1].GeometryInvalid)
}

func TestModerationHandler_ListQueue_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		kind    string
		wantErr string
	}{
		{"unknown kind", "/api/v1/moderation/rumors", "rumors", "INVALID_FIELD"},
		{"unknown status", "/api/v1/moderation/pins?status=archived", "pins", "VALIDATION_ERROR"},
		{"negative offset", "/api/v1/moderation/pins?offset=-1", "pins", "VALIDATION_ERROR"},
		{"non numeric limit", "/api/v1/moderation/pins?limit=ten", "pins", "INVALID_QUERY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModerationTestHandler(t)
			c, rec := newTestContext(http.MethodGet, tt.target, "", "kind", tt.kind)

			require.NoError(t, m.handler.ListQueue(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, decodeEnvelope(t, rec).Error.Code)
			m.submissionUC.AssertNotCalled(t, "ListSubmissions", mock.Anything, mock.Anything)
		})
	}
}

func TestModerationHandler_GetSubmission_KindMismatch(t *testing.T) {
	m := newModerationTestHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/moderation/pins/8", "", "kind", "pins", "id", "8")

	m.submissionUC.EXPECT().GetSubmission(mock.Anything, int64(8)).
		Return(&entity.Submission{ID: 8, Kind: entity.SubmissionKindTip}, nil)

	require.NoError(t, m.handler.GetSubmission(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SUBMISSION_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestModerationHandler_Approve(t *testing.T) {
	m := newModerationTestHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/moderation/pin/12/approve", "", "kind", "pin", "id", "12")
	withIdentity(c, "guardian-1", entity.RoleGuardian)

	pin := testPin()
	m.moderationUC.EXPECT().Approve(mock.Anything, entity.SubmissionKindPin, int64(12), "guardian-1").
		Return(&usecase.ModerationResult{
			Submission: &entity.Submission{ID: 12, Kind: entity.SubmissionKindPin, Status: entity.SubmissionStatusApproved},
			Published:  pin,
		}, nil)

	require.NoError(t, m.handler.Approve(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[ModerationResponse](t, rec)
	assert.Equal(t, "approved", got.Submission.Status)
	require.NotNil(t, got.Pin)
	assert.Equal(t, pin.ID, got.Pin.ID)
	assert.Nil(t, got.Zone)
}

func TestModerationHandler_Approve_Conflict(t *testing.T) {
	m := newModerationTestHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/moderation/zones/3/approve", "", "kind", "zones", "id", "3")
	withIdentity(c, "admin-1", entity.RoleAdmin)

	m.moderationUC.EXPECT().Approve(mock.Anything, entity.SubmissionKindZone, int64(3), "admin-1").
		Return(nil, domainerrors.ErrAlreadyReviewed)

	require.NoError(t, m.handler.Approve(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_REVIEWED", decodeEnvelope(t, rec).Error.Code)
}

func TestModerationHandler_Approve_CorruptGeometry(t *testing.T) {
	m := newModerationTestHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/moderation/zones/3/approve", "", "kind", "zones", "id", "3")
	withIdentity(c, "admin-1", entity.RoleAdmin)

	m.moderationUC.EXPECT().Approve(mock.Anything, entity.SubmissionKindZone, int64(3), "admin-1").
		Return(nil, domainerrors.ErrCorruptGeometry.WithDetails("polygon ring has 2 positions"))

	require.NoError(t, m.handler.Approve(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "CORRUPT_GEOMETRY", env.Error.Code)
	assert.Equal(t, "polygon ring has 2 positions", env.Error.Details)
}

func TestModerationHandler_Reject(t *testing.T) {
	m := newModerationTestHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/moderation/tips/6/reject", "", "kind", "tips", "id", "6")
	withIdentity(c, "guardian-2", entity.RoleGuardian)

	m.moderationUC.EXPECT().Reject(mock.Anything, entity.SubmissionKindTip, int64(6), "guardian-2").
		Return(&entity.Submission{ID: 6, Kind: entity.SubmissionKindTip, Status: entity.SubmissionStatusRejected}, nil)

	require.NoError(t, m.handler.Reject(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[ModerationResponse](t, rec)
	assert.Equal(t, "rejected", got.Submission.Status)
	assert.Nil(t, got.Pin)
	assert.Nil(t, got.Zone)
}

func TestModerationHandler_InvalidID(t *testing.T) {
	m := newModerationTestHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/moderation/pins/abc/reject", "", "kind", "pins", "id", "abc")
	withIdentity(c, "guardian-2", entity.RoleGuardian)

	require.NoError(t, m.handler.Reject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FIELD", decodeEnvelope(t, rec).Error.Code)
}
