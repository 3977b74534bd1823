package handler

import (
	"net/http"
	"testing"
	"time"

	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/submission"
	mockUC "safemap/internal/mocks/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubmissionTestHandler(t *testing.T) (*SubmissionHandler, *mockUC.MockSubmissionUsecase) {
	t.Helper()

	submissionUC := mockUC.NewMockSubmissionUsecase(t)

	return NewSubmissionHandler(SubmissionHandlerParams{SubmissionUC: submissionUC, Logger: testLogger()}), submissionUC
}

func TestSubmissionHandler_SubmitPin_Guest(t *testing.T) {
	h, submissionUC := newSubmissionTestHandler(t)
	body := `{"city_id":1,"type":"scam","title":"Gem shop","summary":"Steered to a gem shop","guest_name":"Ana",
		"location":{"type":"Point","coordinates":[100.5,13.75]}}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/submissions/pins", body)

	submissionUC.EXPECT().
		SubmitPin(mock.Anything, (*entity.Identity)(nil), mock.MatchedBy(func(in *submission.PinInput) bool {
			return in.CityID == 1 && in.GuestName == "Ana" && in.Location != nil && in.Location.Type == "Point"
		})).
		Return(&entity.Submission{
			ID:        31,
			CityID:    1,
			Kind:      entity.SubmissionKindPin,
			GuestName: "Ana",
			Title:     "Gem shop",
			PinType:   entity.PinTypeScam,
			Geometry:  "SRID=4326;POINT(100.5 13.75)",
			Status:    entity.SubmissionStatusPending,
			CreatedAt: time.Now(),
		}, nil)

	require.NoError(t, h.SubmitPin(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	got := decodeData[SubmissionResponse](t, rec)
	assert.Equal(t, int64(31), got.ID)
	assert.Equal(t, "pending", got.Status)
	assert.Nil(t, got.SubmitterID)
	require.NotNil(t, got.Geometry)
	assert.Equal(t, orb.Point{100.5, 13.75}, got.Geometry.Coordinates)
	assert.False(t, got.GeometryInvalid)
}

func TestSubmissionHandler_SubmitTip_PassesIdentity(t *testing.T) {
	h, submissionUC := newSubmissionTestHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/submissions/tips",
		`{"city_id":2,"title":"Carry small notes","summary":"Vendors claim to have no change","category":"general"}`)
	withIdentity(c, "user-7", entity.RoleUser)

	submissionUC.EXPECT().
		SubmitTip(mock.Anything, &entity.Identity{UserID: "user-7", Roles: entity.Roles{entity.RoleUser}}, mock.Anything).
		Return(&entity.Submission{ID: 4, Kind: entity.SubmissionKindTip, Status: entity.SubmissionStatusPending}, nil)

	require.NoError(t, h.SubmitTip(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubmissionHandler_SubmitZone_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"anonymous", domainerrors.ErrAuthenticationRequired, http.StatusUnauthorized, "AUTHENTICATION_REQUIRED"},
		{"open ring", domainerrors.ErrInvalidRing.WithDetails("ring is not closed"), http.StatusBadRequest, "INVALID_RING"},
		{"unknown city", domainerrors.ErrCityNotFound, http.StatusNotFound, "CITY_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, submissionUC := newSubmissionTestHandler(t)
			c, rec := newTestContext(http.MethodPost, "/api/v1/submissions/zones",
				`{"city_id":2,"label":"Underpass","level":"avoid","reason_short":"Bag snatching"}`)

			submissionUC.EXPECT().SubmitZone(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			require.NoError(t, h.SubmitZone(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestSubmissionHandler_MalformedBody(t *testing.T) {
	h, submissionUC := newSubmissionTestHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/submissions/pins", `{"city_id":"one"`)

	require.NoError(t, h.SubmitPin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	submissionUC.AssertNotCalled(t, "SubmitPin", mock.Anything, mock.Anything, mock.Anything)
}
