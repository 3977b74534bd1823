package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/repository"
	"safemap/internal/domain/submission"
	"safemap/internal/errors"
	"safemap/internal/geo"
	mockRepo "safemap/internal/mocks/repository"
	"safemap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubmissionTestService(t *testing.T) (usecase.SubmissionUsecase, *mockRepo.MockSubmissionRepository, *mockRepo.MockCityRepository) {
	t.Helper()

	submissionRepo := mockRepo.NewMockSubmissionRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)

	srv := NewSubmissionService(SubmissionServiceParams{
		SubmissionRepo: submissionRepo,
		CityRepo:       cityRepo,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, submissionRepo, cityRepo
}

func pointJSON(coords string) *geo.GeoJSON {
	return &geo.GeoJSON{Type: "Point", Coordinates: json.RawMessage(coords)}
}

func TestSubmissionService_SubmitPin_Guest(t *testing.T) {
	srv, submissionRepo, cityRepo := newSubmissionTestService(t)
	ctx := context.Background()

	cityRepo.EXPECT().FindCityByID(ctx, int64(1)).Return(&entity.City{ID: 1, Slug: "bangkok"}, nil)
	submissionRepo.EXPECT().
		CreateSubmission(ctx, mock.MatchedBy(func(s *entity.Submission) bool {
			return s.Kind == entity.SubmissionKindPin &&
				s.Status == entity.SubmissionStatusPending &&
				s.SubmitterID == nil &&
				s.GuestName == "Ana" &&
				s.PinType == entity.PinTypeOvercharge &&
				s.Geometry == "SRID=4326;POINT(100.5 13.75)"
		})).
		Run(func(_ context.Context, s *entity.Submission) { s.ID = 101 }).
		Return(nil)

	sub, err := srv.SubmitPin(ctx, nil, &submission.PinInput{
		CityID:    1,
		Type:      " Overcharge ",
		Title:     "Airport taxi",
		Summary:   "Quoted triple the metered fare",
		GuestName: "Ana",
		Location:  pointJSON(`[100.5, 13.75]`),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(101), sub.ID)
	assert.True(t, sub.IsGuest())
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestSubmissionService_SubmitZone_Authenticated(t *testing.T) {
	srv, submissionRepo, cityRepo := newSubmissionTestService(t)
	ctx := context.Background()
	identity := &entity.Identity{UserID: "user-1", Roles: entity.Roles{entity.RoleUser}}

	cityRepo.EXPECT().FindCityByID(ctx, int64(2)).Return(&entity.City{ID: 2}, nil)
	submissionRepo.EXPECT().
		CreateSubmission(ctx, mock.MatchedBy(func(s *entity.Submission) bool {
			return s.Kind == entity.SubmissionKindZone &&
				s.SubmitterID != nil && *s.SubmitterID == "user-1" &&
				s.Level == entity.SafetyLevelAvoid &&
				s.Geometry == "POLYGON((0 0,1 0,1 1,0 0))"
		})).
		Return(nil)

	sub, err := srv.SubmitZone(ctx, identity, &submission.ZoneInput{
		CityID:      2,
		Label:       "Station underpass",
		Level:       "AVOID",
		ReasonShort: "Frequent bag snatching",
		Geom: &geo.GeoJSON{
			Type:        "Polygon",
			Coordinates: json.RawMessage(`[[[0,0],[1,0],[1,1],[0,0]]]`),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusPending, sub.Status)
	assert.Equal(t, "Station underpass", sub.Title)
}

func TestSubmissionService_SubmitTip_RequiresIdentity(t *testing.T) {
	srv, _, _ := newSubmissionTestService(t)

	_, err := srv.SubmitTip(context.Background(), nil, &submission.TipInput{
		CityID:   1,
		Title:    "Carry small notes",
		Summary:  "Vendors claim to have no change",
		Category: "general",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestSubmissionService_SubmitPin_InvalidInputNeverStored(t *testing.T) {
	srv, submissionRepo, cityRepo := newSubmissionTestService(t)

	_, err := srv.SubmitPin(context.Background(), nil, &submission.PinInput{
		CityID:    1,
		Type:      "scam",
		Title:     "Gem shop",
		Summary:   "Friendly stranger steers you to a gem shop",
		GuestName: "Ana",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMissingLocation)
	cityRepo.AssertNotCalled(t, "FindCityByID", mock.Anything, mock.Anything)
	submissionRepo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
}

func TestSubmissionService_SubmitPin_UnknownCity(t *testing.T) {
	srv, submissionRepo, cityRepo := newSubmissionTestService(t)
	ctx := context.Background()

	cityRepo.EXPECT().FindCityByID(ctx, int64(99)).Return(nil, repository.ErrCityNotFound)

	_, err := srv.SubmitPin(ctx, &entity.Identity{UserID: "user-1"}, &submission.PinInput{
		CityID:   99,
		Type:     "scam",
		Title:    "Gem shop",
		Summary:  "Friendly stranger steers you to a gem shop",
		Location: pointJSON(`[0, 0]`),
	})

	assert.ErrorIs(t, err, domainerrors.ErrCityNotFound)
	submissionRepo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
}

func TestSubmissionService_SubmitPin_StoreFailure(t *testing.T) {
	srv, submissionRepo, cityRepo := newSubmissionTestService(t)
	ctx := context.Background()

	cityRepo.EXPECT().FindCityByID(ctx, int64(1)).Return(&entity.City{ID: 1}, nil)
	submissionRepo.EXPECT().CreateSubmission(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := srv.SubmitPin(ctx, &entity.Identity{UserID: "user-1"}, &submission.PinInput{
		CityID:   1,
		Type:     "other",
		Title:    "Loose paving",
		Summary:  "Trip hazard outside the pier",
		Location: pointJSON(`[-0.12, 51.5]`),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestSubmissionService_ListSubmissions_Defaults(t *testing.T) {
	tests := []struct {
		name string
		in   repository.SubmissionFilter
		want repository.SubmissionFilter
	}{
		{
			name: "empty filter lists pending",
			in:   repository.SubmissionFilter{},
			want: repository.SubmissionFilter{Status: entity.SubmissionStatusPending, Limit: defaultListLimit},
		},
		{
			name: "limit is capped",
			in:   repository.SubmissionFilter{Kind: entity.SubmissionKindZone, Limit: 5000, Offset: -3},
			want: repository.SubmissionFilter{Kind: entity.SubmissionKindZone, Status: entity.SubmissionStatusPending, Limit: maxListLimit},
		},
		{
			name: "explicit status kept",
			in:   repository.SubmissionFilter{Status: entity.SubmissionStatusApproved, CityID: 4, Limit: 10, Offset: 20},
			want: repository.SubmissionFilter{Status: entity.SubmissionStatusApproved, CityID: 4, Limit: 10, Offset: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, submissionRepo, _ := newSubmissionTestService(t)
			ctx := context.Background()
			subs := []*entity.Submission{{ID: 1}}

			submissionRepo.EXPECT().FindSubmissions(ctx, tt.want).Return(subs, nil)

			got, err := srv.ListSubmissions(ctx, tt.in)

			require.NoError(t, err)
			assert.Equal(t, subs, got)
		})
	}
}

func TestSubmissionService_ListSubmissions_RejectsUnknownEnums(t *testing.T) {
	srv, submissionRepo, _ := newSubmissionTestService(t)

	_, err := srv.ListSubmissions(context.Background(), repository.SubmissionFilter{Kind: "rumor"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidField)

	_, err = srv.ListSubmissions(context.Background(), repository.SubmissionFilter{Status: "archived"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidField)

	submissionRepo.AssertNotCalled(t, "FindSubmissions", mock.Anything, mock.Anything)
}

func TestSubmissionService_GetSubmission(t *testing.T) {
	srv, submissionRepo, _ := newSubmissionTestService(t)
	ctx := context.Background()

	submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(7)).Return(&entity.Submission{ID: 7}, nil)
	submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(8)).Return(nil, repository.ErrSubmissionNotFound)

	sub, err := srv.GetSubmission(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), sub.ID)

	_, err = srv.GetSubmission(ctx, 8)
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionNotFound)
}
