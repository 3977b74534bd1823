package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"safemap/config"
	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/repository"
	"safemap/internal/domain/service"
	"safemap/internal/errors"
	mockRepo "safemap/internal/mocks/repository"
	mockSvc "safemap/internal/mocks/service"
	"safemap/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moderationMocks struct {
	txManager      *mockRepo.MockTransactionManager
	submissionRepo *mockRepo.MockSubmissionRepository
	scoreRepo      *mockRepo.MockUserScoreRepository
	layerCache     *mockSvc.MockMapLayerCache
	publisher      *mockSvc.MockEventPublisher
}

func newModerationTestService(t *testing.T) (usecase.ModerationUsecase, *moderationMocks) {
	t.Helper()

	m := &moderationMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		submissionRepo: mockRepo.NewMockSubmissionRepository(t),
		scoreRepo:      mockRepo.NewMockUserScoreRepository(t),
		layerCache:     mockSvc.NewMockMapLayerCache(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	srv := NewModerationService(ModerationServiceParams{
		TxManager:      m.txManager,
		SubmissionRepo: m.submissionRepo,
		ScoreRepo:      m.scoreRepo,
		LayerCache:     m.layerCache,
		Publisher:      m.publisher,
		Config:         &config.Config{Moderation: &config.ModerationConfig{ApprovalPoints: 20}},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, m
}

// expectTx runs the transaction body against a factory whose repositories are
// the given mocks.
func expectTx(t *testing.T, m *moderationMocks, subRepo repository.SubmissionRepository, pubRepo repository.PublishedEntityRepository) {
	t.Helper()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewSubmissionRepository().Return(subRepo).Maybe()
			factory.EXPECT().NewPublishedEntityRepository().Return(pubRepo).Maybe()

			return fn(factory)
		})
}

func pendingPin(id int64, submitter *string) *entity.Submission {
	return &entity.Submission{
		ID:          id,
		CityID:      1,
		Kind:        entity.SubmissionKindPin,
		SubmitterID: submitter,
		Title:       "Fake taxi",
		Summary:     "Unlicensed cab overcharging at the exit",
		PinType:     entity.PinTypeScam,
		Geometry:    "SRID=4326;POINT(100.5 13.75)",
		Status:      entity.SubmissionStatusPending,
	}
}

func strPtr(s string) *string { return &s }

func TestModerationService_Approve_PinPublishes(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()
	sub := pendingPin(42, strPtr("user-1"))

	txSubRepo := mockRepo.NewMockSubmissionRepository(t)
	txPubRepo := mockRepo.NewMockPublishedEntityRepository(t)

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(42)).Return(sub, nil)
	expectTx(t, m, txSubRepo, txPubRepo)
	txSubRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(42), entity.SubmissionStatusApproved, "mod-1", entity.SubmissionStatusPending).
		Return(nil)
	txPubRepo.EXPECT().
		InsertPublishedEntity(ctx, mock.AnythingOfType("*entity.Pin")).
		Run(func(_ context.Context, feature entity.MapFeature) {
			feature.(*entity.Pin).ID = 7
		}).
		Return(nil)
	m.scoreRepo.EXPECT().IncrementUserScore(ctx, "user-1", 20).Return(nil)
	m.layerCache.EXPECT().InvalidateCity(ctx, int64(1)).Return(nil)
	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			return e.Action == service.ModerationActionApproved &&
				e.SubmissionID == 42 &&
				e.EntityKind == string(entity.FeatureKindPin) &&
				e.EntityID == 7 &&
				e.ReviewerID == "mod-1" &&
				e.SubmitterID == "user-1"
		})).
		Return(nil)

	result, err := srv.Approve(ctx, entity.SubmissionKindPin, 42, "mod-1")

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusApproved, result.Submission.Status)
	require.NotNil(t, result.Submission.ReviewedBy)
	assert.Equal(t, "mod-1", *result.Submission.ReviewedBy)
	assert.NotNil(t, result.Submission.ReviewedAt)

	pin, ok := result.Published.(*entity.Pin)
	require.True(t, ok)
	assert.Equal(t, orb.Point{100.5, 13.75}, pin.Location)
	assert.Equal(t, entity.PinTypeScam, pin.Type)
	assert.Equal(t, entity.SourceUser, pin.Source)
	assert.Equal(t, entity.PublishedStatus, pin.Status)
	require.NotNil(t, pin.VerifiedBy)
	assert.Equal(t, "mod-1", *pin.VerifiedBy)
	require.NotNil(t, pin.SourceSubmissionID)
	assert.Equal(t, int64(42), *pin.SourceSubmissionID)
}

func TestModerationService_Approve_ZoneKeepsPolygon(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()
	sub := &entity.Submission{
		ID:          9,
		CityID:      3,
		Kind:        entity.SubmissionKindZone,
		SubmitterID: strPtr("user-2"),
		Title:       "Night market",
		Summary:     "Pickpockets after dark",
		Level:       entity.SafetyLevelCaution,
		Geometry:    "SRID=4326;POLYGON((0 0,1 0,1 1,0 1,0 0))",
		Status:      entity.SubmissionStatusPending,
	}

	txSubRepo := mockRepo.NewMockSubmissionRepository(t)
	txPubRepo := mockRepo.NewMockPublishedEntityRepository(t)

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(9)).Return(sub, nil)
	expectTx(t, m, txSubRepo, txPubRepo)
	txSubRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(9), entity.SubmissionStatusApproved, "mod-1", entity.SubmissionStatusPending).
		Return(nil)
	txPubRepo.EXPECT().InsertPublishedEntity(ctx, mock.AnythingOfType("*entity.Zone")).Return(nil)
	m.scoreRepo.EXPECT().IncrementUserScore(ctx, "user-2", 20).Return(nil)
	m.layerCache.EXPECT().InvalidateCity(ctx, int64(3)).Return(nil)
	m.publisher.EXPECT().PublishModerationEvent(ctx, mock.Anything).Return(nil)

	result, err := srv.Approve(ctx, entity.SubmissionKindZone, 9, "mod-1")

	require.NoError(t, err)
	zone, ok := result.Published.(*entity.Zone)
	require.True(t, ok)
	assert.Equal(t, "Night market", zone.Label)
	assert.Equal(t, entity.SafetyLevelCaution, zone.Level)
	assert.Equal(t, "Pickpockets after dark", zone.Reason)
	assert.Equal(t, orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}, zone.Area[0])
}

func TestModerationService_Approve_TipWithoutGeometryPublishesNothing(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()
	sub := &entity.Submission{
		ID:          5,
		CityID:      1,
		Kind:        entity.SubmissionKindTip,
		SubmitterID: strPtr("user-1"),
		Title:       "Agree fares first",
		Summary:     "Tuk-tuks rarely use meters",
		Category:    entity.TipCategoryTransport,
		Status:      entity.SubmissionStatusPending,
	}

	txSubRepo := mockRepo.NewMockSubmissionRepository(t)
	txPubRepo := mockRepo.NewMockPublishedEntityRepository(t)

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(5)).Return(sub, nil)
	expectTx(t, m, txSubRepo, txPubRepo)
	txSubRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(5), entity.SubmissionStatusApproved, "mod-1", entity.SubmissionStatusPending).
		Return(nil)
	m.scoreRepo.EXPECT().IncrementUserScore(ctx, "user-1", 20).Return(nil)
	m.layerCache.EXPECT().InvalidateCity(ctx, int64(1)).Return(nil)
	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			return e.EntityKind == "" && e.EntityID == 0
		})).
		Return(nil)

	result, err := srv.Approve(ctx, entity.SubmissionKindTip, 5, "mod-1")

	require.NoError(t, err)
	assert.Nil(t, result.Published)
	assert.Equal(t, entity.SubmissionStatusApproved, result.Submission.Status)
}

func TestModerationService_Approve_GeolocatedTipBecomesPin(t *testing.T) {
	sub := &entity.Submission{
		ID:       6,
		CityID:   1,
		Kind:     entity.SubmissionKindTip,
		Title:    "Card skimmer",
		Category: entity.TipCategoryTheft,
		Geometry: "SRID=4326;POINT(2.35 48.85)",
		Status:   entity.SubmissionStatusPending,
	}

	feature, err := materialize(sub, "mod-1", time.Now())

	require.NoError(t, err)
	pin, ok := feature.(*entity.Pin)
	require.True(t, ok)
	assert.Equal(t, entity.TipCategoryTheft.PinType(), pin.Type)
	assert.Equal(t, orb.Point{2.35, 48.85}, pin.Location)
}

func TestModerationService_Approve_GuestIsNotCredited(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()
	sub := pendingPin(11, nil)
	sub.GuestName = "Traveller"

	txSubRepo := mockRepo.NewMockSubmissionRepository(t)
	txPubRepo := mockRepo.NewMockPublishedEntityRepository(t)

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(11)).Return(sub, nil)
	expectTx(t, m, txSubRepo, txPubRepo)
	txSubRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(11), entity.SubmissionStatusApproved, "mod-1", entity.SubmissionStatusPending).
		Return(nil)
	txPubRepo.EXPECT().InsertPublishedEntity(ctx, mock.Anything).Return(nil)
	m.layerCache.EXPECT().InvalidateCity(ctx, int64(1)).Return(nil)
	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			return e.SubmitterID == ""
		})).
		Return(nil)

	_, err := srv.Approve(ctx, entity.SubmissionKindPin, 11, "mod-1")

	require.NoError(t, err)
	m.scoreRepo.AssertNotCalled(t, "IncrementUserScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerationService_Approve_SideEffectFailuresAreNotFatal(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()
	sub := pendingPin(12, strPtr("user-1"))

	txSubRepo := mockRepo.NewMockSubmissionRepository(t)
	txPubRepo := mockRepo.NewMockPublishedEntityRepository(t)

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(12)).Return(sub, nil)
	expectTx(t, m, txSubRepo, txPubRepo)
	txSubRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(12), entity.SubmissionStatusApproved, "mod-1", entity.SubmissionStatusPending).
		Return(nil)
	txPubRepo.EXPECT().InsertPublishedEntity(ctx, mock.Anything).Return(nil)
	m.scoreRepo.EXPECT().IncrementUserScore(ctx, "user-1", 20).Return(errors.New("score table locked"))
	m.layerCache.EXPECT().InvalidateCity(ctx, int64(1)).Return(errors.New("redis down"))
	m.publisher.EXPECT().PublishModerationEvent(ctx, mock.Anything).Return(errors.New("topic missing"))

	result, err := srv.Approve(ctx, entity.SubmissionKindPin, 12, "mod-1")

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusApproved, result.Submission.Status)
	assert.NotNil(t, result.Published)
}

func TestModerationService_Approve_Errors(t *testing.T) {
	approved := pendingPin(20, strPtr("user-1"))
	approved.Status = entity.SubmissionStatusApproved

	corrupt := pendingPin(21, strPtr("user-1"))
	corrupt.Geometry = "SRID=4326;POINT(abc def)"

	wrongShape := pendingPin(22, strPtr("user-1"))
	wrongShape.Geometry = "SRID=4326;POLYGON((0 0,1 0,1 1,0 0))"

	missing := pendingPin(23, strPtr("user-1"))
	missing.Geometry = ""

	tests := []struct {
		name    string
		kind    entity.SubmissionKind
		id      int64
		found   *entity.Submission
		findErr error
		wantErr error
	}{
		{"not found", entity.SubmissionKindPin, 19, nil, repository.ErrSubmissionNotFound, domainerrors.ErrSubmissionNotFound},
		{"kind mismatch", entity.SubmissionKindZone, 20, pendingPin(20, nil), nil, domainerrors.ErrSubmissionNotFound},
		{"already approved", entity.SubmissionKindPin, 20, approved, nil, domainerrors.ErrAlreadyReviewed},
		{"undecodable geometry", entity.SubmissionKindPin, 21, corrupt, nil, domainerrors.ErrCorruptGeometry},
		{"polygon stored for pin", entity.SubmissionKindPin, 22, wrongShape, nil, domainerrors.ErrCorruptGeometry},
		{"pin without geometry", entity.SubmissionKindPin, 23, missing, nil, domainerrors.ErrCorruptGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newModerationTestService(t)
			ctx := context.Background()

			m.submissionRepo.EXPECT().FindSubmissionByID(ctx, tt.id).Return(tt.found, tt.findErr)

			result, err := srv.Approve(ctx, tt.kind, tt.id, "mod-1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestModerationService_Approve_LostRace(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()

	txSubRepo := mockRepo.NewMockSubmissionRepository(t)
	txPubRepo := mockRepo.NewMockPublishedEntityRepository(t)

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(30)).Return(pendingPin(30, strPtr("user-1")), nil)
	expectTx(t, m, txSubRepo, txPubRepo)
	txSubRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(30), entity.SubmissionStatusApproved, "mod-2", entity.SubmissionStatusPending).
		Return(repository.ErrStatusConflict)

	_, err := srv.Approve(ctx, entity.SubmissionKindPin, 30, "mod-2")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
	m.scoreRepo.AssertNotCalled(t, "IncrementUserScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerationService_Approve_DuplicatePublication(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()

	txSubRepo := mockRepo.NewMockSubmissionRepository(t)
	txPubRepo := mockRepo.NewMockPublishedEntityRepository(t)

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(31)).Return(pendingPin(31, nil), nil)
	expectTx(t, m, txSubRepo, txPubRepo)
	txSubRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(31), entity.SubmissionStatusApproved, "mod-1", entity.SubmissionStatusPending).
		Return(nil)
	txPubRepo.EXPECT().InsertPublishedEntity(ctx, mock.Anything).Return(repository.ErrDuplicatePublication)

	_, err := srv.Approve(ctx, entity.SubmissionKindPin, 31, "mod-1")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

func TestModerationService_Approve_DatabaseFailure(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()

	txSubRepo := mockRepo.NewMockSubmissionRepository(t)
	txPubRepo := mockRepo.NewMockPublishedEntityRepository(t)

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(32)).Return(pendingPin(32, nil), nil)
	expectTx(t, m, txSubRepo, txPubRepo)
	txSubRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(32), entity.SubmissionStatusApproved, "mod-1", entity.SubmissionStatusPending).
		Return(errors.New("connection reset"))

	_, err := srv.Approve(ctx, entity.SubmissionKindPin, 32, "mod-1")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestModerationService_Reject_Zone(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()
	sub := &entity.Submission{
		ID:          40,
		CityID:      2,
		Kind:        entity.SubmissionKindZone,
		SubmitterID: strPtr("user-3"),
		Title:       "Old town",
		Level:       entity.SafetyLevelAvoid,
		Geometry:    "SRID=4326;POLYGON((0 0,1 0,1 1,0 0))",
		Status:      entity.SubmissionStatusPending,
	}

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(40)).Return(sub, nil)
	m.submissionRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(40), entity.SubmissionStatusRejected, "mod-1", entity.SubmissionStatusPending).
		Return(nil)
	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			return e.Action == service.ModerationActionRejected && e.EntityID == 0
		})).
		Return(nil)

	rejected, err := srv.Reject(ctx, entity.SubmissionKindZone, 40, "mod-1")

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusRejected, rejected.Status)
	require.NotNil(t, rejected.ReviewedBy)
	assert.Equal(t, "mod-1", *rejected.ReviewedBy)
	m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	m.scoreRepo.AssertNotCalled(t, "IncrementUserScore", mock.Anything, mock.Anything, mock.Anything)
	m.layerCache.AssertNotCalled(t, "InvalidateCity", mock.Anything, mock.Anything)
}

func TestModerationService_Reject_AlreadyReviewed(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()
	sub := pendingPin(41, nil)
	sub.Status = entity.SubmissionStatusRejected

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(41)).Return(sub, nil)

	_, err := srv.Reject(ctx, entity.SubmissionKindPin, 41, "mod-1")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

func TestModerationService_Reject_LostRace(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(42)).Return(pendingPin(42, nil), nil)
	m.submissionRepo.EXPECT().
		UpdateSubmissionStatus(ctx, int64(42), entity.SubmissionStatusRejected, "mod-1", entity.SubmissionStatusPending).
		Return(repository.ErrStatusConflict)

	_, err := srv.Reject(ctx, entity.SubmissionKindPin, 42, "mod-1")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

func TestModerationService_Approve_UnknownStatusIsInvalidTransition(t *testing.T) {
	srv, m := newModerationTestService(t)
	ctx := context.Background()
	sub := pendingPin(43, nil)
	sub.Status = entity.SubmissionStatus("archived")

	m.submissionRepo.EXPECT().FindSubmissionByID(ctx, int64(43)).Return(sub, nil)

	_, err := srv.Approve(ctx, entity.SubmissionKindPin, 43, "mod-1")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.NotErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

// memStore is a serializable in-memory store: a transaction holds the lock
// for its whole body and restores a snapshot when the body fails.
type memStore struct {
	mu          sync.Mutex
	submissions map[int64]entity.Submission
	pins        []*entity.Pin
	published   map[int64]bool
}

type memTx struct{ store *memStore }

func (tx *memTx) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()

	subs := make(map[int64]entity.Submission, len(tx.store.submissions))
	for id, sub := range tx.store.submissions {
		subs[id] = sub
	}
	pins := len(tx.store.pins)

	if err := fn(&memFactory{store: tx.store}); err != nil {
		tx.store.submissions = subs
		for _, pin := range tx.store.pins[pins:] {
			delete(tx.store.published, *pin.SourceSubmissionID)
		}
		tx.store.pins = tx.store.pins[:pins]

		return err
	}

	return nil
}

type memFactory struct{ store *memStore }

func (f *memFactory) NewSubmissionRepository() repository.SubmissionRepository {
	return &memSubmissionRepo{store: f.store, locked: true}
}

func (f *memFactory) NewPublishedEntityRepository() repository.PublishedEntityRepository {
	return &memPublishedRepo{store: f.store}
}

// memSubmissionRepo implements only what moderation touches.
type memSubmissionRepo struct {
	repository.SubmissionRepository
	store  *memStore
	locked bool
}

func (r *memSubmissionRepo) FindSubmissionByID(_ context.Context, id int64) (*entity.Submission, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sub, ok := r.store.submissions[id]
	if !ok {
		return nil, repository.ErrSubmissionNotFound
	}

	return &sub, nil
}

func (r *memSubmissionRepo) UpdateSubmissionStatus(_ context.Context, id int64, to entity.SubmissionStatus, reviewerID string, expected entity.SubmissionStatus) error {
	if !r.locked {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	sub, ok := r.store.submissions[id]
	if !ok || sub.Status != expected {
		return repository.ErrStatusConflict
	}

	sub.Status = to
	sub.ReviewedBy = &reviewerID
	r.store.submissions[id] = sub

	return nil
}

type memPublishedRepo struct {
	repository.PublishedEntityRepository
	store *memStore
}

func (r *memPublishedRepo) InsertPublishedEntity(_ context.Context, feature entity.MapFeature) error {
	pin, ok := feature.(*entity.Pin)
	if !ok {
		return errors.New("only pins are stored in memory")
	}
	if r.store.published[*pin.SourceSubmissionID] {
		return repository.ErrDuplicatePublication
	}

	pin.ID = int64(len(r.store.pins) + 1)
	r.store.pins = append(r.store.pins, pin)
	r.store.published[*pin.SourceSubmissionID] = true

	return nil
}

type countingScores struct{ calls atomic.Int32 }

func (c *countingScores) IncrementUserScore(_ context.Context, _ string, _ int) error {
	c.calls.Add(1)

	return nil
}

func TestModerationService_Approve_ConcurrentReviewersPublishOnce(t *testing.T) {
	store := &memStore{
		submissions: map[int64]entity.Submission{50: *pendingPin(50, strPtr("user-1"))},
		published:   map[int64]bool{},
	}
	scores := &countingScores{}
	layerCache := mockSvc.NewMockMapLayerCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	layerCache.EXPECT().InvalidateCity(mock.Anything, int64(1)).Return(nil).Once()
	publisher.EXPECT().PublishModerationEvent(mock.Anything, mock.Anything).Return(nil).Once()

	srv := NewModerationService(ModerationServiceParams{
		TxManager:      &memTx{store: store},
		SubmissionRepo: &memSubmissionRepo{store: store},
		ScoreRepo:      scores,
		LayerCache:     layerCache,
		Publisher:      publisher,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	const reviewers = 8
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)
	start := make(chan struct{})

	for i := range reviewers {
		wg.Add(1)
		go func(reviewer int) {
			defer wg.Done()
			<-start

			_, err := srv.Approve(context.Background(), entity.SubmissionKindPin, 50, "mod-"+string(rune('a'+reviewer)))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrAlreadyReviewed):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(reviewers-1), conflicts.Load())
	assert.Len(t, store.pins, 1)
	assert.Equal(t, int32(1), scores.calls.Load())
	assert.Equal(t, entity.SubmissionStatusApproved, store.submissions[50].Status)
}

func TestModerationService_RejectThenApprove_LeavesStateUnchanged(t *testing.T) {
	store := &memStore{
		submissions: map[int64]entity.Submission{60: *pendingPin(60, strPtr("user-1"))},
		published:   map[int64]bool{},
	}
	scores := &countingScores{}
	layerCache := mockSvc.NewMockMapLayerCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	publisher.EXPECT().
		PublishModerationEvent(mock.Anything, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			return e.Action == service.ModerationActionRejected
		})).
		Return(nil).Once()

	srv := NewModerationService(ModerationServiceParams{
		TxManager:      &memTx{store: store},
		SubmissionRepo: &memSubmissionRepo{store: store},
		ScoreRepo:      scores,
		LayerCache:     layerCache,
		Publisher:      publisher,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ctx := context.Background()

	rejected, err := srv.Reject(ctx, entity.SubmissionKindPin, 60, "mod-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusRejected, rejected.Status)

	_, err = srv.Approve(ctx, entity.SubmissionKindPin, 60, "mod-2")
	require.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)

	_, err = srv.Reject(ctx, entity.SubmissionKindPin, 60, "mod-2")
	require.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)

	stored := store.submissions[60]
	assert.Equal(t, entity.SubmissionStatusRejected, stored.Status)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, "mod-1", *stored.ReviewedBy)
	assert.Empty(t, store.pins)
	assert.Equal(t, int32(0), scores.calls.Load())
	layerCache.AssertNotCalled(t, "InvalidateCity", mock.Anything, mock.Anything)
}
