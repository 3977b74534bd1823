package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/fx"

	"safemap/config"
	deliverycontext "safemap/internal/delivery/context"
	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/repository"
	"safemap/internal/domain/service"
	"safemap/internal/errors"
	"safemap/internal/geo"
	"safemap/internal/usecase"
)

const defaultApprovalPoints = 20

type moderationService struct {
	txManager      repository.TransactionManager
	submissionRepo repository.SubmissionRepository
	scoreRepo      repository.UserScoreRepository
	layerCache     service.MapLayerCache
	publisher      service.EventPublisher
	approvalPoints int
	logger         *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SubmissionRepo repository.SubmissionRepository
	ScoreRepo      repository.UserScoreRepository
	LayerCache     service.MapLayerCache
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewModerationService creates a new moderation service instance
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	points := defaultApprovalPoints
	if params.Config != nil && params.Config.Moderation != nil && params.Config.Moderation.ApprovalPoints > 0 {
		points = params.Config.Moderation.ApprovalPoints
	}

	return &moderationService{
		txManager:      params.TxManager,
		submissionRepo: params.SubmissionRepo,
		scoreRepo:      params.ScoreRepo,
		layerCache:     params.LayerCache,
		publisher:      params.Publisher,
		approvalPoints: points,
		logger:         params.Logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Approve promotes a pending submission. The status compare-and-swap and the
// published insert commit together; crediting, cache invalidation and the
// event run afterwards and never fail the call.
func (srv *moderationService) Approve(ctx context.Context, kind entity.SubmissionKind, id int64, reviewerID string) (*usecase.ModerationResult, error) {
	logger := srv.log(ctx).With("submission_id", id, "kind", kind, "reviewer_id", reviewerID)

	sub, err := srv.loadReviewable(ctx, kind, id, entity.SubmissionStatusApproved)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	feature, err := materialize(sub, reviewerID, now)
	if err != nil {
		logger.Error("stored geometry failed to decode, submission left pending",
			slog.String("geometry", sub.Geometry), slog.Any("error", err))

		return nil, domainerrors.ErrCorruptGeometry.WithDetails(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		if err := txRepo.NewSubmissionRepository().UpdateSubmissionStatus(
			ctx, id, entity.SubmissionStatusApproved, reviewerID, entity.SubmissionStatusPending,
		); err != nil {
			return err
		}

		if feature == nil {
			return nil
		}

		return txRepo.NewPublishedEntityRepository().InsertPublishedEntity(ctx, feature)
	})
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) || errors.Is(err, repository.ErrDuplicatePublication) {
			logger.Info("approve lost the race to another reviewer")

			return nil, domainerrors.ErrAlreadyReviewed
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "approve submission")
	}

	if err := markReviewed(sub, entity.SubmissionStatusApproved, reviewerID, now); err != nil {
		return nil, err
	}
	logger.Info("submission approved", slog.Bool("published", feature != nil))

	srv.creditSubmitter(ctx, logger, sub)
	srv.invalidateCity(ctx, logger, sub.CityID)
	srv.publish(ctx, logger, sub, service.ModerationActionApproved, feature, now)

	return &usecase.ModerationResult{Submission: sub, Published: feature}, nil
}

// Reject closes a pending submission without publishing anything.
func (srv *moderationService) Reject(ctx context.Context, kind entity.SubmissionKind, id int64, reviewerID string) (*entity.Submission, error) {
	logger := srv.log(ctx).With("submission_id", id, "kind", kind, "reviewer_id", reviewerID)

	sub, err := srv.loadReviewable(ctx, kind, id, entity.SubmissionStatusRejected)
	if err != nil {
		return nil, err
	}

	err = srv.submissionRepo.UpdateSubmissionStatus(ctx, id, entity.SubmissionStatusRejected, reviewerID, entity.SubmissionStatusPending)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, domainerrors.ErrAlreadyReviewed
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "reject submission")
	}

	now := time.Now()
	if err := markReviewed(sub, entity.SubmissionStatusRejected, reviewerID, now); err != nil {
		return nil, err
	}
	logger.Info("submission rejected")

	srv.publish(ctx, logger, sub, service.ModerationActionRejected, nil, now)

	return sub, nil
}

// loadReviewable loads a submission that may move to target. A submission
// already in a terminal state reports ErrAlreadyReviewed; any other refused
// move reports ErrInvalidTransition.
func (srv *moderationService) loadReviewable(ctx context.Context, kind entity.SubmissionKind, id int64, target entity.SubmissionStatus) (*entity.Submission, error) {
	sub, err := srv.submissionRepo.FindSubmissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find submission")
	}

	if sub.Kind != kind {
		return nil, domainerrors.ErrSubmissionNotFound
	}

	if !sub.Status.CanTransitionTo(target) {
		if sub.Status.IsTerminal() {
			return nil, domainerrors.ErrAlreadyReviewed.WithDetails("status is " + string(sub.Status))
		}

		_, err := sub.Status.TransitionTo(target)

		return nil, err
	}

	return sub, nil
}

func (srv *moderationService) creditSubmitter(ctx context.Context, logger *slog.Logger, sub *entity.Submission) {
	if sub.IsGuest() || srv.scoreRepo == nil {
		return
	}

	if err := srv.scoreRepo.IncrementUserScore(ctx, *sub.SubmitterID, srv.approvalPoints); err != nil {
		logger.Warn("failed to credit submitter",
			slog.String("submitter_id", *sub.SubmitterID),
			slog.Int("points", srv.approvalPoints),
			slog.Any("error", err))
	}
}

func (srv *moderationService) invalidateCity(ctx context.Context, logger *slog.Logger, cityID int64) {
	if srv.layerCache == nil {
		return
	}

	if err := srv.layerCache.InvalidateCity(ctx, cityID); err != nil {
		logger.Warn("failed to invalidate city layers", slog.Int64("city_id", cityID), slog.Any("error", err))
	}
}

func (srv *moderationService) publish(
	ctx context.Context,
	logger *slog.Logger,
	sub *entity.Submission,
	action service.ModerationAction,
	feature entity.MapFeature,
	at time.Time,
) {
	if srv.publisher == nil {
		return
	}

	event := &service.ModerationEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Action:       action,
		Kind:         string(sub.Kind),
		SubmissionID: sub.ID,
		CityID:       sub.CityID,
		OccurredAt:   at,
	}
	if sub.ReviewedBy != nil {
		event.ReviewerID = *sub.ReviewedBy
	}
	if !sub.IsGuest() {
		event.SubmitterID = *sub.SubmitterID
	}

	switch f := feature.(type) {
	case *entity.Pin:
		event.EntityKind = string(entity.FeatureKindPin)
		event.EntityID = f.ID
	case *entity.Zone:
		event.EntityKind = string(entity.FeatureKindZone)
		event.EntityID = f.ID
	}

	if err := srv.publisher.PublishModerationEvent(ctx, event); err != nil {
		logger.Warn("failed to publish moderation event", slog.Any("error", err))
	}
}

func markReviewed(sub *entity.Submission, status entity.SubmissionStatus, reviewerID string, at time.Time) error {
	next, err := sub.Status.TransitionTo(status)
	if err != nil {
		return err
	}

	reviewer := reviewerID
	reviewedAt := at
	sub.Status = next
	sub.ReviewedBy = &reviewer
	sub.ReviewedAt = &reviewedAt
	sub.UpdatedAt = at

	return nil
}

// materialize builds the published entity for an approval. It returns nil for
// tips without geometry.
func materialize(sub *entity.Submission, reviewerID string, now time.Time) (entity.MapFeature, error) {
	if sub.Kind == entity.SubmissionKindTip && !sub.HasGeometry() {
		return nil, nil
	}
	if !sub.HasGeometry() {
		return nil, errors.Errorf("%s submission %d has no geometry", sub.Kind, sub.ID)
	}

	g, err := geo.Decode(sub.Geometry)
	if err != nil {
		return nil, err
	}

	verifiedBy := reviewerID
	sourceID := sub.ID

	switch sub.Kind {
	case entity.SubmissionKindPin, entity.SubmissionKindTip:
		point, ok := g.(orb.Point)
		if !ok {
			return nil, errors.Errorf("%s submission %d stores %s, want Point", sub.Kind, sub.ID, g.GeoJSONType())
		}

		pinType := sub.PinType
		if sub.Kind == entity.SubmissionKindTip {
			pinType = sub.Category.PinType()
		}

		return &entity.Pin{
			CityID:             sub.CityID,
			Type:               pinType,
			Title:              sub.Title,
			Summary:            sub.Summary,
			Details:            sub.Details,
			Location:           point,
			Status:             entity.PublishedStatus,
			Source:             entity.SourceUser,
			VerifiedBy:         &verifiedBy,
			SourceSubmissionID: &sourceID,
			CreatedAt:          now,
		}, nil
	case entity.SubmissionKindZone:
		poly, ok := g.(orb.Polygon)
		if !ok {
			return nil, errors.Errorf("zone submission %d stores %s, want Polygon", sub.ID, g.GeoJSONType())
		}

		return &entity.Zone{
			CityID:             sub.CityID,
			Label:              sub.Title,
			Level:              sub.Level,
			Reason:             sub.Summary,
			Area:               poly,
			Status:             entity.PublishedStatus,
			Source:             entity.SourceUser,
			VerifiedBy:         &verifiedBy,
			SourceSubmissionID: &sourceID,
			CreatedAt:          now,
		}, nil
	default:
		return nil, errors.Errorf("unknown submission kind %q", sub.Kind)
	}
}
