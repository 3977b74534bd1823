package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	deliverycontext "safemap/internal/delivery/context"
	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/repository"
	"safemap/internal/domain/submission"
	"safemap/internal/errors"
	"safemap/internal/usecase"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type submissionService struct {
	validator      *submission.Validator
	submissionRepo repository.SubmissionRepository
	cityRepo       repository.CityRepository
	logger         *slog.Logger
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	Validator      *submission.Validator
	SubmissionRepo repository.SubmissionRepository
	CityRepo       repository.CityRepository
	Logger         *slog.Logger
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	validator := params.Validator
	if validator == nil {
		validator = submission.NewValidator()
	}

	return &submissionService{
		validator:      validator,
		submissionRepo: params.SubmissionRepo,
		cityRepo:       params.CityRepo,
		logger:         params.Logger,
	}
}

func (srv *submissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitTip queues a tip for review
func (srv *submissionService) SubmitTip(ctx context.Context, identity *entity.Identity, input *submission.TipInput) (*entity.Submission, error) {
	return srv.submit(ctx, identity, input)
}

// SubmitPin queues a pin for review, guests included
func (srv *submissionService) SubmitPin(ctx context.Context, identity *entity.Identity, input *submission.PinInput) (*entity.Submission, error) {
	return srv.submit(ctx, identity, input)
}

// SubmitZone queues a zone for review
func (srv *submissionService) SubmitZone(ctx context.Context, identity *entity.Identity, input *submission.ZoneInput) (*entity.Submission, error) {
	return srv.submit(ctx, identity, input)
}

func (srv *submissionService) submit(ctx context.Context, identity *entity.Identity, input submission.Input) (*entity.Submission, error) {
	validated, err := srv.validator.Validate(identity, input)
	if err != nil {
		return nil, err
	}

	if _, err := srv.cityRepo.FindCityByID(ctx, validated.CityID); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find city")
	}

	sub, err := validated.ToSubmission(time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.submissionRepo.CreateSubmission(ctx, sub); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create submission")
	}

	srv.log(ctx).Info("submission queued",
		slog.Int64("submission_id", sub.ID),
		slog.String("kind", string(sub.Kind)),
		slog.Int64("city_id", sub.CityID),
		slog.Bool("guest", sub.IsGuest()))

	return sub, nil
}

// ListSubmissions lists the moderation queue
func (srv *submissionService) ListSubmissions(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.Submission, error) {
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidField.WithDetails("kind")
	}
	if filter.Status == "" {
		filter.Status = entity.SubmissionStatusPending
	}
	if !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidField.WithDetails("status")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	filter.Limit = min(filter.Limit, maxListLimit)
	filter.Offset = max(filter.Offset, 0)

	subs, err := srv.submissionRepo.FindSubmissions(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list submissions")
	}

	return subs, nil
}

// GetSubmission returns one submission
func (srv *submissionService) GetSubmission(ctx context.Context, id int64) (*entity.Submission, error) {
	sub, err := srv.submissionRepo.FindSubmissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find submission")
	}

	return sub, nil
}
