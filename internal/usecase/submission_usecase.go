package usecase

import (
	"context"

	"safemap/internal/domain/entity"
	"safemap/internal/domain/repository"
	"safemap/internal/domain/submission"
)

// SubmissionUsecase accepts user-proposed content into the moderation queue
type SubmissionUsecase interface {
	SubmitTip(ctx context.Context, identity *entity.Identity, input *submission.TipInput) (*entity.Submission, error)
	SubmitPin(ctx context.Context, identity *entity.Identity, input *submission.PinInput) (*entity.Submission, error)
	SubmitZone(ctx context.Context, identity *entity.Identity, input *submission.ZoneInput) (*entity.Submission, error)

	// ListSubmissions returns the queue; defaults to pending, newest first.
	ListSubmissions(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.Submission, error)
	GetSubmission(ctx context.Context, id int64) (*entity.Submission, error)
}
