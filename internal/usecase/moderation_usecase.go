package usecase

import (
	"context"

	"safemap/internal/domain/entity"
)

// ModerationResult describes an approval. Published is nil for tips without geometry.
type ModerationResult struct {
	Submission *entity.Submission
	Published  entity.MapFeature
}

// ModerationUsecase drives the pending -> approved/rejected lifecycle.
// Callers must already hold a guardian or admin capability.
type ModerationUsecase interface {
	Approve(ctx context.Context, kind entity.SubmissionKind, id int64, reviewerID string) (*ModerationResult, error)
	Reject(ctx context.Context, kind entity.SubmissionKind, id int64, reviewerID string) (*entity.Submission, error)
}
