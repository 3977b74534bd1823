// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"safemap/internal/domain/entity"
	"safemap/internal/errors"
)

var (
	// ErrSubmissionNotFound is returned when a submission does not exist.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrStatusConflict is returned when a conditional status update matched no row
	// because the stored status is no longer the expected one.
	ErrStatusConflict = errors.New("submission status changed concurrently")
)

// SubmissionFilter narrows a submission listing. Zero values mean "any".
type SubmissionFilter struct {
	Kind   entity.SubmissionKind
	Status entity.SubmissionStatus
	CityID int64
	Limit  int
	Offset int
}

// SubmissionRepository persists user-proposed tips, pins and zones.
type SubmissionRepository interface {
	// CreateSubmission stores a new submission and sets its ID.
	CreateSubmission(ctx context.Context, submission *entity.Submission) error

	// FindSubmissionByID reads from the primary so a moderator never acts on a lagging replica.
	FindSubmissionByID(ctx context.Context, id int64) (*entity.Submission, error)

	// FindSubmissions lists submissions newest first.
	FindSubmissions(ctx context.Context, filter SubmissionFilter) ([]*entity.Submission, error)

	// UpdateSubmissionStatus sets status, reviewer and review time only while the stored
	// status equals expected. Returns ErrStatusConflict when no row matched.
	UpdateSubmissionStatus(ctx context.Context, id int64, to entity.SubmissionStatus, reviewerID string, expected entity.SubmissionStatus) error

	// FindGeometryRows lists submissions that carry geometry, for offline maintenance.
	FindGeometryRows(ctx context.Context, afterID int64, limit int) ([]*entity.Submission, error)

	// UpdateSubmissionGeometry rewrites the stored geometry text.
	UpdateSubmissionGeometry(ctx context.Context, id int64, geometry string) error
}
