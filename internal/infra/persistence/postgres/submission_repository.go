package postgres

import (
	"context"
	"time"

	"safemap/internal/domain/entity"
	"safemap/internal/domain/repository"
	"safemap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// submissionRepository implements the domain.SubmissionRepository interface.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

// CreateSubmission persists a new pending submission.
func (repo *submissionRepository) CreateSubmission(ctx context.Context, submission *entity.Submission) error {
	submissionM := fromSubmissionDomain(submission)

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "submission rejected by schema constraint")
		}

		return errors.Wrap(err, "failed to create submission")
	}

	submission.ID = submissionM.ID
	submission.CreatedAt = submissionM.CreatedAt
	submission.UpdatedAt = submissionM.UpdatedAt

	return nil
}

// FindSubmissionByID reads a submission from the primary.
func (repo *submissionRepository) FindSubmissionByID(ctx context.Context, id int64) (*entity.Submission, error) {
	var submissionM model.SubmissionModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Select(model.SubmissionColumns).
		Where("id = ?", id).
		First(&submissionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by ID")
	}

	return toSubmissionDomain(&submissionM), nil
}

// FindSubmissions lists submissions matching the filter, newest first.
func (repo *submissionRepository) FindSubmissions(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.Submission, error) {
	query := repo.db.WithContext(ctx).Model(&model.SubmissionModel{}).Select(model.SubmissionColumns)

	if filter.Kind != "" {
		query = query.Where("kind = ?", string(filter.Kind))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.CityID > 0 {
		query = query.Where("city_id = ?", filter.CityID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var submissionModels []*model.SubmissionModel
	if err := query.Order("created_at DESC, id DESC").Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submissions")
	}

	submissions := make([]*entity.Submission, 0, len(submissionModels))
	for _, submissionM := range submissionModels {
		submissions = append(submissions, toSubmissionDomain(submissionM))
	}

	return submissions, nil
}

// UpdateSubmissionStatus performs a compare-and-swap on the status column.
func (repo *submissionRepository) UpdateSubmissionStatus(
	ctx context.Context,
	id int64,
	to entity.SubmissionStatus,
	reviewerID string,
	expected entity.SubmissionStatus,
) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.SubmissionModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(map[string]any{
			"status":      string(to),
			"reviewed_by": reviewerID,
			"reviewed_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update submission status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// FindGeometryRows pages through submissions that carry geometry, ordered by ID.
func (repo *submissionRepository) FindGeometryRows(ctx context.Context, afterID int64, limit int) ([]*entity.Submission, error) {
	var submissionModels []*model.SubmissionModel

	if err := repo.db.WithContext(ctx).
		Select(model.SubmissionColumns).
		Where("id > ? AND geometry IS NOT NULL", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submission geometry")
	}

	submissions := make([]*entity.Submission, 0, len(submissionModels))
	for _, submissionM := range submissionModels {
		submissions = append(submissions, toSubmissionDomain(submissionM))
	}

	return submissions, nil
}

// UpdateSubmissionGeometry rewrites the stored geometry.
func (repo *submissionRepository) UpdateSubmissionGeometry(ctx context.Context, id int64, geometry string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"geometry":   model.NewGeography(geometry),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update submission geometry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubmissionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSubmissionDomain(data *model.SubmissionModel) *entity.Submission {
	if data == nil {
		return nil
	}

	return &entity.Submission{
		ID:          data.ID,
		CityID:      data.CityID,
		Kind:        entity.SubmissionKind(data.Kind),
		SubmitterID: data.SubmitterID,
		GuestName:   data.GuestName,
		Title:       data.Title,
		Summary:     data.Summary,
		Details:     data.Details,
		Category:    entity.TipCategory(data.Category),
		PinType:     entity.PinType(data.PinType),
		Level:       entity.SafetyLevel(data.Level),
		Geometry:    data.Geometry.Text,
		Status:      entity.SubmissionStatus(data.Status),
		ReviewedBy:  data.ReviewedBy,
		ReviewedAt:  data.ReviewedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSubmissionDomain(data *entity.Submission) *model.SubmissionModel {
	if data == nil {
		return nil
	}

	return &model.SubmissionModel{
		ID:          data.ID,
		CityID:      data.CityID,
		Kind:        string(data.Kind),
		Status:      string(data.Status),
		SubmitterID: data.SubmitterID,
		GuestName:   data.GuestName,
		Title:       data.Title,
		Summary:     data.Summary,
		Details:     data.Details,
		Category:    string(data.Category),
		PinType:     string(data.PinType),
		Level:       string(data.Level),
		Geometry:    model.NewGeography(data.Geometry),
		ReviewedBy:  data.ReviewedBy,
		ReviewedAt:  data.ReviewedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
