package postgres

import (
	"context"
	"time"

	"safemap/internal/domain/repository"
	"safemap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userScoreRepository implements the domain.UserScoreRepository interface.
type userScoreRepository struct {
	db *gorm.DB
}

// NewUserScoreRepository is the constructor for userScoreRepository.
func NewUserScoreRepository(db *gorm.DB) repository.UserScoreRepository {
	return &userScoreRepository{db: db}
}

// IncrementUserScore upserts the score row, adding points atomically.
func (repo *userScoreRepository) IncrementUserScore(ctx context.Context, userID string, points int) error {
	now := time.Now()
	scoreM := &model.UserScoreModel{UserID: userID, Points: points, UpdatedAt: now}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"points":     gorm.Expr("user_scores.points + ?", points),
				"updated_at": now,
			}),
		}).
		Create(scoreM).Error
	if err != nil {
		return errors.Wrap(err, "failed to increment user score")
	}

	return nil
}
