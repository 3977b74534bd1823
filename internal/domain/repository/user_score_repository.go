package repository

import "context"

// UserScoreRepository tracks contribution points.
type UserScoreRepository interface {
	// IncrementUserScore adds points, creating the score row on first use.
	IncrementUserScore(ctx context.Context, userID string, points int) error
}
