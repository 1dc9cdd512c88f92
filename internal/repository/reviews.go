package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/lingobot.git/internal/models"
)

type ReviewsR struct {
	db QueryI
}

func NewReviewsRepository(db QueryI) *ReviewsR {
	return &ReviewsR{db: db}
}

func (r *ReviewsR) Review(ctx context.Context, userID, wordID int64) (models.Review, error) {
	query := `
		SELECT id, user_id, element_id, count, created_at, updated_at
		FROM reviews
		WHERE user_id = $1 AND element_id = $2
	`

	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, userID, wordID); err != nil {
		return models.Review{}, dbError(fmt.Sprintf("review of user %d word %d", userID, wordID), err)
	}
	return review, nil
}

// CreateReview inserts a zero review, or returns the existing row when a
// concurrent request created it first.
func (r *ReviewsR) CreateReview(ctx context.Context, userID, wordID int64) (models.Review, error) {
	query := `
		INSERT INTO reviews (user_id, element_id, count, created_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (user_id, element_id)
		DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, element_id, count, created_at, updated_at
	`

	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, userID, wordID); err != nil {
		return models.Review{}, dbError(fmt.Sprintf("create review of user %d word %d", userID, wordID), err)
	}
	return review, nil
}

// IncrementReview bumps count in a single statement so concurrent answers
// never lose an update.
func (r *ReviewsR) IncrementReview(ctx context.Context, reviewID int64) (models.Review, error) {
	query := `
		UPDATE reviews
		SET count = count + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, element_id, count, created_at, updated_at
	`

	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, reviewID); err != nil {
		return models.Review{}, dbError(fmt.Sprintf("increment review %d", reviewID), err)
	}
	return review, nil
}
