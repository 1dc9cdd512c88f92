package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/lingobot.git/internal/models"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

//go:generate mockgen -source=repository.go -destination=mock/mock_repository.go

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*WordsR
	*TranslationsR
	*ReviewsR
	*UsersR
	*MediaR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		WordsR:        NewWordsRepository(db),
		TranslationsR: NewTranslationsRepository(db),
		ReviewsR:      NewReviewsRepository(db),
		UsersR:        NewUsersRepository(db),
		MediaR:        NewMediaRepository(db),
	}
}

// dbError maps driver errors onto the model sentinels. A missing row and a
// reference to a missing row are both ErrNotFound.
func dbError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%s: %w: %s", op, models.ErrNotFound, pqErr.Constraint)
	}
	return fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
}
