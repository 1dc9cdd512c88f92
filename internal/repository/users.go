package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/lingobot.git/internal/models"
)

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

func (u *UsersR) User(ctx context.Context, id int64) (models.User, error) {
	query := `
		SELECT id, username, tg_first_name, tg_last_name, tg_username, language_code, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	if err := u.db.GetContext(ctx, &user, query, id); err != nil {
		return models.User{}, dbError(fmt.Sprintf("user %d", id), err)
	}
	return user, nil
}

func (u *UsersR) AddUser(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (id, username, tg_first_name, tg_last_name, tg_username, language_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			username = EXCLUDED.username,
			tg_first_name = EXCLUDED.tg_first_name,
			tg_last_name = EXCLUDED.tg_last_name,
			tg_username = EXCLUDED.tg_username,
			language_code = EXCLUDED.language_code,
			updated_at = NOW()
	`

	_, err := u.db.ExecContext(ctx, query,
		user.ID, user.Username, user.TgFirstName, user.TgLastName, user.TgUsername, user.LanguageCode)
	if err != nil {
		return dbError(fmt.Sprintf("add user %d", user.ID), err)
	}
	return nil
}

func (u *UsersR) UpdateLanguage(ctx context.Context, id int64, code string) error {
	query := `UPDATE users SET language_code = $2, updated_at = NOW() WHERE id = $1`

	res, err := u.db.ExecContext(ctx, query, id, code)
	if err != nil {
		return dbError(fmt.Sprintf("update language of user %d", id), err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return dbError(fmt.Sprintf("update language of user %d", id), err)
	}
	if n == 0 {
		return fmt.Errorf("update language of user %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func (u *UsersR) Languages(ctx context.Context) ([]models.Language, error) {
	query := `SELECT code, title FROM languages ORDER BY code`

	langs := make([]models.Language, 0)
	if err := u.db.SelectContext(ctx, &langs, query); err != nil {
		return nil, dbError("languages", err)
	}
	return langs, nil
}

func (u *UsersR) Language(ctx context.Context, code string) (models.Language, error) {
	query := `SELECT code, title FROM languages WHERE code = $1`

	var lang models.Language
	if err := u.db.GetContext(ctx, &lang, query, code); err != nil {
		return models.Language{}, dbError(fmt.Sprintf("language %s", code), err)
	}
	return lang, nil
}
