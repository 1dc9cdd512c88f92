package service

import (
	"context"
	"fmt"

	"github.com/DanRulev/lingobot.git/internal/models"
	"github.com/DanRulev/lingobot.git/pkg/validator"
	"go.uber.org/zap"
)

type UserS struct {
	repo  UserRI
	words WordRI
	log   *zap.Logger
}

func NewUserService(repo UserRI, words WordRI, log *zap.Logger) *UserS {
	return &UserS{
		repo:  repo,
		words: words,
		log:   log,
	}
}

func (u *UserS) Register(ctx context.Context, user models.User) error {
	if err := validator.ValidateVar(user.Username, "required,max=64"); err != nil {
		return fmt.Errorf("nickname: %w", err)
	}

	if _, err := u.language(ctx, user.LanguageCode); err != nil {
		return err
	}

	_, err := write(ctx, "add_user", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, u.repo.AddUser(ctx, user)
	})
	if err != nil {
		u.log.Warn("failed to register user", zap.Int64("user_id", user.ID), zap.Error(err))
		return err
	}

	u.log.Info("user registered", zap.Int64("user_id", user.ID), zap.String("language", user.LanguageCode))
	return nil
}

func (u *UserS) User(ctx context.Context, id int64) (models.User, error) {
	return read(ctx, "user", func(ctx context.Context) (models.User, error) {
		return u.repo.User(ctx, id)
	})
}

func (u *UserS) SetLanguage(ctx context.Context, id int64, code string) error {
	if _, err := u.language(ctx, code); err != nil {
		return err
	}

	_, err := write(ctx, "update_language", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, u.repo.UpdateLanguage(ctx, id, code)
	})
	return err
}

func (u *UserS) language(ctx context.Context, code string) (models.Language, error) {
	return read(ctx, "language", func(ctx context.Context) (models.Language, error) {
		return u.repo.Language(ctx, code)
	})
}

func (u *UserS) Languages(ctx context.Context) ([]models.Language, error) {
	return read(ctx, "languages", u.repo.Languages)
}

func (u *UserS) Topics(ctx context.Context) ([]models.Topic, error) {
	return read(ctx, "topics", u.words.Topics)
}
