package service

import (
	"context"

	"github.com/DanRulev/lingobot.git/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/mock_service.go

type MyMemoryAPII interface {
	Translate(ctx context.Context, text, src, dst string) (models.MachineTranslation, error)
}

type DictionaryAPII interface {
	DictionaryData(ctx context.Context, text, src, dst string) (models.DictionaryResponse, error)
}

type APII interface {
	MyMemoryAPII
	DictionaryAPII
}

type WordRI interface {
	Word(ctx context.Context, id int64) (models.Word, error)
	WordsInTopic(ctx context.Context, topicID int64) ([]models.Word, error)
	Topics(ctx context.Context) ([]models.Topic, error)
	AddTopic(ctx context.Context, title string) (models.Topic, error)
	AddWord(ctx context.Context, topicID int64, text string) (models.Word, error)
}

type TranslationRI interface {
	TranslationFor(ctx context.Context, wordID int64, locale string) (models.Translation, error)
	RandomTranslations(ctx context.Context, locale string, count int) ([]models.Translation, error)
	AddTranslation(ctx context.Context, wordID int64, locale, text string) (models.Translation, error)
}

type MediaRI interface {
	WordMedia(ctx context.Context, wordID int64, contentType string) (models.Media, error)
	AddMedia(ctx context.Context, wordID int64, contentType, fileID string) error
}

type ReviewRI interface {
	Review(ctx context.Context, userID, wordID int64) (models.Review, error)
	CreateReview(ctx context.Context, userID, wordID int64) (models.Review, error)
	IncrementReview(ctx context.Context, reviewID int64) (models.Review, error)
}

type UserRI interface {
	User(ctx context.Context, id int64) (models.User, error)
	AddUser(ctx context.Context, user models.User) error
	UpdateLanguage(ctx context.Context, id int64, code string) error
	Languages(ctx context.Context) ([]models.Language, error)
	Language(ctx context.Context, code string) (models.Language, error)
}

type RepositoryI interface {
	WordRI
	TranslationRI
	ReviewRI
	UserRI
	MediaRI
}

type Service struct {
	*ReviewS
	*UserS
	*TranslateS
	*ContentS
}

func InitServices(api APII, repo RepositoryI, opts ReviewOptions, log *zap.Logger) *Service {
	return &Service{
		ReviewS:    NewReviewService(repo, repo, repo, repo, repo, opts, log),
		UserS:      NewUserService(repo, repo, log),
		TranslateS: NewTranslateService(api, log),
		ContentS:   NewContentService(repo, repo, repo, repo, log),
	}
}
