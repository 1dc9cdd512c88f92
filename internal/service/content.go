package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/DanRulev/lingobot.git/internal/models"
	"github.com/DanRulev/lingobot.git/pkg/validator"
	"go.uber.org/zap"
)

const maxContentLen = 128

// ContentS edits the course: topics, their words, translations and audio.
type ContentS struct {
	words        WordRI
	translations TranslationRI
	media        MediaRI
	users        UserRI
	log          *zap.Logger
}

func NewContentService(words WordRI, translations TranslationRI, media MediaRI, users UserRI, log *zap.Logger) *ContentS {
	return &ContentS{
		words:        words,
		translations: translations,
		media:        media,
		users:        users,
		log:          log,
	}
}

func (c *ContentS) AddTopic(ctx context.Context, title string) (models.Topic, error) {
	if err := validator.ValidateVar(title, fmt.Sprintf("required,max=%d", maxContentLen)); err != nil {
		return models.Topic{}, fmt.Errorf("topic title: %w: %w", models.ErrInvalidInput, err)
	}

	topic, err := write(ctx, "add_topic", func(ctx context.Context) (models.Topic, error) {
		return c.words.AddTopic(ctx, title)
	})
	if err != nil {
		return models.Topic{}, err
	}

	c.log.Info("topic added", zap.Int64("topic_id", topic.ID), zap.String("title", topic.Title))
	return topic, nil
}

// AddWord appends a word to the topic together with its translations, keyed
// by language code. Every language must be known before anything is stored.
func (c *ContentS) AddWord(ctx context.Context, topicID int64, text string, translations map[string]string) (models.Word, error) {
	if err := validator.ValidateVar(text, fmt.Sprintf("required,max=%d", maxContentLen)); err != nil {
		return models.Word{}, fmt.Errorf("word: %w: %w", models.ErrInvalidInput, err)
	}
	if len(translations) == 0 {
		return models.Word{}, fmt.Errorf("word %q has no translations: %w", text, models.ErrInvalidInput)
	}

	codes := make([]string, 0, len(translations))
	for code, tr := range translations {
		if err := validator.ValidateVar(tr, fmt.Sprintf("required,max=%d", maxContentLen)); err != nil {
			return models.Word{}, fmt.Errorf("translation to %s: %w: %w", code, models.ErrInvalidInput, err)
		}
		_, err := read(ctx, "language", func(ctx context.Context) (models.Language, error) {
			return c.users.Language(ctx, code)
		})
		if err != nil {
			return models.Word{}, err
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)

	word, err := write(ctx, "add_word", func(ctx context.Context) (models.Word, error) {
		return c.words.AddWord(ctx, topicID, text)
	})
	if err != nil {
		return models.Word{}, err
	}

	for _, code := range codes {
		_, err := write(ctx, "add_translation", func(ctx context.Context) (models.Translation, error) {
			return c.translations.AddTranslation(ctx, word.ID, code, translations[code])
		})
		if err != nil {
			c.log.Warn("word stored without all translations",
				zap.Int64("word_id", word.ID),
				zap.String("language", code),
				zap.Error(err))
			return word, err
		}
	}

	c.log.Info("word added",
		zap.Int64("word_id", word.ID),
		zap.Int64("topic_id", topicID),
		zap.Strings("languages", codes))
	return word, nil
}

// AddAudio attaches a Telegram audio file to the word.
func (c *ContentS) AddAudio(ctx context.Context, wordID int64, fileID string) error {
	if err := validator.ValidateVar(fileID, "required"); err != nil {
		return fmt.Errorf("audio file id: %w: %w", models.ErrInvalidInput, err)
	}

	if _, err := read(ctx, "word", func(ctx context.Context) (models.Word, error) {
		return c.words.Word(ctx, wordID)
	}); err != nil {
		return err
	}

	_, err := write(ctx, "add_media", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.media.AddMedia(ctx, wordID, models.MediaAudio, fileID)
	})
	if err != nil {
		return err
	}

	c.log.Info("audio attached", zap.Int64("word_id", wordID))
	return nil
}
