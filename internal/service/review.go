package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/DanRulev/lingobot.git/internal/metrics"
	"github.com/DanRulev/lingobot.git/internal/models"
	"go.uber.org/zap"
)

const (
	distractorCount              = 3
	defaultMaxDistractorAttempts = 20
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type ReviewOptions struct {
	DecayDays             int
	MaxDistractorAttempts int
}

type ReviewS struct {
	words        WordRI
	translations TranslationRI
	reviews      ReviewRI
	users        UserRI
	media        MediaRI
	clock        Clock
	shuffle      func(n int, swap func(i, j int))
	decayDays    int
	maxAttempts  int
	log          *zap.Logger
}

func NewReviewService(words WordRI, translations TranslationRI, reviews ReviewRI, users UserRI, media MediaRI, opts ReviewOptions, log *zap.Logger) *ReviewS {
	if opts.DecayDays <= 0 {
		opts.DecayDays = DefaultDecayDays
	}
	if opts.MaxDistractorAttempts <= 0 {
		opts.MaxDistractorAttempts = defaultMaxDistractorAttempts
	}

	return &ReviewS{
		words:        words,
		translations: translations,
		reviews:      reviews,
		users:        users,
		media:        media,
		clock:        systemClock{},
		shuffle:      rand.Shuffle,
		decayDays:    opts.DecayDays,
		maxAttempts:  opts.MaxDistractorAttempts,
		log:          log,
	}
}

// FirstWord returns the word a practice session over the topic starts with.
func (r *ReviewS) FirstWord(ctx context.Context, topicID int64) (models.Word, error) {
	words, err := read(ctx, "words_in_topic", func(ctx context.Context) ([]models.Word, error) {
		return r.words.WordsInTopic(ctx, topicID)
	})
	if err != nil {
		return models.Word{}, err
	}
	if len(words) == 0 {
		return models.Word{}, fmt.Errorf("topic %d has no words: %w", topicID, models.ErrNotFound)
	}
	return words[0], nil
}

// NextWord returns the word after currentWordID in topic order, wrapping
// around to the first one after the last.
func (r *ReviewS) NextWord(ctx context.Context, topicID, currentWordID int64) (models.Word, error) {
	words, err := read(ctx, "words_in_topic", func(ctx context.Context) ([]models.Word, error) {
		return r.words.WordsInTopic(ctx, topicID)
	})
	if err != nil {
		return models.Word{}, err
	}

	for i, w := range words {
		if w.ID == currentWordID {
			return words[(i+1)%len(words)], nil
		}
	}
	return models.Word{}, fmt.Errorf("word %d in topic %d: %w", currentWordID, topicID, models.ErrNotFound)
}

// PresentNext builds the multiple choice card for currentWordID. The review
// row is created on first sight.
func (r *ReviewS) PresentNext(ctx context.Context, userID, topicID, currentWordID int64) (models.PromptView, error) {
	user, err := read(ctx, "user", func(ctx context.Context) (models.User, error) {
		return r.users.User(ctx, userID)
	})
	if err != nil {
		return models.PromptView{}, err
	}

	word, err := read(ctx, "word", func(ctx context.Context) (models.Word, error) {
		return r.words.Word(ctx, currentWordID)
	})
	if err != nil {
		return models.PromptView{}, err
	}
	if word.TopicID != topicID {
		return models.PromptView{}, fmt.Errorf("word %d in topic %d: %w", currentWordID, topicID, models.ErrNotFound)
	}

	review, err := r.reviewFor(ctx, userID, word.ID)
	if err != nil {
		return models.PromptView{}, err
	}

	effective := EffectiveCount(review.Count, review.LastTouched(), r.clock.Now(), r.decayDays)

	correct, err := read(ctx, "translation_for", func(ctx context.Context) (models.Translation, error) {
		return r.translations.TranslationFor(ctx, word.ID, user.LanguageCode)
	})
	if errors.Is(err, models.ErrNotFound) {
		return models.PromptView{}, fmt.Errorf("word %d in %s: %w", word.ID, user.LanguageCode, models.ErrMissingTranslation)
	}
	if err != nil {
		return models.PromptView{}, err
	}

	distractors, err := r.pickDistractors(ctx, user.LanguageCode, correct)
	if err != nil {
		return models.PromptView{}, err
	}

	options := make([]models.Option, 0, distractorCount+1)
	options = append(options, models.Option{Text: correct.Text, OptionID: correct.WordID})
	for _, d := range distractors {
		options = append(options, models.Option{Text: d.Text, OptionID: d.WordID})
	}
	r.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	metrics.PromptsTotal.Inc()

	return models.PromptView{
		UserID:          userID,
		TopicID:         topicID,
		WordID:          word.ID,
		ReviewID:        review.ID,
		WordText:        word.Text,
		Tier:            TierFor(effective),
		Options:         options,
		CorrectOptionID: correct.WordID,
		AudioFileID:     r.audioFor(ctx, word.ID),
	}, nil
}

// audioFor returns the word's audio file id, or "" when it has none or the
// lookup fails.
func (r *ReviewS) audioFor(ctx context.Context, wordID int64) string {
	media, err := read(ctx, "word_media", func(ctx context.Context) (models.Media, error) {
		return r.media.WordMedia(ctx, wordID, models.MediaAudio)
	})
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			r.log.Warn("failed to load word audio", zap.Int64("word_id", wordID), zap.Error(err))
		}
		return ""
	}
	return media.FileID
}

func (r *ReviewS) reviewFor(ctx context.Context, userID, wordID int64) (models.Review, error) {
	review, err := read(ctx, "review", func(ctx context.Context) (models.Review, error) {
		return r.reviews.Review(ctx, userID, wordID)
	})
	if err == nil {
		return review, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.Review{}, err
	}

	review, err = write(ctx, "create_review", func(ctx context.Context) (models.Review, error) {
		return r.reviews.CreateReview(ctx, userID, wordID)
	})
	if err != nil {
		return models.Review{}, err
	}

	r.log.Debug("review created", zap.Int64("user_id", userID), zap.Int64("word_id", wordID))
	return review, nil
}

// pickDistractors collects translations of other words in the locale. A
// sample is drawn repeatedly, keeping only candidates that are not the
// correct answer and not a repeat, until enough are found or attempts run
// out.
func (r *ReviewS) pickDistractors(ctx context.Context, locale string, correct models.Translation) ([]models.Translation, error) {
	picked := make([]models.Translation, 0, distractorCount)
	seenWords := map[int64]struct{}{correct.WordID: {}}
	seenTexts := map[string]struct{}{normalize(correct.Text): {}}

	for attempt := 0; attempt < r.maxAttempts && len(picked) < distractorCount; attempt++ {
		sample, err := read(ctx, "random_translations", func(ctx context.Context) ([]models.Translation, error) {
			return r.translations.RandomTranslations(ctx, locale, distractorCount)
		})
		if err != nil {
			return nil, err
		}

		for _, t := range sample {
			if t.ID == correct.ID {
				continue
			}
			if _, dup := seenWords[t.WordID]; dup {
				continue
			}
			if _, dup := seenTexts[normalize(t.Text)]; dup {
				continue
			}

			seenWords[t.WordID] = struct{}{}
			seenTexts[normalize(t.Text)] = struct{}{}
			picked = append(picked, t)
			if len(picked) == distractorCount {
				break
			}
		}
	}

	if len(picked) < distractorCount {
		metrics.DistractorShortfallTotal.Inc()
		r.log.Warn("not enough distractors",
			zap.String("locale", locale),
			zap.Int("got", len(picked)),
			zap.Int("required", distractorCount),
			zap.Int("attempts", r.maxAttempts))
		return nil, fmt.Errorf("locale %s: %d of %d distractors: %w", locale, len(picked), distractorCount, models.ErrInsufficientData)
	}

	return picked, nil
}

// Grade checks the chosen option against the card. A correct answer bumps
// the review and moves on; a wrong one changes nothing. The next word is
// resolved before the review is written, so a failed read leaves no
// partial progress.
func (r *ReviewS) Grade(ctx context.Context, userID int64, state models.PromptState, chosenOptionID int64) (models.GradeResult, error) {
	if state.UserID != userID {
		return models.GradeResult{}, fmt.Errorf("card of user %d answered by %d: %w", state.UserID, userID, models.ErrNotFound)
	}

	if chosenOptionID != state.CorrectOptionID {
		metrics.AnswersTotal.WithLabelValues("wrong").Inc()
		return models.GradeResult{Correct: false, WordID: state.WordID}, nil
	}

	next, err := r.NextWord(ctx, state.TopicID, state.WordID)
	if err != nil {
		return models.GradeResult{}, err
	}

	review, err := write(ctx, "increment_review", func(ctx context.Context) (models.Review, error) {
		return r.reviews.IncrementReview(ctx, state.ReviewID)
	})
	if err != nil {
		r.log.Warn("failed to increment review", zap.Int64("review_id", state.ReviewID), zap.Error(err))
		return models.GradeResult{}, err
	}
	metrics.AnswersTotal.WithLabelValues("correct").Inc()

	r.log.Debug("answer graded",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", state.WordID),
		zap.Int("count", review.Count),
		zap.Int64("next_word_id", next.ID))

	return models.GradeResult{Correct: true, WordID: next.ID}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
