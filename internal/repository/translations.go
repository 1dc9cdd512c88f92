package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/lingobot.git/internal/models"
)

type TranslationsR struct {
	db QueryI
}

func NewTranslationsRepository(db QueryI) *TranslationsR {
	return &TranslationsR{db: db}
}

func (t *TranslationsR) TranslationFor(ctx context.Context, wordID int64, locale string) (models.Translation, error) {
	query := `
		SELECT id, element_id, language_code, text
		FROM translations
		WHERE element_id = $1 AND language_code = $2
	`

	var tr models.Translation
	if err := t.db.GetContext(ctx, &tr, query, wordID, locale); err != nil {
		return models.Translation{}, dbError(fmt.Sprintf("translation of word %d to %s", wordID, locale), err)
	}
	return tr, nil
}

// RandomTranslations samples up to count translations of the locale.
func (t *TranslationsR) RandomTranslations(ctx context.Context, locale string, count int) ([]models.Translation, error) {
	query := `
		SELECT id, element_id, language_code, text
		FROM translations
		WHERE language_code = $1
		ORDER BY RANDOM()
		LIMIT $2
	`

	translations := make([]models.Translation, 0, count)
	if err := t.db.SelectContext(ctx, &translations, query, locale, count); err != nil {
		return nil, dbError(fmt.Sprintf("random translations for %s", locale), err)
	}
	return translations, nil
}

// AddTranslation stores the translation, replacing an existing one for the
// same word and language.
func (t *TranslationsR) AddTranslation(ctx context.Context, wordID int64, locale, text string) (models.Translation, error) {
	query := `
		INSERT INTO translations (element_id, language_code, text)
		VALUES ($1, $2, $3)
		ON CONFLICT (element_id, language_code)
		DO UPDATE SET text = EXCLUDED.text
		RETURNING id, element_id, language_code, text
	`

	var tr models.Translation
	if err := t.db.GetContext(ctx, &tr, query, wordID, locale, text); err != nil {
		return models.Translation{}, dbError(fmt.Sprintf("add translation of word %d to %s", wordID, locale), err)
	}
	return tr, nil
}
