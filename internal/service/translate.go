package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanRulev/lingobot.git/internal/metrics"
	"github.com/DanRulev/lingobot.git/internal/models"
	"github.com/DanRulev/lingobot.git/pkg/validator"
	"go.uber.org/zap"
)

var ErrSameLanguage = errors.New("source and target languages are the same")

type TranslateS struct {
	myMemory   MyMemoryAPII
	dictionary DictionaryAPII
	log        *zap.Logger
}

func NewTranslateService(api APII, log *zap.Logger) *TranslateS {
	return &TranslateS{
		myMemory:   api,
		dictionary: api,
		log:        log,
	}
}

// Translate asks MyMemory first and falls back to the dictionary API when
// it has nothing.
func (t *TranslateS) Translate(ctx context.Context, text, src, dst string) (string, error) {
	text = strings.TrimSpace(text)
	if err := validator.ValidateVar(text, "required,max=500"); err != nil {
		return "", fmt.Errorf("text: %w", err)
	}
	if src == dst {
		return "", ErrSameLanguage
	}

	mt, err := t.myMemory.Translate(ctx, text, src, dst)
	if err != nil {
		t.log.Warn("mymemory translate failed", zap.String("pair", src+"|"+dst), zap.Error(err))
	}
	if mt.Error != "" {
		t.log.Warn("mymemory rejected request", zap.String("details", mt.Error))
	}

	translation := mt.Text
	if translation == "" {
		dict, err := t.dictionary.DictionaryData(ctx, text, src, dst)
		if err != nil {
			t.log.Warn("dictionary lookup failed", zap.String("text", text), zap.Error(err))
		}
		translation = dict.DestinationText
	}

	if translation == "" {
		metrics.TranslationsTotal.WithLabelValues("empty").Inc()
		return "", fmt.Errorf("%q %s->%s: %w", text, src, dst, models.ErrEmptyTranslation)
	}

	metrics.TranslationsTotal.WithLabelValues("ok").Inc()
	return formatTranslation(text, translation, mt), nil
}

func formatTranslation(text, translation string, mt models.MachineTranslation) string {
	var sb strings.Builder

	sb.WriteString("📚 *")
	sb.WriteString(escapeMarkdown(text))
	sb.WriteString("*\n\n")

	sb.WriteString("🌐 ")
	sb.WriteString(escapeMarkdown(translation))
	sb.WriteString("\n")

	if alts := removeDuplicates(mt.Alternatives); len(alts) > 0 {
		sb.WriteString("\n🔄 *Alternatives*: ")
		sb.WriteString(strings.Join(escapeSlice(alts), ", "))
		sb.WriteString("\n")
	}

	if mt.Match > 0 {
		quality := "low"
		if mt.Match >= 0.7 {
			quality = "high"
		} else if mt.Match >= 0.4 {
			quality = "medium"
		}
		sb.WriteString(fmt.Sprintf("📊 *Quality*: %.1f (%s)\n", mt.Match, quality))
	}

	return strings.TrimSpace(sb.String())
}

func escapeMarkdown(text string) string {
	for _, c := range []string{"_", "*", "`", "["} {
		text = strings.ReplaceAll(text, c, "\\"+c)
	}
	return text
}

func escapeSlice(strs []string) []string {
	result := make([]string, len(strs))
	for i, s := range strs {
		result[i] = escapeMarkdown(s)
	}
	return result
}

func removeDuplicates(slice []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
