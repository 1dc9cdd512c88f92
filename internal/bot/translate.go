package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/lingobot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	callbackTranslateSrc = "trsrc_"
	callbackTranslateDst = "trdst_"
)

type TranslateSI interface {
	Translate(ctx context.Context, text, src, dst string) (string, error)
	Languages(ctx context.Context) ([]models.Language, error)
}

type TranslateT struct {
	bot     BotSender
	cache   CacheI
	service TranslateSI
	timeout time.Duration
	log     *zap.Logger
}

func NewTranslateTAPI(bot BotSender, cache CacheI, service TranslateSI, timeout time.Duration, log *zap.Logger) *TranslateT {
	return &TranslateT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *TranslateT) start(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	languages, err := t.service.Languages(ctx)
	if err != nil {
		t.log.Error("failed to load languages", zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, msgServiceError), t.log)
		return
	}

	if err := t.cache.SetSession(ctx, userID, models.Session{Stage: models.StageTranslateSrc}); err != nil {
		t.log.Error("failed to store session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, msgServiceError), t.log)
		return
	}

	keyboard := languagesKeyboard(languages, callbackTranslateSrc, "")
	msg := tgbotapi.NewMessage(chatID, "🌐 Translate from:")
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, msg, t.log)
}

func (t *TranslateT) handleCallback(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	session, ok, err := t.cache.Session(ctx, userID)
	if err != nil || !ok {
		if err != nil {
			t.log.Error("failed to load session", zap.Int64("user_id", userID), zap.Error(err))
		}
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "⌛ Press \""+ButtonTranslate+"\" to start again."), t.log)
		return
	}

	languages, err := t.service.Languages(ctx)
	if err != nil {
		t.log.Error("failed to load languages", zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, msgServiceError), t.log)
		return
	}

	var edit tgbotapi.Chattable
	switch {
	case strings.HasPrefix(query.Data, callbackTranslateSrc) && session.Stage == models.StageTranslateSrc:
		session.SourceLang = strings.TrimPrefix(query.Data, callbackTranslateSrc)
		session.Stage = models.StageTranslateDst
		keyboard := languagesKeyboard(languages, callbackTranslateDst, session.SourceLang)
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID,
			fmt.Sprintf("🌐 %s → ?\n\nTranslate to:", languageTitle(languages, session.SourceLang)), keyboard)

	case strings.HasPrefix(query.Data, callbackTranslateDst) && session.Stage == models.StageTranslateDst:
		session.TargetLang = strings.TrimPrefix(query.Data, callbackTranslateDst)
		session.Stage = models.StageTranslateText
		edit = tgbotapi.NewEditMessageText(chatID, query.Message.MessageID,
			fmt.Sprintf("🌐 %s → %s\n\n✍️ Send me any text to translate.",
				languageTitle(languages, session.SourceLang),
				languageTitle(languages, session.TargetLang)))

	default:
		t.log.Debug("translate callback out of order",
			zap.Int64("user_id", userID),
			zap.String("data", query.Data),
			zap.String("stage", session.Stage))
		return
	}

	if err := t.cache.SetSession(ctx, userID, session); err != nil {
		t.log.Error("failed to store session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, msgServiceError), t.log)
		return
	}
	sendMessage(t.bot, edit, t.log)
}

func (t *TranslateT) translateText(message *tgbotapi.Message, session models.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	result, err := t.service.Translate(ctx, message.Text, session.SourceLang, session.TargetLang)
	if err != nil {
		text := "❌ Translation failed. Try again later."
		if errors.Is(err, models.ErrEmptyTranslation) {
			text = "🤷 No translation found."
		} else {
			t.log.Warn("translate failed",
				zap.String("src", session.SourceLang),
				zap.String("dst", session.TargetLang),
				zap.Error(err))
		}
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, text), t.log)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, result)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyToMessageID = message.MessageID
	sendMessage(t.bot, msg, t.log)
}
