package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DanRulev/lingobot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	callbackRegLanguage     = "reglang_"
	callbackRegConfirm      = "reg_confirm"
	callbackRegRestart      = "reg_restart"
	callbackProfileLanguage = "profile_lang"
	callbackSetLanguage     = "setlang_"

	maxNicknameLen = 64
)

type UserSI interface {
	Register(ctx context.Context, user models.User) error
	User(ctx context.Context, id int64) (models.User, error)
	SetLanguage(ctx context.Context, id int64, code string) error
	Languages(ctx context.Context) ([]models.Language, error)
}

// ProfileT runs registration and the profile screen.
type ProfileT struct {
	bot     BotSender
	cache   CacheI
	service UserSI
	timeout time.Duration
	log     *zap.Logger
}

func NewProfileTAPI(bot BotSender, cache CacheI, service UserSI, timeout time.Duration, log *zap.Logger) *ProfileT {
	return &ProfileT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (p *ProfileT) startRegistration(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	languages, err := p.service.Languages(ctx)
	if err != nil {
		p.log.Error("failed to load languages", zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, msgServiceError), p.log)
		return
	}

	if err := p.cache.SetSession(ctx, userID, models.Session{Stage: models.StageRegLanguage}); err != nil {
		p.log.Error("failed to store session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, msgServiceError), p.log)
		return
	}

	keyboard := languagesKeyboard(languages, callbackRegLanguage, "")
	msg := tgbotapi.NewMessage(chatID, "🤖 Hi! I help you learn words.\n\n🌐 First, choose your language:")
	msg.ReplyMarkup = &keyboard
	sendMessage(p.bot, msg, p.log)
}

func (p *ProfileT) handleRegistrationCallback(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if query.Data == callbackRegRestart {
		p.startRegistration(chatID, userID)
		return
	}

	session, ok, err := p.cache.Session(ctx, userID)
	if err != nil {
		p.log.Error("failed to load session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, msgServiceError), p.log)
		return
	}
	if !ok {
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, "⌛ Registration expired. Send /start again."), p.log)
		return
	}

	switch {
	case strings.HasPrefix(query.Data, callbackRegLanguage) && session.Stage == models.StageRegLanguage:
		session.LanguageCode = strings.TrimPrefix(query.Data, callbackRegLanguage)
		session.Stage = models.StageRegNickname
		if err := p.cache.SetSession(ctx, userID, session); err != nil {
			p.log.Error("failed to store session", zap.Int64("user_id", userID), zap.Error(err))
			return
		}
		edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, "✍️ Now send me your nickname.")
		sendMessage(p.bot, edit, p.log)

	case query.Data == callbackRegConfirm && session.Stage == models.StageRegConfirm:
		p.finishRegistration(ctx, query, session)

	default:
		p.log.Debug("registration callback out of order",
			zap.Int64("user_id", userID),
			zap.String("data", query.Data),
			zap.String("stage", session.Stage))
	}
}

func (p *ProfileT) receiveNickname(message *tgbotapi.Message, session models.Session) {
	userID := message.From.ID
	nickname := strings.TrimSpace(message.Text)

	if nickname == "" || utf8.RuneCountInString(nickname) > maxNicknameLen {
		text := fmt.Sprintf("⚠️ The nickname must be 1 to %d characters long. Try again.", maxNicknameLen)
		sendMessage(p.bot, tgbotapi.NewMessage(message.Chat.ID, text), p.log)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	session.Nickname = nickname
	session.Stage = models.StageRegConfirm
	if err := p.cache.SetSession(ctx, userID, session); err != nil {
		p.log.Error("failed to store session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(message.Chat.ID, msgServiceError), p.log)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Confirm", callbackRegConfirm),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Start over", callbackRegRestart),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf("🔅 Nickname: %s\n🌐 Language: %s\n\nIs that right?", nickname, session.LanguageCode))
	msg.ReplyMarkup = &keyboard
	sendMessage(p.bot, msg, p.log)
}

func (p *ProfileT) finishRegistration(ctx context.Context, query *tgbotapi.CallbackQuery, session models.Session) {
	from := query.From
	chatID := query.Message.Chat.ID

	user := models.User{
		ID:           from.ID,
		Username:     session.Nickname,
		TgFirstName:  from.FirstName,
		TgLastName:   from.LastName,
		TgUsername:   from.UserName,
		LanguageCode: session.LanguageCode,
	}

	if err := p.service.Register(ctx, user); err != nil {
		p.log.Error("failed to register user", zap.Int64("user_id", from.ID), zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, msgServiceError), p.log)
		return
	}

	if err := p.cache.DeleteSession(ctx, from.ID); err != nil {
		p.log.Warn("failed to clear session", zap.Int64("user_id", from.ID), zap.Error(err))
	}

	edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, fmt.Sprintf("🎉 Welcome, %s!", session.Nickname))
	sendMessage(p.bot, edit, p.log)

	msg := tgbotapi.NewMessage(chatID, "🏠 Main menu:")
	msg.ReplyMarkup = generateMenuKeyboard()
	sendMessage(p.bot, msg, p.log)
}

func (p *ProfileT) showProfile(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	user, err := p.service.User(ctx, userID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			p.log.Error("failed to load user", zap.Int64("user_id", userID), zap.Error(err))
		}
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, serviceErrorText(err)), p.log)
		return
	}

	language := user.LanguageCode
	if languages, err := p.service.Languages(ctx); err == nil {
		language = languageTitle(languages, user.LanguageCode)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Change language", callbackProfileLanguage),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🔅 Nickname: %s\n🌐 Language: %s", user.Username, language))
	msg.ReplyMarkup = &keyboard
	sendMessage(p.bot, msg, p.log)
}

func (p *ProfileT) handleProfileCallback(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	languages, err := p.service.Languages(ctx)
	if err != nil {
		p.log.Error("failed to load languages", zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, msgServiceError), p.log)
		return
	}

	if query.Data == callbackProfileLanguage {
		keyboard := languagesKeyboard(languages, callbackSetLanguage, "")
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID, "🌐 Choose a language:", keyboard)
		sendMessage(p.bot, edit, p.log)
		return
	}

	code := strings.TrimPrefix(query.Data, callbackSetLanguage)
	if err := p.service.SetLanguage(ctx, userID, code); err != nil {
		p.log.Error("failed to change language", zap.Int64("user_id", userID), zap.String("code", code), zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, serviceErrorText(err)), p.log)
		return
	}

	// a card in the old language can no longer be graded against it
	if err := p.cache.DeletePrompt(ctx, userID); err != nil {
		p.log.Warn("failed to clear prompt", zap.Int64("user_id", userID), zap.Error(err))
	}

	edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, "✅ Language changed to "+languageTitle(languages, code))
	sendMessage(p.bot, edit, p.log)
}
