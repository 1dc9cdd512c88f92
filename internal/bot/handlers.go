package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DanRulev/lingobot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonPractice  = "🧠 Practice"
	ButtonTranslate = "🌐 Translate"
	ButtonProfile   = "👤 Profile"
	ButtonHelp      = "ℹ️ Help"
	ButtonMainMenu  = "🏠 Main menu"
)

const (
	callbackMainMenu = "main_menu"

	msgUnknownCommand = "Unknown command. Use /start"
	msgNotUnderstood  = "I didn't get that. Use the buttons below."
	msgServiceError   = "❌ Something went wrong. Try again later."
	msgNotFound       = "🤷 Nothing found. If you are new here, send /start to register."
	msgNotEnoughWords = "😔 Not enough words in your language yet. Try another topic or language."
	msgNoTranslation  = "🌐 This topic has no translations to your language yet. Pick another topic or change the language in your profile."
	msgInvalidInput   = "✏️ Check the input and try again."
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "id":
		t.handleIDCommand(message)
	case commandAddTopic, commandAddElement, commandAddAudio:
		if message.From == nil || !t.isAdmin(message.From.ID) {
			sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, msgUnknownCommand), t.log)
			return
		}
		t.admin.handleCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, msgUnknownCommand)
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := t.requestContext()
	defer cancel()

	_ = t.cache.DeletePrompt(ctx, message.From.ID)

	user, err := t.service.User(ctx, message.From.ID)
	if errors.Is(err, models.ErrNotFound) {
		t.profile.startRegistration(message.Chat.ID, message.From.ID)
		return
	}
	if err != nil {
		t.log.Error("failed to load user", zap.Int64("user_id", message.From.ID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, msgServiceError), t.log)
		return
	}

	_ = t.cache.DeleteSession(ctx, message.From.ID)

	welcomeText := fmt.Sprintf("👋 Welcome back, %s!\n\n"+
		"• 🧠 Practice words by topic\n"+
		"• 🌐 Translate any text\n"+
		"• 👤 Change your language in the profile", user.Username)

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start — start the bot or register
/help — this message
/id — show your Telegram id

🎯 Buttons:
• "Practice" — pick a topic and choose the right translation
• "Translate" — translate text between two languages
• "Profile" — nickname and language

The moon next to a word shows how well you remember it: 🌑 forgotten, 🌕 mastered.
Words you don't practice slowly fade.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleIDCommand(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	text := fmt.Sprintf("🆔 Your id: `%d`", message.From.ID)
	if t.isAdmin(message.From.ID) {
		text += "\n🛡 You are an admin."
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Main menu:")
	msg.ReplyMarkup = generateMenuKeyboard()
	sendMessage(t.bot, msg, t.log)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonPractice),
			tgbotapi.NewKeyboardButton(ButtonTranslate),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProfile),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	text := strings.TrimSpace(message.Text)

	ctx, cancel := t.requestContext()
	defer cancel()

	switch text {
	case ButtonPractice, ButtonTranslate, ButtonProfile, ButtonHelp, ButtonMainMenu:
		// menu buttons leave any flow in progress
		if err := t.cache.DeleteSession(ctx, userID); err != nil {
			t.log.Warn("failed to reset session", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	switch text {
	case ButtonPractice:
		t.practice.showTopics(message.Chat.ID, 0)
		return
	case ButtonTranslate:
		t.translate.start(message.Chat.ID, userID)
		return
	case ButtonProfile:
		t.profile.showProfile(message.Chat.ID, userID)
		return
	case ButtonHelp:
		t.handleHelpCommand(message)
		return
	case ButtonMainMenu:
		t.showMainMenu(message.Chat.ID)
		return
	}

	session, ok, err := t.cache.Session(ctx, userID)
	if err != nil {
		t.log.Error("failed to load session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, msgServiceError), t.log)
		return
	}

	switch {
	case ok && session.Stage == models.StageRegNickname:
		t.profile.receiveNickname(message, session)
	case ok && session.Stage == models.StageTranslateText:
		t.translate.translateText(message, session)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, msgNotUnderstood)
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.From == nil || query.Message == nil {
		t.log.Warn("callback without sender or message", zap.String("callback_id", query.ID))
		answerCallback(t.bot, query, "", false, t.log)
		return
	}

	data := query.Data

	// practice answers its own callbacks to show alerts
	if strings.HasPrefix(data, callbackAnswer) {
		t.practice.processAnswer(query)
		return
	}

	answerCallback(t.bot, query, "", false, t.log)

	switch {
	case strings.HasPrefix(data, callbackTopic):
		t.practice.startTopic(query)
	case strings.HasPrefix(data, callbackTopicsPage):
		t.practice.topicsPage(query)
	case strings.HasPrefix(data, callbackRegLanguage),
		data == callbackRegConfirm,
		data == callbackRegRestart:
		t.profile.handleRegistrationCallback(query)
	case data == callbackProfileLanguage || strings.HasPrefix(data, callbackSetLanguage):
		t.profile.handleProfileCallback(query)
	case strings.HasPrefix(data, callbackTranslateSrc), strings.HasPrefix(data, callbackTranslateDst):
		t.translate.handleCallback(query)
	case data == callbackMainMenu:
		ctx, cancel := t.requestContext()
		defer cancel()
		_ = t.cache.DeletePrompt(ctx, query.From.ID)
		t.showMainMenu(query.Message.Chat.ID)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}

// serviceErrorText maps service errors to what the user is told.
func serviceErrorText(err error) string {
	switch {
	case errors.Is(err, models.ErrMissingTranslation):
		return msgNoTranslation
	case errors.Is(err, models.ErrInvalidInput):
		return msgInvalidInput
	case errors.Is(err, models.ErrInsufficientData):
		return msgNotEnoughWords
	case errors.Is(err, models.ErrNotFound):
		return msgNotFound
	default:
		return msgServiceError
	}
}

// languagesKeyboard lays languages out two per row, skipping exclude.
func languagesKeyboard(languages []models.Language, prefix, exclude string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)

	for _, l := range languages {
		if l.Code == exclude {
			continue
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(l.Title, prefix+l.Code))
		if len(row) == 2 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func languageTitle(languages []models.Language, code string) string {
	for _, l := range languages {
		if l.Code == code {
			return l.Title
		}
	}
	return code
}
