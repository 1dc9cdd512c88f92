package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/lingobot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	callbackTopic      = "topic_"
	callbackTopicsPage = "topics_"
	callbackAnswer     = "answer_"

	topicsPerPage = 8

	msgStaleCard = "⌛ This card is no longer active. Pick a topic again."
)

type PracticeSI interface {
	Topics(ctx context.Context) ([]models.Topic, error)
	FirstWord(ctx context.Context, topicID int64) (models.Word, error)
	PresentNext(ctx context.Context, userID, topicID, currentWordID int64) (models.PromptView, error)
	Grade(ctx context.Context, userID int64, state models.PromptState, chosenOptionID int64) (models.GradeResult, error)
}

type PracticeT struct {
	bot     BotSender
	cache   CacheI
	service PracticeSI
	timeout time.Duration
	log     *zap.Logger
}

func NewPracticeTAPI(bot BotSender, cache CacheI, service PracticeSI, timeout time.Duration, log *zap.Logger) *PracticeT {
	return &PracticeT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (p *PracticeT) showTopics(chatID int64, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	topics, err := p.service.Topics(ctx)
	if err != nil {
		p.log.Error("failed to load topics", zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, msgServiceError), p.log)
		return
	}
	if len(topics) == 0 {
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, "📭 No topics yet."), p.log)
		return
	}

	keyboard := topicsKeyboard(topics, page)
	msg := tgbotapi.NewMessage(chatID, "📚 Choose a topic:")
	msg.ReplyMarkup = &keyboard
	sendMessage(p.bot, msg, p.log)
}

func (p *PracticeT) topicsPage(query *tgbotapi.CallbackQuery) {
	page, err := strconv.Atoi(strings.TrimPrefix(query.Data, callbackTopicsPage))
	if err != nil {
		p.log.Warn("bad topics page", zap.String("data", query.Data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	topics, err := p.service.Topics(ctx)
	if err != nil {
		p.log.Error("failed to load topics", zap.Error(err))
		return
	}

	keyboard := topicsKeyboard(topics, page)
	edit := tgbotapi.NewEditMessageReplyMarkup(query.Message.Chat.ID, query.Message.MessageID, keyboard)
	sendMessage(p.bot, edit, p.log)
}

func topicsKeyboard(topics []models.Topic, page int) tgbotapi.InlineKeyboardMarkup {
	pages := (len(topics) + topicsPerPage - 1) / topicsPerPage
	if page < 0 || page >= pages {
		page = 0
	}

	start := page * topicsPerPage
	end := min(start+topicsPerPage, len(topics))

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, topic := range topics[start:end] {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(topic.Title, callbackTopic+strconv.FormatInt(topic.ID, 10)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️", fmt.Sprintf("%s%d", callbackTopicsPage, page-1)))
	}
	if page < pages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("➡️", fmt.Sprintf("%s%d", callbackTopicsPage, page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (p *PracticeT) startTopic(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	topicID, err := strconv.ParseInt(strings.TrimPrefix(query.Data, callbackTopic), 10, 64)
	if err != nil {
		p.log.Warn("bad topic id", zap.String("data", query.Data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	word, err := p.service.FirstWord(ctx, topicID)
	if err != nil {
		p.log.Error("failed to start topic", zap.Int64("topic_id", topicID), zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, serviceErrorText(err)), p.log)
		return
	}

	view, err := p.service.PresentNext(ctx, userID, topicID, word.ID)
	if err != nil {
		p.log.Error("failed to present card",
			zap.Int64("user_id", userID),
			zap.Int64("topic_id", topicID),
			zap.Int64("word_id", word.ID),
			zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, serviceErrorText(err)), p.log)
		return
	}

	if err := p.cache.SetPrompt(ctx, userID, view.State()); err != nil {
		p.log.Error("failed to store prompt", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, msgServiceError), p.log)
		return
	}

	sendMessage(p.bot, editCard(query.Message, view, ""), p.log)
	p.sendAudio(chatID, view)
}

// processAnswer grades the chosen option. A wrong answer only shows an alert
// and leaves the card as it is. Buttons of a card other than the active one
// are rejected without grading.
func (p *PracticeT) processAnswer(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	wordID, chosen, err := parseAnswer(query.Data)
	if err != nil {
		p.log.Warn("bad answer data", zap.String("data", query.Data))
		answerCallback(p.bot, query, "", false, p.log)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	state, ok, err := p.cache.Prompt(ctx, userID)
	if err != nil {
		p.log.Error("failed to load prompt", zap.Int64("user_id", userID), zap.Error(err))
		answerCallback(p.bot, query, msgServiceError, true, p.log)
		return
	}
	if !ok || state.WordID != wordID {
		answerCallback(p.bot, query, msgStaleCard, true, p.log)
		return
	}

	result, err := p.service.Grade(ctx, userID, state, chosen)
	if err != nil {
		p.log.Error("failed to grade answer", zap.Int64("user_id", userID), zap.Int64("word_id", state.WordID), zap.Error(err))
		answerCallback(p.bot, query, serviceErrorText(err), true, p.log)
		return
	}

	if !result.Correct {
		answerCallback(p.bot, query, "❌ Wrong, try again!", true, p.log)
		return
	}

	answerCallback(p.bot, query, "✅ Correct!", false, p.log)

	view, err := p.service.PresentNext(ctx, userID, state.TopicID, result.WordID)
	if err != nil {
		p.log.Error("failed to present next card",
			zap.Int64("user_id", userID),
			zap.Int64("topic_id", state.TopicID),
			zap.Int64("word_id", result.WordID),
			zap.Error(err))
		_ = p.cache.DeletePrompt(ctx, userID)
		edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, "✅ Correct!\n\n"+serviceErrorText(err))
		sendMessage(p.bot, edit, p.log)
		return
	}

	if err := p.cache.SetPrompt(ctx, userID, view.State()); err != nil {
		p.log.Error("failed to store prompt", zap.Int64("user_id", userID), zap.Error(err))
	}

	sendMessage(p.bot, editCard(query.Message, view, "✅ Correct!\n\n"), p.log)
	p.sendAudio(query.Message.Chat.ID, view)
}

func (p *PracticeT) sendAudio(chatID int64, view models.PromptView) {
	if view.AudioFileID == "" {
		return
	}
	sendMessage(p.bot, tgbotapi.NewAudio(chatID, tgbotapi.FileID(view.AudioFileID)), p.log)
}

// parseAnswer splits "answer_<wordID>_<optionID>".
func parseAnswer(data string) (wordID, optionID int64, err error) {
	word, option, found := strings.Cut(strings.TrimPrefix(data, callbackAnswer), "_")
	if !found {
		return 0, 0, fmt.Errorf("answer %q: missing option", data)
	}
	if wordID, err = strconv.ParseInt(word, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("answer %q: %w", data, err)
	}
	if optionID, err = strconv.ParseInt(option, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("answer %q: %w", data, err)
	}
	return wordID, optionID, nil
}

func cardText(view models.PromptView) string {
	return fmt.Sprintf("%s %s\n\nChoose the translation:", view.Tier.Symbol(), view.WordText)
}

func cardKeyboard(view models.PromptView) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)

	for _, o := range view.Options {
		data := fmt.Sprintf("%s%d_%d", callbackAnswer, view.WordID, o.OptionID)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(o.Text, data))
		if len(row) == 2 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏪ Back", callbackMainMenu),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func editCard(message *tgbotapi.Message, view models.PromptView, header string) tgbotapi.EditMessageTextConfig {
	keyboard := cardKeyboard(view)
	edit := tgbotapi.NewEditMessageTextAndMarkup(message.Chat.ID, message.MessageID, header+cardText(view), keyboard)
	return edit
}
