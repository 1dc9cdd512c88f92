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
	commandAddTopic   = "add_topic"
	commandAddElement = "add_element"
	commandAddAudio   = "add_audio"

	usageAddTopic   = "Usage: /add_topic <title>"
	usageAddElement = "Usage: /add_element <topic_id> <word> | en=<translation> | ru=<translation>"
	usageAddAudio   = "Usage: reply to an audio message with /add_audio <word_id>"
)

type AdminSI interface {
	AddTopic(ctx context.Context, title string) (models.Topic, error)
	AddWord(ctx context.Context, topicID int64, text string, translations map[string]string) (models.Word, error)
	AddAudio(ctx context.Context, wordID int64, fileID string) error
}

// AdminT edits course content. Callers check admin rights first.
type AdminT struct {
	bot     BotSender
	service AdminSI
	timeout time.Duration
	log     *zap.Logger
}

func NewAdminTAPI(bot BotSender, service AdminSI, timeout time.Duration, log *zap.Logger) *AdminT {
	return &AdminT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (a *AdminT) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case commandAddTopic:
		a.addTopic(message)
	case commandAddElement:
		a.addElement(message)
	case commandAddAudio:
		a.addAudio(message)
	}
}

func (a *AdminT) addTopic(message *tgbotapi.Message) {
	title := strings.TrimSpace(message.CommandArguments())
	if title == "" {
		a.reply(message, usageAddTopic)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	topic, err := a.service.AddTopic(ctx, title)
	if err != nil {
		a.log.Error("failed to add topic", zap.Int64("user_id", message.From.ID), zap.Error(err))
		a.reply(message, serviceErrorText(err))
		return
	}

	a.reply(message, fmt.Sprintf("✅ Topic #%d added: %s", topic.ID, topic.Title))
}

func (a *AdminT) addElement(message *tgbotapi.Message) {
	topicID, text, translations, err := parseElement(message.CommandArguments())
	if err != nil {
		a.log.Debug("bad add_element arguments", zap.String("args", message.CommandArguments()), zap.Error(err))
		a.reply(message, usageAddElement)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	word, err := a.service.AddWord(ctx, topicID, text, translations)
	if err != nil {
		a.log.Error("failed to add word",
			zap.Int64("user_id", message.From.ID),
			zap.Int64("topic_id", topicID),
			zap.Error(err))
		a.reply(message, serviceErrorText(err))
		return
	}

	a.reply(message, fmt.Sprintf("✅ Word #%d added to topic #%d: %s (%d translations)", word.ID, topicID, word.Text, len(translations)))
}

func (a *AdminT) addAudio(message *tgbotapi.Message) {
	wordID, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil || message.ReplyToMessage == nil || message.ReplyToMessage.Audio == nil {
		a.reply(message, usageAddAudio)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.service.AddAudio(ctx, wordID, message.ReplyToMessage.Audio.FileID); err != nil {
		a.log.Error("failed to add audio", zap.Int64("word_id", wordID), zap.Error(err))
		a.reply(message, serviceErrorText(err))
		return
	}

	a.reply(message, fmt.Sprintf("✅ Audio attached to word #%d", wordID))
}

func (a *AdminT) reply(message *tgbotapi.Message, text string) {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID
	sendMessage(a.bot, msg, a.log)
}

// parseElement reads "<topic_id> <word> | <code>=<translation> | ...".
func parseElement(args string) (int64, string, map[string]string, error) {
	parts := strings.Split(args, "|")

	head := strings.Fields(parts[0])
	if len(head) < 2 {
		return 0, "", nil, fmt.Errorf("expected topic id and word, got %q", parts[0])
	}
	topicID, err := strconv.ParseInt(head[0], 10, 64)
	if err != nil {
		return 0, "", nil, fmt.Errorf("topic id: %w", err)
	}
	text := strings.Join(head[1:], " ")

	translations := make(map[string]string, len(parts)-1)
	for _, part := range parts[1:] {
		code, tr, found := strings.Cut(part, "=")
		code, tr = strings.ToLower(strings.TrimSpace(code)), strings.TrimSpace(tr)
		if !found || code == "" || tr == "" {
			return 0, "", nil, fmt.Errorf("translation %q: expected <code>=<text>", part)
		}
		translations[code] = tr
	}
	if len(translations) == 0 {
		return 0, "", nil, fmt.Errorf("no translations")
	}

	return topicID, text, translations, nil
}
