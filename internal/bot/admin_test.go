package bot

import (
	"fmt"
	"strings"
	"testing"

	mock_bot "github.com/DanRulev/lingobot.git/internal/bot/mock"
	"github.com/DanRulev/lingobot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminCommand(userID int64, text string) *tgbotapi.Message {
	length := len(text)
	if i := strings.IndexByte(text, ' '); i > 0 {
		length = i
	}
	return &tgbotapi.Message{
		MessageID: 3,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: testChatID},
		From:      &tgbotapi.User{ID: userID, FirstName: "Anna", UserName: "anna_tg"},
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}
}

func audioReply(userID int64, text, fileID string) *tgbotapi.Message {
	msg := adminCommand(userID, text)
	msg.ReplyToMessage = &tgbotapi.Message{
		MessageID: 2,
		Chat:      &tgbotapi.Chat{ID: testChatID},
		Audio:     &tgbotapi.Audio{FileID: fileID},
	}
	return msg
}

func TestAdminT_handleCommand(t *testing.T) {
	t.Parallel()

	const stranger int64 = 77

	tests := []struct {
		name     string
		message  *tgbotapi.Message
		f        func(*mock_bot.MockServiceI)
		wantText string
	}{
		{
			name:    "add topic",
			message: adminCommand(testUserID, "/add_topic 3 🏠 Zu Hause"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddTopic(gomock.Any(), "3 🏠 Zu Hause").Return(models.Topic{ID: 3, Title: "3 🏠 Zu Hause"}, nil)
			},
			wantText: "✅ Topic #3 added: 3 🏠 Zu Hause",
		},
		{
			name:     "add topic without title",
			message:  adminCommand(testUserID, "/add_topic"),
			wantText: usageAddTopic,
		},
		{
			name:    "add topic rejected for non admin",
			message: adminCommand(stranger, "/add_topic Fruit"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddTopic(gomock.Any(), gomock.Any()).Times(0)
			},
			wantText: msgUnknownCommand,
		},
		{
			name:    "add element",
			message: adminCommand(testUserID, "/add_element 2 Birne | en=pear | RU=груша"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddWord(gomock.Any(), int64(2), "Birne", map[string]string{"en": "pear", "ru": "груша"}).
					Return(models.Word{ID: 13, Text: "Birne", TopicID: 2, Position: 7}, nil)
			},
			wantText: "✅ Word #13 added to topic #2: Birne (2 translations)",
		},
		{
			name:    "add element with a multi word text",
			message: adminCommand(testUserID, "/add_element 1 Guten Morgen | en=good morning"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddWord(gomock.Any(), int64(1), "Guten Morgen", map[string]string{"en": "good morning"}).
					Return(models.Word{ID: 14, Text: "Guten Morgen", TopicID: 1}, nil)
			},
			wantText: "✅ Word #14 added to topic #1: Guten Morgen (1 translations)",
		},
		{
			name:     "add element without translations",
			message:  adminCommand(testUserID, "/add_element 2 Birne"),
			wantText: usageAddElement,
		},
		{
			name:    "add element to unknown topic",
			message: adminCommand(testUserID, "/add_element 99 Birne | en=pear"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddWord(gomock.Any(), int64(99), "Birne", gomock.Any()).
					Return(models.Word{}, fmt.Errorf("topic 99: %w", models.ErrNotFound))
			},
			wantText: msgNotFound,
		},
		{
			name:    "add element rejected for non admin",
			message: adminCommand(stranger, "/add_element 2 Birne | en=pear"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddWord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantText: msgUnknownCommand,
		},
		{
			name:    "add audio",
			message: audioReply(testUserID, "/add_audio 5", "audio-5"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddAudio(gomock.Any(), int64(5), "audio-5").Return(nil)
			},
			wantText: "✅ Audio attached to word #5",
		},
		{
			name:     "add audio without reply",
			message:  adminCommand(testUserID, "/add_audio 5"),
			wantText: usageAddAudio,
		},
		{
			name:    "add audio rejected for non admin",
			message: audioReply(stranger, "/add_audio 5", "audio-5"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddAudio(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantText: msgUnknownCommand,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb, _ := newTelegramAPIMock(t, ctrl, tt.f)
			api.handleUpdate(tgbotapi.Update{Message: tt.message})

			require.Len(t, mb.SentMessages, 1)
			assert.Equal(t, tt.wantText, sentText(t, mb.SentMessages[0]))
		})
	}
}

func TestParseElement(t *testing.T) {
	t.Parallel()

	topicID, text, translations, err := parseElement("4  Käse | en = cheese|uk=сир ")
	require.NoError(t, err)
	assert.Equal(t, int64(4), topicID)
	assert.Equal(t, "Käse", text)
	assert.Equal(t, map[string]string{"en": "cheese", "uk": "сир"}, translations)

	for _, args := range []string{"", "4", "x Käse | en=cheese", "4 Käse | en", "4 Käse | =cheese", "4 Käse | en="} {
		_, _, _, err := parseElement(args)
		assert.Error(t, err, args)
	}
}
