package bot

import (
	"context"
	"fmt"
	"testing"

	mock_bot "github.com/DanRulev/lingobot.git/internal/bot/mock"
	"github.com/DanRulev/lingobot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateT_Flow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mb, c := newTelegramAPIMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().Languages(gomock.Any()).Return(testLanguages, nil).Times(3)
		ms.EXPECT().Translate(gomock.Any(), "good morning", "en", "uk").Return("🌐 доброго ранку", nil)
	})
	ctx := context.Background()

	api.handleUpdate(tgbotapi.Update{Message: textMessage(ButtonTranslate)})
	require.Len(t, mb.SentMessages, 1)
	assert.Equal(t, "🌐 Translate from:", sentText(t, mb.SentMessages[0]))

	api.handleUpdate(tgbotapi.Update{CallbackQuery: callbackQuery("trsrc_en")})
	require.Len(t, mb.SentMessages, 2)
	dst := mb.SentMessages[1].(tgbotapi.EditMessageTextConfig)
	for _, row := range dst.ReplyMarkup.InlineKeyboard {
		for _, b := range row {
			assert.NotEqual(t, "trdst_en", *b.CallbackData)
		}
	}

	api.handleUpdate(tgbotapi.Update{CallbackQuery: callbackQuery("trdst_uk")})
	require.Len(t, mb.SentMessages, 3)
	assert.Contains(t, sentText(t, mb.SentMessages[2]), "Send me any text")

	session, ok, err := c.Session(ctx, testUserID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Session{Stage: models.StageTranslateText, SourceLang: "en", TargetLang: "uk"}, session)

	api.handleUpdate(tgbotapi.Update{Message: textMessage("good morning")})
	require.Len(t, mb.SentMessages, 4)
	assert.Equal(t, "🌐 доброго ранку", sentText(t, mb.SentMessages[3]))
	assert.Len(t, mb.Callbacks(), 2)
}

func TestTranslateT_translateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantText string
	}{
		{name: "nothing found", err: fmt.Errorf("x: %w", models.ErrEmptyTranslation), wantText: "🤷 No translation found."},
		{name: "api failure", err: assert.AnError, wantText: "❌ Translation failed. Try again later."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb, c := newTelegramAPIMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Translate(gomock.Any(), "qwzx", "en", "ru").Return("", tt.err)
			})
			require.NoError(t, c.SetSession(context.Background(), testUserID,
				models.Session{Stage: models.StageTranslateText, SourceLang: "en", TargetLang: "ru"}))

			api.handleUpdate(tgbotapi.Update{Message: textMessage("qwzx")})
			require.Len(t, mb.SentMessages, 1)
			assert.Equal(t, tt.wantText, sentText(t, mb.SentMessages[0]))
		})
	}
}

func TestTranslateT_expiredSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mb, _ := newTelegramAPIMock(t, ctrl, nil)
	api.handleUpdate(tgbotapi.Update{CallbackQuery: callbackQuery("trdst_ru")})

	require.Len(t, mb.SentMessages, 1)
	assert.Contains(t, sentText(t, mb.SentMessages[0]), ButtonTranslate)
}
