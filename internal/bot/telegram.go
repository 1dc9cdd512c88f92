package bot

import (
	"context"
	"time"

	"github.com/DanRulev/lingobot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/mock_service.go

type ServiceI interface {
	PracticeSI
	UserSI
	TranslateSI
	AdminSI
}

type CacheI interface {
	SetPrompt(ctx context.Context, userID int64, state models.PromptState) error
	Prompt(ctx context.Context, userID int64) (models.PromptState, bool, error)
	DeletePrompt(ctx context.Context, userID int64) error
	SetSession(ctx context.Context, userID int64, session models.Session) error
	Session(ctx context.Context, userID int64) (models.Session, bool, error)
	DeleteSession(ctx context.Context, userID int64) error
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Options struct {
	Env     string
	Timeout time.Duration
	IsAdmin func(userID int64) bool
}

type TelegramAPI struct {
	api       *tgbotapi.BotAPI
	bot       BotSender
	service   ServiceI
	cache     CacheI
	practice  *PracticeT
	profile   *ProfileT
	translate *TranslateT
	admin     *AdminT
	isAdmin   func(userID int64) bool
	timeout   time.Duration
	log       *zap.Logger
}

func NewTelegramAPI(botToken string, opts Options, service ServiceI, cache CacheI, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = opts.Env == "development"

	t := newTelegramAPI(api, opts, service, cache, log)
	t.api = api

	log.Info("authorized on telegram", zap.String("account", api.Self.UserName))
	return t, nil
}

func newTelegramAPI(bot BotSender, opts Options, service ServiceI, cache CacheI, log *zap.Logger) *TelegramAPI {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	if opts.IsAdmin == nil {
		opts.IsAdmin = func(int64) bool { return false }
	}

	return &TelegramAPI{
		bot:       bot,
		service:   service,
		cache:     cache,
		practice:  NewPracticeTAPI(bot, cache, service, opts.Timeout, log),
		profile:   NewProfileTAPI(bot, cache, service, opts.Timeout, log),
		translate: NewTranslateTAPI(bot, cache, service, opts.Timeout, log),
		admin:     NewAdminTAPI(bot, service, opts.Timeout, log),
		isAdmin:   opts.IsAdmin,
		timeout:   opts.Timeout,
		log:       log,
	}
}

// Start polls for updates until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info("telegram polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Error("panic while handling update", zap.Int("update_id", update.UpdateID), zap.Any("panic", r))
		}
	}()

	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func (t *TelegramAPI) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), t.timeout)
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("message sent", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

func answerCallback(bot BotSender, query *tgbotapi.CallbackQuery, text string, alert bool, log *zap.Logger) {
	callback := tgbotapi.NewCallback(query.ID, text)
	callback.ShowAlert = alert
	if _, err := bot.Request(callback); err != nil {
		log.Warn("failed to answer callback", zap.String("callback_id", query.ID), zap.Error(err))
	}
}
