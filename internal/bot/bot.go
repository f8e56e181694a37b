package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"team-tracker/internal/service"
)

// telegramClient is the part of *tgbotapi.BotAPI the handlers use.
type telegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Services bundles the business logic the bot dispatches to.
type Services struct {
	Tasks     *service.TaskService
	Late      *service.LateService
	Reminders *service.ReminderService
}

// Bot aggregates Telegram API with services.
type Bot struct {
	api      telegramClient
	poller   *tgbotapi.BotAPI
	svc      Services
	clock    service.Clock
	sessions *sessionStore
	log      *slog.Logger
}

func New(token string, svc Services, clock service.Clock, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	logger.Info("bot authorized", "account", api.Self.UserName)

	b := newBot(api, svc, clock, logger)
	b.poller = api
	return b, nil
}

func newBot(api telegramClient, svc Services, clock service.Clock, logger *slog.Logger) *Bot {
	return &Bot{
		api:      api,
		svc:      svc,
		clock:    clock,
		sessions: newSessionStore(),
		log:      logger,
	}
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if b.poller == nil {
		return errors.New("bot has no telegram connection")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.poller.GetUpdatesChan(updateConfig)

	b.log.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.poller.StopReceivingUpdates()
	}()

	for update := range updates {
		b.handleUpdate(ctx, update)
	}

	return ctx.Err()
}

// handleUpdate processes one update start to finish; errors end only this
// interaction.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
			b.log.Error("handle callback", "data", update.CallbackQuery.Data, "err", err)
		}
	case update.Message != nil:
		if err := b.handleMessage(ctx, update.Message); err != nil {
			b.log.Error("handle message", "chat", update.Message.Chat.ID, "err", err)
		}
	}
}

// SendReport posts the overdue digest to chatID.
func (b *Bot) SendReport(ctx context.Context, chatID int64) error {
	text, err := b.svc.Reminders.Digest(ctx, b.clock.Now())
	if err != nil {
		return fmt.Errorf("build digest: %w", err)
	}
	return b.sendText(chatID, text, backKeyboard())
}

// sendText posts a new HTML message; markup may be nil.
func (b *Bot) sendText(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	_, err := b.api.Send(msg)
	return err
}

// edit replaces the text and keyboard of a menu message in place.
func (b *Bot) edit(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		return nil
	}
	return err
}

// answer acknowledges a button press, optionally with a toast.
func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.log.Warn("callback ack", "err", err)
	}
}

// replyFailure tells the user an interaction failed and returns the cause.
func (b *Bot) replyFailure(chatID int64, cause error) error {
	if err := b.sendText(chatID, textStoreFailure, mainMenuKeyboard()); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}
