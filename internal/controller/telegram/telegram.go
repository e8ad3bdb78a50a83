package telegram

import (
	"context"
	"encoding/json"
	"fmt"

	"yitio/config"
	"yitio/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type TelegramBot struct {
	logger      *zap.Logger
	config      *config.Telegram
	frontendURL string
	service     *service.Service
	Bot         *tgbotapi.BotAPI
	router      *CommandRouter
	callbacks   *CallbackRouter
	sessions    *SessionStore
}

func NewTelegramBot(config *config.Config, logger *zap.Logger, s *service.Service) *TelegramBot {
	return &TelegramBot{
		logger:      logger,
		config:      &config.Telegram,
		frontendURL: config.Server.FrontendURL,
		service:     s,
		sessions:    NewSessionStore(DefaultSessionTTL),
	}
}

func (b *TelegramBot) StartBot() error {
	bot, err := tgbotapi.NewBotAPI(b.config.Token)
	if err != nil {
		return err
	}

	b.logger.Info("Connected", zap.String("Bot Name", bot.Self.FirstName))

	bot.Debug = b.config.Debug
	b.Bot = bot
	b.RegisterRoutes()

	return nil
}

// SetCommands publishes the command menu. The admin entry only appears when
// an admin identity is configured.
func (b *TelegramBot) SetCommands() error {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "premium", Description: "Premium status & purchase"},
	}
	if b.config.AdminID != 0 {
		commands = append(commands, tgbotapi.BotCommand{Command: "admin", Description: "Admin panel"})
	}

	_, err := b.Bot.Request(tgbotapi.NewSetMyCommands(commands...))
	return err
}

// SetWebhook registers the inbound webhook with Telegram. Goes through the
// raw API so the shared-secret token and update filter are included.
func (b *TelegramBot) SetWebhook(baseURL string) error {
	allowed, err := json.Marshal([]string{"message", "callback_query", "pre_checkout_query"})
	if err != nil {
		return err
	}

	params := tgbotapi.Params{
		"url":                  baseURL + "/webhook",
		"drop_pending_updates": "true",
		"allowed_updates":      string(allowed),
	}
	params.AddNonEmpty("secret_token", b.config.WebhookSecret)

	_, err = b.Bot.MakeRequest("setWebhook", params)
	return err
}

// StartPolling consumes updates over long polling, for local development or
// when no public URL is reachable.
func (b *TelegramBot) StartPolling() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.Bot.GetUpdatesChan(u)

	go func() {
		for update := range updates {
			b.HandleUpdate(context.Background(), update)
		}
	}()
}

// WebhookInfo reports the webhook registration as Telegram sees it.
func (b *TelegramBot) WebhookInfo() (tgbotapi.WebhookInfo, error) {
	if b.Bot == nil {
		return tgbotapi.WebhookInfo{}, fmt.Errorf("bot is not connected")
	}
	return b.Bot.GetWebhookInfo()
}

// HandleUpdate dispatches one inbound update, whether delivered by webhook
// or polling.
func (b *TelegramBot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if b.Bot == nil {
		b.logger.Warn("update dropped, bot is not connected")
		return
	}

	switch {
	case update.PreCheckoutQuery != nil:
		b.PreCheckout(ctx, update.PreCheckoutQuery)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *TelegramBot) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	if m.SuccessfulPayment != nil {
		b.SuccessfulPayment(ctx, m)
		return
	}

	if m.IsCommand() {
		if endpoint, ok := b.router.handlers[m.Command()]; ok {
			b.logger.Info("Running command", zap.String("command", m.Command()))

			for _, handler := range endpoint.Middlewares {
				if pass := handler(ctx, m); !pass {
					return
				}
			}

			endpoint.Handler(ctx, m)
			return
		}
		b.logger.Info("Unknown command", zap.String("command", m.Command()))
		return
	}

	// Plain text only matters to an admin mid-upload.
	if m.From != nil && b.isAdmin(m.From.ID) && b.sessions.State(m.Chat.ID) == StateWaitingURL {
		b.ReceiveVideoURL(ctx, m)
	}
}

func (b *TelegramBot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	handler, ok := b.callbacks.resolve(cq.Data)
	if !ok {
		b.logger.Info("Unknown callback", zap.String("data", cq.Data))
		b.answerCallback(cq, "")
		return
	}

	b.logger.Info("Running callback", zap.String("data", cq.Data))
	handler(ctx, cq)
}

// RequireAdmin only lets the configured admin identity through. Everyone
// else is ignored, as if the command did not exist.
func (b *TelegramBot) RequireAdmin(ctx context.Context, m *tgbotapi.Message) bool {
	if m.From == nil || !b.isAdmin(m.From.ID) {
		b.logger.Warn("admin command denied", zap.Int64("TelegramID", userID(m)))
		return false
	}
	return true
}

func (b *TelegramBot) isAdmin(telegramID int64) bool {
	return b.config.AdminID != 0 && telegramID == b.config.AdminID
}

func userID(m *tgbotapi.Message) int64 {
	if m.From == nil {
		return 0
	}
	return m.From.ID
}
