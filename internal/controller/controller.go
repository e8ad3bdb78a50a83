package controller

import (
	"context"

	"yitio/config"
	"yitio/internal/controller/api"
	"yitio/internal/controller/telegram"
	"yitio/internal/pinger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

type controller struct {
	logger *zap.Logger
	config *config.Config
	bot    *telegram.TelegramBot
	server *api.Server
	pinger *pinger.Pinger
}

func NewController(conf *config.Config, logger *zap.Logger, bot *telegram.TelegramBot, server *api.Server, p *pinger.Pinger) *controller {
	return &controller{
		logger: logger,
		config: conf,
		bot:    bot,
		server: server,
		pinger: p,
	}
}

func Start(lc fx.Lifecycle, c *controller) {
	log := c.logger.Sugar()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The health endpoint must be up before the pinger and the
			// webhook start pointing at it.
			c.server.Run()
			c.pinger.Start()
			return c.startTelegram()
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("Shutting down bot")
			c.pinger.Stop()
			return c.server.Shutdown(ctx)
		},
	})
}

func (c *controller) startTelegram() error {
	if c.config.Telegram.Token == "" {
		c.logger.Warn("telegram token not configured, bot disabled")
		return nil
	}

	if err := c.bot.StartBot(); err != nil {
		// The read API still serves without the bot.
		c.logger.Error("error connecting to telegram", zap.Error(err))
		return nil
	}

	if err := c.bot.SetCommands(); err != nil {
		c.logger.Error("error setting bot commands", zap.Error(err))
	}

	if c.config.Telegram.UsePolling || c.config.Server.BaseURL == "" {
		c.logger.Info("starting update polling")
		c.bot.StartPolling()
		return nil
	}

	if err := c.bot.SetWebhook(c.config.Server.BaseURL); err != nil {
		// Updates stop but the read API keeps serving; not fatal.
		c.logger.Error("error setting webhook", zap.String("base_url", c.config.Server.BaseURL), zap.Error(err))
		return nil
	}

	c.logger.Info("webhook set", zap.String("url", c.config.Server.BaseURL+"/webhook"))
	return nil
}
