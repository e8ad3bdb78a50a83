package main

import (
	"yitio/config"
	"yitio/internal/controller"
	"yitio/internal/controller/api"
	"yitio/internal/controller/telegram"
	"yitio/internal/pinger"
	"yitio/internal/repository"
	"yitio/internal/service"
	"yitio/logger"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			repository.NewSQLite,
			service.NewService,
			pinger.NewPinger,
			telegram.NewTelegramBot,
			api.NewServer,
			controller.NewController,
		),
		fx.Invoke(controller.Start),
	).Run()
}
