package logger

import (
	"yitio/config"

	"go.uber.org/zap"
)

func NewLogger(conf *config.Config) (*zap.Logger, error) {
	if conf.Telegram.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
