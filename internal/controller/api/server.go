package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"yitio/config"
	"yitio/internal/controller/telegram"
	"yitio/internal/pinger"
	"yitio/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot is the slice of the Telegram bot the HTTP surface needs: feeding
// webhook updates in and reading webhook status back.
type Bot interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
	WebhookInfo() (tgbotapi.WebhookInfo, error)
}

type Server struct {
	logger  *zap.Logger
	config  *config.Config
	service *service.Service
	pinger  *pinger.Pinger
	bot     Bot
	http    *http.Server
}

func NewServer(conf *config.Config, logger *zap.Logger, s *service.Service, p *pinger.Pinger, bot *telegram.TelegramBot) *Server {
	return newServer(conf, logger, s, p, bot)
}

func newServer(conf *config.Config, logger *zap.Logger, s *service.Service, p *pinger.Pinger, bot Bot) *Server {
	server := &Server{
		logger:  logger,
		config:  conf,
		service: s,
		pinger:  p,
		bot:     bot,
	}

	server.http = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.Server.Host, conf.Server.Port),
		Handler: server.engine(),
	}

	return server
}

func (s *Server) engine() *gin.Engine {
	if !s.config.Telegram.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Telegram-Init-Data"},
		MaxAge:          12 * time.Hour,
	}))

	engine.GET("/", s.Root)
	engine.GET("/health", s.Health)

	engine.POST("/webhook", s.Webhook)
	engine.GET("/webhook/info", s.WebhookStatus)

	apiGroup := engine.Group("/api")
	apiGroup.GET("/videos", s.Videos)
	apiGroup.GET("/check-premium", s.CheckPremium)
	apiGroup.GET("/user-data", s.UserData)
	apiGroup.GET("/admin/stats", s.AdminStats)

	return engine
}

// Run starts serving in the background. Listen failures other than a clean
// shutdown are fatal, nothing works without the HTTP surface.
func (s *Server) Run() {
	s.logger.Info("starting http server", zap.String("addr", s.http.Addr))

	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal("http server failed", zap.Error(err))
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
