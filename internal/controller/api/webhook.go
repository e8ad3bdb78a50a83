package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// Webhook receives update pushes from Telegram. It always answers 200 so
// the platform does not retry-storm on handler errors; failures are flagged
// in the body instead.
func (s *Server) Webhook(c *gin.Context) {
	if secret := s.config.Telegram.WebhookSecret; secret != "" {
		if c.GetHeader(secretTokenHeader) != secret {
			s.logger.Warn("webhook rejected, invalid secret token")
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "invalid secret token"})
			return
		}
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		s.logger.Error("webhook payload unreadable", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": err.Error()})
		return
	}

	s.bot.HandleUpdate(c.Request.Context(), update)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// WebhookStatus reports the current webhook registration from Telegram's
// point of view.
func (s *Server) WebhookStatus(c *gin.Context) {
	info, err := s.bot.WebhookInfo()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":                    info.URL,
		"has_custom_certificate": info.HasCustomCertificate,
		"pending_update_count":   info.PendingUpdateCount,
		"last_error_date":        info.LastErrorDate,
		"last_error_message":     info.LastErrorMessage,
		"max_connections":        info.MaxConnections,
		"allowed_updates":        info.AllowedUpdates,
	})
}
