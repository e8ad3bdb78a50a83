package api

import (
	"net/http"
	"strconv"
	"time"

	"yitio/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultVideoLimit = 50

func (s *Server) Root(c *gin.Context) {
	pingService := "inactive"
	if s.pinger.Active() {
		pingService = "active (every 8 minutes)"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   s.config.Name + " API",
		"status":    "running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": gin.H{
			"health":            "/health",
			"webhook_info":      "/webhook/info",
			"api_videos":        "/api/videos",
			"api_check_premium": "/api/check-premium",
		},
		"ping_service": pingService,
	})
}

func (s *Server) Health(c *gin.Context) {
	pingService := "inactive"
	if s.pinger.Active() {
		pingService = "active"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      s.config.Name,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"ping_service": pingService,
	})
}

// Videos serves the listing for the front-end: newest first, chunk-shuffled,
// optionally filtered by platform. Store failures degrade to an empty list.
func (s *Server) Videos(c *gin.Context) {
	category := c.DefaultQuery("category", "All")

	limit := defaultVideoLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	videos, err := s.service.ListVideos(c.Request.Context(), category, limit)
	if err != nil {
		s.logger.Error("failed to list videos", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusOK, []*types.Video{})
		return
	}

	c.JSON(http.StatusOK, videos)
}

// CheckPremium resolves premium status for a user id. Anything that goes
// wrong reads as "not premium".
func (s *Server) CheckPremium(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, &types.PremiumStatus{IsPremium: false})
		return
	}

	c.JSON(http.StatusOK, s.service.CheckPremium(c.Request.Context(), userID))
}

// UserData composes the caller's identity, taken from the WebApp init-data
// header, with their premium status.
func (s *Server) UserData(c *gin.Context) {
	user, err := parseInitData(c.GetHeader("X-Telegram-Init-Data"))
	if err != nil {
		s.logger.Debug("unusable init data", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"user": nil, "premium": false})
		return
	}

	status := s.service.CheckPremium(c.Request.Context(), user.ID)

	c.JSON(http.StatusOK, gin.H{
		"user":       user,
		"premium":    status.IsPremium,
		"expires_at": status.ExpiresAt,
	})
}
