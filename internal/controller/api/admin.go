package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminStats serves aggregate counts behind a bearer token. Auth failures
// say nothing beyond "Unauthorized".
func (s *Server) AdminStats(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if s.config.Server.AdminToken == "" || token != s.config.Server.AdminToken {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return
	}

	stats, err := s.service.Stats(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to collect admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
