// admin.go - token-protected analytics endpoints
package main

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// initAdminToken uses ADMIN_TOKEN when set and a random token otherwise.
func (s *server) initAdminToken() error {
	if s.cfg.AdminToken != "" {
		s.adminToken = s.cfg.AdminToken
		return nil
	}
	token, err := randomHex(32)
	if err != nil {
		return err
	}
	s.adminToken = token
	if gin.Mode() == gin.DebugMode {
		s.logger.Info("admin token (dev only)", zap.String("token", token))
	}
	return nil
}

// Middleware to check admin authentication
func adminAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if given == "" {
			given, _ = c.Cookie("admin_token")
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *server) requireStore(c *gin.Context) {
	if s.store == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
		return
	}
	c.Next()
}

func (s *server) setupAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(adminAuthMiddleware(s.adminToken), s.requireStore)

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			s.logger.Error("error loading admin stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/api/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			s.logger.Error("error loading visitors", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load visitors"})
			return
		}
		c.JSON(http.StatusOK, visitors)
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.logger.Info("admin stats exported", zap.String("by", s.store.HashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.store.CleanupVisitors(c.Request.Context(), s.cfg.RetentionMonths)
		if err != nil {
			s.logger.Error("error cleaning up visitor data", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
