package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/challenge-dashboard-api/internal/config"
	"github.com/challenge-dashboard-api/internal/database"
	"github.com/challenge-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router. db may be nil in
// tests, which skips the database portion of the health check.
func NewRouter(services *service.Services, db *database.DB, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(metricsMiddleware())
	router.Use(corsMiddleware())

	// Handlers
	contactHandler := NewContactHandler(services, log)
	dashboardHandler := NewDashboardHandler(services, cfg, log)
	exportHandler := NewExportHandler(services, log)
	cacheHandler := NewCacheHandler(services, log)

	// Health check and Prometheus metrics
	router.GET("/health", healthCheck(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/v1")
	if services.Sessions.Enabled() {
		v1.Use(sessionMiddleware(services.Sessions, log))
	}
	{
		// Contact endpoints
		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.PATCH("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		// Dashboard endpoints
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
			dashboard.GET("/recent", dashboardHandler.GetRecentSignups)
			dashboard.GET("/completing", dashboardHandler.GetCompletingToday)
			dashboard.GET("/timeline", dashboardHandler.GetTimeline)
		}

		// Export endpoints
		exports := v1.Group("/exports")
		{
			exports.GET("", exportHandler.StreamExport)
		}

		// Cache control endpoints
		cacheCtl := v1.Group("/cache")
		{
			cacheCtl.POST("/refresh", cacheHandler.Refresh)
			cacheCtl.POST("/invalidate", cacheHandler.Invalidate)
		}
	}

	return router
}

// healthCheck returns the health status including database reachability
func healthCheck(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "challenge-dashboard-api",
		}

		if db != nil {
			ctx, cancel := contextWithTimeout(c, 2*time.Second)
			defer cancel()

			if err := db.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "unhealthy",
					"timestamp": time.Now().Format(time.RFC3339),
					"service":   "challenge-dashboard-api",
					"error":     err.Error(),
				})
				return
			}

			stats := db.Stats()
			resp["database"] = gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// sessionMiddleware rejects requests without a valid operator session
func sessionMiddleware(sessions service.SessionService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		operator, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			log.Warn().
				Str("path", c.Request.URL.Path).
				Str("client_ip", c.ClientIP()).
				Msg("Rejected request without valid session")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("operator", operator)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// requestIDMiddleware attaches a request ID for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
