package api

import (
	"net/http"

	"github.com/challenge-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CacheHandler handles snapshot cache control endpoints
type CacheHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCacheHandler creates a new CacheHandler
func NewCacheHandler(services *service.Services, log zerolog.Logger) *CacheHandler {
	return &CacheHandler{
		services: services,
		log:      log.With().Str("handler", "cache").Logger(),
	}
}

// Refresh handles POST /v1/cache/refresh
// Drops the snapshot and blocks on a full re-fetch
func (h *CacheHandler) Refresh(c *gin.Context) {
	contacts, err := h.services.Contacts.Refresh(c.Request.Context())
	if err != nil {
		RecordCacheEvent("refresh_failed")
		h.log.Error().Err(err).Msg("Cache refresh failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	RecordCacheEvent("refresh")
	c.JSON(http.StatusOK, gin.H{
		"refreshed": true,
		"count":     len(contacts),
	})
}

// Invalidate handles POST /v1/cache/invalidate
// Drops the snapshot; the next read repopulates it
func (h *CacheHandler) Invalidate(c *gin.Context) {
	h.services.Contacts.Invalidate()

	RecordCacheEvent("invalidate")
	c.JSON(http.StatusOK, gin.H{"invalidated": true})
}
