package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/challenge-dashboard-api/internal/config"
	"github.com/challenge-dashboard-api/internal/dashboard"
	"github.com/challenge-dashboard-api/internal/models"
	"github.com/challenge-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// dateLayout is the calendar date format used by the timeline endpoints
const dateLayout = "2006-01-02"

// DashboardHandler handles dashboard metric endpoints
type DashboardHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "dashboard").Logger(),
	}
}

// GetStats handles GET /v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	contacts, ok := h.snapshot(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dashboard.ComputeStats(contacts, h.cfg.Dashboard.UnitPrice))
}

// GetRecentSignups handles GET /v1/dashboard/recent?limit=
func (h *DashboardHandler) GetRecentSignups(c *gin.Context) {
	limit := h.cfg.Dashboard.RecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	contacts, ok := h.snapshot(c)
	if !ok {
		return
	}

	recent := dashboard.RecentSignups(contacts, limit)
	c.JSON(http.StatusOK, gin.H{
		"contacts": recent,
		"count":    len(recent),
	})
}

// GetCompletingToday handles GET /v1/dashboard/completing?day=
// Lists contacts reaching the configured completion day with the
// challenge still running
func (h *DashboardHandler) GetCompletingToday(c *gin.Context) {
	day := h.cfg.Dashboard.CompletionDay
	if raw := c.Query("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day must be an integer"})
			return
		}
		day = parsed
	}

	contacts, ok := h.snapshot(c)
	if !ok {
		return
	}

	completing := dashboard.CompletingToday(contacts, day)
	c.JSON(http.StatusOK, gin.H{
		"day":      day,
		"contacts": completing,
		"count":    len(completing),
	})
}

// GetTimeline handles GET /v1/dashboard/timeline?start=&end=
// Defaults to the trailing 30 days. An inverted range returns an empty
// window, not an error
func (h *DashboardHandler) GetTimeline(c *gin.Context) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -29)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be a date formatted 2006-01-02"})
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be a date formatted 2006-01-02"})
			return
		}
		end = parsed
	}

	contacts, ok := h.snapshot(c)
	if !ok {
		return
	}

	window := dashboard.FilterByDateRange(contacts, start, end)

	c.JSON(http.StatusOK, gin.H{
		"start":            start.UTC().Format(dateLayout),
		"end":              end.UTC().Format(dateLayout),
		"summary":          dashboard.RangeSummary(window),
		"daily_signups":    dashboard.DailySignups(window),
		"status_over_time": dashboard.StatusOverTime(window),
	})
}

// snapshot loads the contact collection, writing a 502 response on a
// store failure.
func (h *DashboardHandler) snapshot(c *gin.Context) ([]models.Contact, bool) {
	contacts, err := h.services.Contacts.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load contacts")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return nil, false
	}
	return contacts, true
}
