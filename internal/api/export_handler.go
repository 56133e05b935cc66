package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/challenge-dashboard-api/internal/dashboard"
	"github.com/challenge-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ExportHandler handles export endpoints
type ExportHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(services *service.Services, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		services: services,
		log:      log.With().Str("handler", "export").Logger(),
	}
}

// StreamExport handles GET /v1/exports?format=csv&status=&day=&q=
// Streams the filtered contact collection directly to the response
func (h *ExportHandler) StreamExport(c *gin.Context) {
	ctx := c.Request.Context()

	format := c.Query("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv"})
		return
	}

	criteria, ok := parseFilterCriteria(c)
	if !ok {
		return
	}

	contacts, err := h.services.Contacts.Snapshot(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load contacts")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	filtered := dashboard.Filter(contacts, criteria)
	filename := fmt.Sprintf("contacts_%s.csv", time.Now().UTC().Format("20060102"))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	h.log.Info().
		Int("count", len(filtered)).
		Str("filename", filename).
		Msg("Starting streaming export")

	if err := h.services.Export.WriteContactsCSV(c.Writer, filtered); err != nil {
		h.log.Error().Err(err).Msg("Export failed")
		// Can't return error JSON after streaming has started
		return
	}
}
