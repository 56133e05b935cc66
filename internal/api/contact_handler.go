package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/challenge-dashboard-api/internal/dashboard"
	"github.com/challenge-dashboard-api/internal/models"
	"github.com/challenge-dashboard-api/internal/repository"
	"github.com/challenge-dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContactHandler handles contact endpoints
type ContactHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(services *service.Services, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		services: services,
		log:      log.With().Str("handler", "contact").Logger(),
	}
}

// ListContacts handles GET /v1/contacts?status=&day=&q=
// Filters are conjunctive; omitting one leaves it unrestricted
func (h *ContactHandler) ListContacts(c *gin.Context) {
	ctx := c.Request.Context()

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

	c.JSON(http.StatusOK, gin.H{
		"contacts": filtered,
		"count":    len(filtered),
		"total":    len(contacts),
	})
}

// UpdateContact handles PATCH /v1/contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := contactID(c)
	if !ok {
		return
	}

	var req models.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.Mutations.UpdateChallenge(ctx, id, &req); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			RecordMutation("update", "validation_failed")
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": verr.Errors,
			})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			RecordMutation("update", "not_found")
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}

		RecordMutation("update", "store_error")
		h.log.Error().Err(err).Int64("id", id).Msg("Update failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	RecordMutation("update", "success")
	c.JSON(http.StatusOK, gin.H{
		"id":          id,
		"status":      req.Status,
		"current_day": *req.CurrentDay,
	})
}

// DeleteContact handles DELETE /v1/contacts/:id
// The first request for an id returns 202 and asks for confirmation;
// repeating it performs the delete
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := contactID(c)
	if !ok {
		return
	}

	outcome, err := h.services.Mutations.RequestDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RecordMutation("delete", "not_found")
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}

		RecordMutation("delete", "store_error")
		h.log.Error().Err(err).Int64("id", id).Msg("Delete failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if outcome == models.DeleteConfirmationRequired {
		RecordMutation("delete", "confirmation_required")
		c.JSON(http.StatusAccepted, gin.H{
			"outcome": outcome,
			"message": "repeat the request to confirm deletion",
		})
		return
	}

	RecordMutation("delete", "success")
	c.JSON(http.StatusOK, gin.H{"outcome": outcome})
}

// contactID parses the :id path parameter. On failure it writes a 400
// response and returns false.
func contactID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// parseFilterCriteria reads the filter query parameters shared by the
// contact list and export endpoints. On an invalid value it writes a
// 400 response and returns false.
func parseFilterCriteria(c *gin.Context) (dashboard.Criteria, bool) {
	criteria := dashboard.Criteria{Query: c.Query("q")}

	for _, raw := range c.QueryArray("status") {
		status := models.ContactStatus(raw)
		if !models.ValidStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "status must be one of: lead_new, challenge_running, challenge_completed, paid_member",
			})
			return dashboard.Criteria{}, false
		}
		criteria.Statuses = append(criteria.Statuses, status)
	}

	for _, raw := range c.QueryArray("day") {
		day, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day must be an integer"})
			return dashboard.Criteria{}, false
		}
		criteria.Days = append(criteria.Days, day)
	}

	return criteria, true
}
