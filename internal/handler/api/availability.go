package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	cfg                 config.BookingConfig
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, cfg config.BookingConfig) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		cfg:                 cfg,
	}
}

// @Summary Check availability
// @Description Check whether a staff member is free for a slot
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param staff_id query string true "Staff ID"
// @Param from query string true "Slot start (RFC3339)"
// @Param to query string true "Slot end (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	staffID, err := uuid.Parse(c.Query("staff_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing staff ID",
		})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing 'from' parameter",
		})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing 'to' parameter",
		})
		return
	}

	available, err := h.availabilityQueries.CheckAvailability(c.Request.Context(), staffID, from, to)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidTimeSlot) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: available})
}

// @Summary Preview occurrences
// @Description Expand a recurrence pattern without persisting anything
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewOccurrencesRequest true "Pattern to preview"
// @Success 200 {array} resdto.OccurrencePreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability/preview [post]
func (h *AvailabilityHandler) PreviewOccurrences(c *gin.Context) {
	var req reqdto.PreviewOccurrencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	previews, err := h.availabilityQueries.PreviewOccurrences(c.Request.Context(), req.ToInput(), h.cfg.MaxOccurrencesPerRequest)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidPattern) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid recurrence pattern",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccurrencePreviews(previews))
}
