package api

import (
	"net/http"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderQueries queries.ReminderQueries
	cfg             config.BookingConfig
	clock           clock.Clock
}

func NewReminderHandler(reminderQueries queries.ReminderQueries, cfg config.BookingConfig, clk clock.Clock) *ReminderHandler {
	return &ReminderHandler{
		reminderQueries: reminderQueries,
		cfg:             cfg,
		clock:           clk,
	}
}

// @Summary Due reminders
// @Description List bookings whose reminder is due, for the notification sender
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReminderView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reminders/due [get]
func (h *ReminderHandler) DueReminders(c *gin.Context) {
	views, err := h.reminderQueries.DueReminders(c.Request.Context(), h.clock.Now(), h.cfg.ReminderTolerance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}
