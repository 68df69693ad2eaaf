package handlers

import (
	"net/http"
	"time"

	"github.com/stockwise/inventory-api/internal/models"
)

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day, hour, min int) *time.Time {
	t := date(year, month, day, hour, min)
	return &t
}

// events is the fixed demo calendar. It is initialized once and never
// mutated; there is no endpoint that writes to it.
var events = []models.Event{
	{ID: 1, Title: "Meeting Team A", Start: date(2024, time.August, 10, 9, 0), End: datePtr(2024, time.August, 12, 17, 0)},
	{ID: 2, Title: "Sale Team Report", Start: date(2024, time.August, 15, 10, 30), End: datePtr(2024, time.August, 16, 14, 0)},
	{ID: 3, Title: "DevOps Team Sync", Start: date(2024, time.August, 20, 8, 0)},
	{ID: 4, Title: "MOPA Prototype Delivery", Start: date(2024, time.August, 24, 14, 30)},
	{ID: 5, Title: "Team Dinner", Start: date(2024, time.August, 26, 19, 0)},
}

// GetEventsHandler godoc
// @Summary List the demo events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /api/Event [get]
func GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, events)
}
