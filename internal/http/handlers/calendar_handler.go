// README: Calendar handlers — forced refresh and store inspection.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caravan/internal/modules/calendar"
)

type CalendarHandler struct {
	calendar *calendar.Service
}

func NewCalendarHandler(svc *calendar.Service) *CalendarHandler {
	return &CalendarHandler{calendar: svc}
}

type locationResp struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Region     string   `json:"region"`
	RateDays   int      `json:"rate_days"`
	TruckCount int      `json:"truck_count,omitempty"`
	Notes      []string `json:"notes,omitempty"`
}

// Refresh handles POST /api/calendar/refresh — re-download and re-parse
// every sheet regardless of TTL.
func (h *CalendarHandler) Refresh(c *gin.Context) {
	store := h.calendar.Refresh(c.Request.Context())
	writeJSON(c, http.StatusOK, gin.H{
		"locations":    len(store.Locations),
		"refreshed_at": store.RefreshedAt,
	})
}

// Locations handles GET /api/calendar/locations.
func (h *CalendarHandler) Locations(c *gin.Context) {
	store := h.calendar.GetStore(c.Request.Context())
	out := make([]locationResp, 0, len(store.Locations))
	for _, loc := range store.Locations {
		out = append(out, locationResp{
			ID:         string(loc.ID),
			Name:       loc.Name,
			Address:    loc.Address,
			Region:     loc.Region,
			RateDays:   len(loc.Rates),
			TruckCount: loc.TruckCount,
			Notes:      loc.Notes,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{
		"refreshed_at": store.RefreshedAt,
		"locations":    out,
	})
}
