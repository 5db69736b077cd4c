// README: Quote handlers — per-vendor and aggregate quoting.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"caravan/internal/modules/pricing"
	"caravan/internal/modules/quote"
)

type QuoteHandler struct {
	quotes *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quotes: svc}
}

type quoteReq struct {
	Origin       string         `json:"origin"`
	Destination  string         `json:"destination"`
	MoveDate     string         `json:"move_date"` // YYYY-MM-DD
	Rooms        int            `json:"rooms"`
	StairFlights int            `json:"stair_flights"`
	Elevator     bool           `json:"elevator"`
	HeavyItems   map[string]int `json:"heavy_items"`
	Services     []string       `json:"services"`
	// Vendor limits the quote to one vendor; empty means all.
	Vendor string `json:"vendor"`
}

type quoteResp struct {
	QuoteID          string   `json:"quote_id"`
	Vendor           string   `json:"vendor"`
	Total            float64  `json:"total"`
	Labor            float64  `json:"labor"`
	Travel           float64  `json:"travel"`
	Fuel             float64  `json:"fuel"`
	HeavyItems       float64  `json:"heavy_items"`
	Services         float64  `json:"services"`
	Currency         string   `json:"currency"`
	CrewSize         int      `json:"crew_size"`
	TruckCount       int      `json:"truck_count"`
	Hours            float64  `json:"hours"`
	LongDistance     bool     `json:"long_distance"`
	DeferredServices []string `json:"deferred_services,omitempty"`
	LocationID       string   `json:"location_id"`
	RateDate         string   `json:"rate_date"`
}

// Create handles POST /api/quotes.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	moveDate, err := time.Parse("2006-01-02", req.MoveDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "move_date must be YYYY-MM-DD")
		return
	}

	r := quote.Request{
		Origin:       req.Origin,
		Destination:  req.Destination,
		MoveDate:     moveDate,
		Rooms:        req.Rooms,
		StairFlights: req.StairFlights,
		Elevator:     req.Elevator,
		HeavyItems:   req.HeavyItems,
		Services:     req.Services,
	}

	if req.Vendor != "" {
		q, err := h.quotes.QuoteVendor(c.Request.Context(), req.Vendor, r)
		if err != nil {
			writeQuoteError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, gin.H{"quotes": []quoteResp{toResp(q)}})
		return
	}

	quotes, err := h.quotes.QuoteAll(c.Request.Context(), r)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	out := make([]quoteResp, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toResp(q))
	}
	writeJSON(c, http.StatusOK, gin.H{"quotes": out})
}

func toResp(q *pricing.Quote) quoteResp {
	return quoteResp{
		QuoteID:          string(q.QuoteID),
		Vendor:           q.Vendor,
		Total:            q.Total.Dollars(),
		Labor:            q.Labor.Dollars(),
		Travel:           q.Travel.Dollars(),
		Fuel:             q.Fuel.Dollars(),
		HeavyItems:       q.HeavyItems.Dollars(),
		Services:         q.Services.Dollars(),
		Currency:         "CAD",
		CrewSize:         q.CrewSize,
		TruckCount:       q.TruckCount,
		Hours:            q.Hours,
		LongDistance:     q.LongDistance,
		DeferredServices: q.DeferredServices,
		LocationID:       string(q.Assignment.LocationID),
		RateDate:         q.Assignment.RateDate.Format("2006-01-02"),
	}
}
