// README: HTTP router registration; thin surface over the quoting core.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caravan/internal/http/handlers"
	"caravan/internal/http/middleware"
	"caravan/internal/modules/calendar"
	"caravan/internal/modules/quote"
)

type ServerDeps struct {
	Quotes   *quote.Service
	Calendar *calendar.Service
}

func NewRouter(deps ServerDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	quoteHandler := handlers.NewQuoteHandler(deps.Quotes)
	r.POST("/api/quotes", quoteHandler.Create)

	calendarHandler := handlers.NewCalendarHandler(deps.Calendar)
	r.POST("/api/calendar/refresh", calendarHandler.Refresh)
	r.GET("/api/calendar/locations", calendarHandler.Locations)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
