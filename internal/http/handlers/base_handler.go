// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"caravan/internal/modules/quote"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeQuoteError maps quoting failures to statuses: malformed requests are
// the caller's fault, everything else is a definite "no quote" answer.
func writeQuoteError(c *gin.Context, err error) {
	if errors.Is(err, quote.ErrBadRequest) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeError(c, http.StatusUnprocessableEntity, quote.FailureReason(err))
}
