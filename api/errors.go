package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError writes the {"error": ...} envelope for err and aborts the chain.
func respondError(c *gin.Context, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d error=%q",
			requestID(c), c.Request.Method, c.Request.URL.Path, status, err.Error())
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRouteNotFound):
		return http.StatusNotFound, "Not found"
	case domain.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case domain.IsConflict(err):
		return http.StatusConflict, err.Error()
	case domain.IsConnection(err):
		return http.StatusServiceUnavailable, "Database connection failed."
	case domain.IsWrite(err), domain.IsQuery(err):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
