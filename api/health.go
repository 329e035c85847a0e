package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		if err := db.PingContext(c.Request.Context()); err != nil {
			respondError(c, domain.ConnectionError{Err: err})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
