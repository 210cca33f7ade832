package middleware

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultRequestTimeout = 5 * time.Second

// RequestTimeout caps how long a request context stays alive. DynamoDB calls
// downstream all take this context, so a stalled dependency cannot pin a
// handler forever. Override with REQUEST_TIMEOUT (e.g. "10s").
func RequestTimeout() gin.HandlerFunc {
	timeout := defaultRequestTimeout
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
