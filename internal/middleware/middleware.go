package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDKey is the context key carrying the per-request identifier
const RequestIDKey = "request_id"

// RequestLogger logs one structured line per request with method, path,
// status and duration, tagged with a generated request ID.
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.NewString()
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		lgr.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}

// Recovery converts panics into a 500 response and logs the panic value
func Recovery(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				lgr.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered in handler")
				c.AbortWithStatusJSON(500, gin.H{"message": "Internal Server Error"})
			}
		}()
		c.Next()
	}
}
