package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID between client and server.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey stores the trace ID on the echo context.
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace ID. An incoming X-Trace-ID is
// honored so callers can correlate their own logs; otherwise a fresh UUID
// is minted. The ID is echoed back in the response header and made
// available to handlers and the error handler via the context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID for the request, or "" when the
// middleware did not run.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
