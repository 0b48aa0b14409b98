package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ContextKeyTag is the echo context key the webhook handler stores the dispatched tag under
const ContextKeyTag = "webhook_tag"

// ZapEchoMiddleware logs one line per request with latency, status and the dispatched tag
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				statusCode = he.Code
			}

			tag := ""
			if v := c.Get(ContextKeyTag); v != nil {
				tag = fmt.Sprintf("%v", v)
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if tag != "" {
					txn.AddAttribute("webhook_tag", tag)
				}
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, c.Request().Method, path, c.RealIP(), tag, requestID, statusCode, latency, err)

			return err
		}
	}
}
