package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
)

// InternalErrorMessage is the body text returned when a handler panics
const InternalErrorMessage = "Erro interno"

// PanicRecoveryMiddleware turns a panic anywhere below it into a logged
// 500 with the standard error body. The conversational platform retries
// or falls back on its own, so the process must survive.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())
	method := c.Request().Method
	path := c.Request().URL.Path
	panicType := fmt.Sprintf("%T", r)

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}

	tag := ""
	if v := c.Get(logger.ContextKeyTag); v != nil {
		tag = fmt.Sprintf("%v", v)
	}

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  panicType,
				"http.method": method,
				"http.path":   path,
				"webhook.tag": tag,
				"request_id":  requestID,
			},
		})
		txn.AddAttribute("panic.recovered", true)
	}

	zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", panicType),
		logger.String("stack_trace", stackTrace),
		logger.String("method", method),
		logger.String("path", path),
		logger.String("tag", tag),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		if err := c.JSON(http.StatusInternalServerError, models.WebhookError{Error: InternalErrorMessage}); err != nil {
			_ = c.String(http.StatusInternalServerError, InternalErrorMessage)
		}
	}
}
