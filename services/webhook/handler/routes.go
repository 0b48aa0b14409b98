package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/gamestore-webhook/internal/pkg/metrics"
	"github.com/piresc/gamestore-webhook/services/webhook"
	httpHandler "github.com/piresc/gamestore-webhook/services/webhook/handler/http"
)

// Handler combines all handlers for the webhook service
type Handler struct {
	webhookHTTP *httpHandler.WebhookHandler
	metrics     *metrics.ServerMetrics
}

// NewHandler creates a new combined handler
func NewHandler(webhookUC webhook.WebhookUC, serverMetrics *metrics.ServerMetrics) *Handler {
	return &Handler{
		webhookHTTP: httpHandler.NewWebhookHandler(webhookUC, serverMetrics),
		metrics:     serverMetrics,
	}
}

// RegisterRoutes registers the webhook and metrics endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	h.webhookHTTP.RegisterRoutes(e)

	if h.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	}
}
