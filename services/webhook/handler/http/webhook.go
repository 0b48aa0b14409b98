package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/gamestore-webhook/internal/pkg/constants"
	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/metrics"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	nr "github.com/piresc/gamestore-webhook/internal/pkg/newrelic"
	"github.com/piresc/gamestore-webhook/internal/utils"
	"github.com/piresc/gamestore-webhook/services/webhook"
)

const (
	errInvalidRequest = "Requisição inválida"
	errInvalidTag     = "Tag inválida"

	// metricsInvalid labels calls rejected before a tag handler ran
	metricsInvalid = "invalid"
)

// TagHandler answers one fulfillment tag
type TagHandler func(ctx context.Context, params *models.SessionParams) *models.WebhookResponse

// NewTagRouter maps every fulfillment tag to its use case operation
func NewTagRouter(uc webhook.WebhookUC) map[string]TagHandler {
	return map[string]TagHandler{
		constants.TagRegisterCustomer: uc.RegisterCustomer,
		constants.TagResetEmail:       uc.ResetEmail,
		constants.TagChangeEmail:      uc.ChangeEmail,
		constants.TagLookupCustomer:   uc.LookupCustomer,
		constants.TagResetCPF:         uc.ResetCPF,
		constants.TagStartLogin:       uc.StartLogin,
		constants.TagVerifyAuthCode:   uc.VerifyAuthCode,
		constants.TagSearchGame:       uc.SearchGame,
		constants.TagAddToCart:        uc.AddToCart,
	}
}

// WebhookHandler handles fulfillment calls from the conversational platform
type WebhookHandler struct {
	routes  map[string]TagHandler
	metrics *metrics.ServerMetrics
}

// NewWebhookHandler creates a new webhook HTTP handler. serverMetrics may be nil.
func NewWebhookHandler(uc webhook.WebhookUC, serverMetrics *metrics.ServerMetrics) *WebhookHandler {
	return &WebhookHandler{
		routes:  NewTagRouter(uc),
		metrics: serverMetrics,
	}
}

// RegisterRoutes registers the webhook endpoint
func (h *WebhookHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhook", h.Fulfill)
}

// Fulfill dispatches the request to the handler registered for its tag
func (h *WebhookHandler) Fulfill(c echo.Context) error {
	start := time.Now()
	ctx := c.Request().Context()

	var req models.WebhookRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(ctx, "Rejected webhook body", logger.Err(err))
		h.metrics.Observe(metricsInvalid, http.StatusBadRequest, time.Since(start))
		return utils.BadRequestResponse(c, errInvalidRequest)
	}
	if req.FulfillmentInfo == nil {
		h.metrics.Observe(metricsInvalid, http.StatusBadRequest, time.Since(start))
		return utils.BadRequestResponse(c, errInvalidRequest)
	}

	tag := req.FulfillmentInfo.Tag
	handle, ok := h.routes[tag]
	if !ok {
		logger.WarnCtx(ctx, "Unknown webhook tag", logger.String("tag", tag))
		h.metrics.Observe(metricsInvalid, http.StatusBadRequest, time.Since(start))
		return utils.BadRequestResponse(c, errInvalidTag)
	}

	c.Set(logger.ContextKeyTag, tag)
	txn := nr.FromEchoContext(c)
	nr.SetTransactionName(txn, "Webhook."+tag)
	nr.AddTransactionAttribute(txn, "webhook.tag", tag)

	resp := handle(ctx, &req.SessionInfo.Parameters)

	h.metrics.Observe(tag, http.StatusOK, time.Since(start))
	return c.JSON(http.StatusOK, resp)
}
