package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/gamestore-webhook/internal/pkg/constants"
	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/metrics"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/piresc/gamestore-webhook/services/webhook/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.SetGlobalLogger(logger.NewNopLogger())
}

func newRequest(body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestNewTagRouter_CoversEveryTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	routes := NewTagRouter(mocks.NewMockWebhookUC(ctrl))

	tags := []string{
		constants.TagRegisterCustomer,
		constants.TagResetEmail,
		constants.TagChangeEmail,
		constants.TagLookupCustomer,
		constants.TagResetCPF,
		constants.TagStartLogin,
		constants.TagVerifyAuthCode,
		constants.TagSearchGame,
		constants.TagAddToCart,
	}

	assert.Len(t, routes, len(tags))
	for _, tag := range tags {
		assert.Contains(t, routes, tag)
	}
}

func TestWebhookHandler_Fulfill_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockWebhookUC(ctrl)
	serverMetrics := metrics.NewServerMetrics("webhook", prometheus.NewRegistry())
	handler := NewWebhookHandler(mockUC, serverMetrics)

	mockUC.EXPECT().
		SearchGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *models.SessionParams) *models.WebhookResponse {
			assert.Equal(t, "Zelda", params.Game)
			assert.Equal(t, "switch", params.Platform)
			return models.NewWebhookResponse("O jogo Zelda custa: R$ 59.90 Gostaria de comprar?", models.GamePriceParams{Price: 59.9})
		})

	e := echo.New()
	req, rec := newRequest(`{
		"fulfillmentInfo": {"tag": "buscar_jogo"},
		"sessionInfo": {"parameters": {"jogo": "Zelda", "plataforma": "switch"}}
	}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Fulfill(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"fulfillment_response": {"messages": [{"text": {"text": ["O jogo Zelda custa: R$ 59.90 Gostaria de comprar?"]}}]},
		"session_info": {"parameters": {"valor": 59.9}}
	}`, rec.Body.String())
	assert.Equal(t, "buscar_jogo", c.Get(logger.ContextKeyTag))
	assert.Equal(t, float64(1), testutil.ToFloat64(serverMetrics.Requests.WithLabelValues("buscar_jogo", "200")))
}

func TestWebhookHandler_Fulfill_MissingParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockWebhookUC(ctrl)
	handler := NewWebhookHandler(mockUC, nil)

	mockUC.EXPECT().
		ResetEmail(gomock.Any(), &models.SessionParams{}).
		Return(models.NewWebhookResponse("", models.ResetEmailParams{Status: "Email resetado"}))

	req, rec := newRequest(`{"fulfillmentInfo": {"tag": "reset_email"}}`)
	require.NoError(t, handler.Fulfill(echo.New().NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_Fulfill_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "unknown tag", body: `{"fulfillmentInfo": {"tag": "comprar_pizza"}}`, expected: `{"error":"Tag inválida"}`},
		{name: "missing tag", body: `{"fulfillmentInfo": {}}`, expected: `{"error":"Tag inválida"}`},
		{name: "missing fulfillmentInfo", body: `{"sessionInfo": {"parameters": {}}}`, expected: `{"error":"Requisição inválida"}`},
		{name: "not json", body: `tag=buscar_jogo`, expected: `{"error":"Requisição inválida"}`},
		{name: "empty body", body: ``, expected: `{"error":"Requisição inválida"}`},
		{name: "infinite price", body: `{"fulfillmentInfo": {"tag": "valor_total"}, "sessionInfo": {"parameters": {"valor": "Infinity"}}}`, expected: `{"error":"Requisição inválida"}`},
		{name: "NaN price", body: `{"fulfillmentInfo": {"tag": "valor_total"}, "sessionInfo": {"parameters": {"valor": "NaN"}}}`, expected: `{"error":"Requisição inválida"}`},
		{name: "infinite cart item", body: `{"fulfillmentInfo": {"tag": "valor_total"}, "sessionInfo": {"parameters": {"lista_jogos": [{"jogos": "Zelda", "plataforma": "switch", "quantidade": 1, "valor": "inf"}]}}}`, expected: `{"error":"Requisição inválida"}`},
		{name: "non numeric quantity", body: `{"fulfillmentInfo": {"tag": "valor_total"}, "sessionInfo": {"parameters": {"quantidade": "dois"}}}`, expected: `{"error":"Requisição inválida"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serverMetrics := metrics.NewServerMetrics("webhook", prometheus.NewRegistry())
			handler := NewWebhookHandler(mocks.NewMockWebhookUC(ctrl), serverMetrics)

			req, rec := newRequest(tt.body)
			require.NoError(t, handler.Fulfill(echo.New().NewContext(req, rec)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
			assert.Equal(t, float64(1), testutil.ToFloat64(serverMetrics.Requests.WithLabelValues("invalid", "400")))
		})
	}
}

func TestWebhookHandler_RegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockWebhookUC(ctrl)
	mockUC.EXPECT().ResetCPF(gomock.Any(), gomock.Any()).
		Return(models.NewWebhookResponse("Por favor, digite o CPF novamente", models.ResetCPFParams{Status: "CPF resetado"}))

	e := echo.New()
	NewWebhookHandler(mockUC, nil).RegisterRoutes(e)

	req, rec := newRequest(`{"fulfillmentInfo": {"tag": "reset_webhook"}}`)
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cpf_cliente":null`)
}
