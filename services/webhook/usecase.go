package webhook

import (
	"context"

	"github.com/piresc/gamestore-webhook/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/gamestore-webhook/services/webhook WebhookUC

// WebhookUC holds one operation per fulfillment tag. Every operation answers
// with a reply; business and store failures are reported inside it.
type WebhookUC interface {
	// customer registration and lookup
	RegisterCustomer(ctx context.Context, params *models.SessionParams) *models.WebhookResponse
	ResetEmail(ctx context.Context, params *models.SessionParams) *models.WebhookResponse
	ChangeEmail(ctx context.Context, params *models.SessionParams) *models.WebhookResponse
	LookupCustomer(ctx context.Context, params *models.SessionParams) *models.WebhookResponse
	ResetCPF(ctx context.Context, params *models.SessionParams) *models.WebhookResponse

	// login with a one-time code
	StartLogin(ctx context.Context, params *models.SessionParams) *models.WebhookResponse
	VerifyAuthCode(ctx context.Context, params *models.SessionParams) *models.WebhookResponse

	// catalog and cart
	SearchGame(ctx context.Context, params *models.SessionParams) *models.WebhookResponse
	AddToCart(ctx context.Context, params *models.SessionParams) *models.WebhookResponse
}
