package usecase

import (
	"time"

	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/piresc/gamestore-webhook/services/webhook"
)

// authCodeDigits is the length of the one-time login code
const authCodeDigits = 6

// WebhookUC implements webhook.WebhookUC
type WebhookUC struct {
	repo   webhook.WebhookRepo
	mailGW webhook.MailGW
	cfg    *models.Config
	now    func() time.Time
}

// NewWebhookUC creates a new webhook usecase instance
func NewWebhookUC(
	repo webhook.WebhookRepo,
	mailGW webhook.MailGW,
	cfg *models.Config,
) *WebhookUC {
	return &WebhookUC{
		repo:   repo,
		mailGW: mailGW,
		cfg:    cfg,
		now:    time.Now,
	}
}
