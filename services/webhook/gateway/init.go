package gateway

import (
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/piresc/gamestore-webhook/services/webhook"
)

// NewWebhookGW creates the outbound gateway used by the webhook use case
func NewWebhookGW(cfg models.SMTPConfig) webhook.MailGW {
	return NewSMTPGateway(cfg)
}
