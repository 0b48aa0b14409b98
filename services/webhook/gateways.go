package webhook

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/gamestore-webhook/services/webhook MailGW

// MailGW delivers one-time login codes
type MailGW interface {
	SendAuthCode(ctx context.Context, to, code string, ttl time.Duration) error
}
