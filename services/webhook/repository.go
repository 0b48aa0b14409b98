package webhook

import (
	"context"
	"time"

	"github.com/piresc/gamestore-webhook/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/gamestore-webhook/services/webhook WebhookRepo

// WebhookRepo defines the store behind the webhook. Lookups return a nil
// result and nil error when nothing matches.
type WebhookRepo interface {
	// customers
	GetCustomerByCPF(ctx context.Context, cpf string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomerEmail(ctx context.Context, cpf, email string) error

	// catalog
	ListGames(ctx context.Context) ([]*models.Game, error)
	GetGame(ctx context.Context, title, platform string) (*models.Game, error)

	// server-side auth codes, stored hashed; GetAuthCode returns "" when no code is held
	SaveAuthCode(ctx context.Context, cpf, code string, ttl time.Duration) error
	GetAuthCode(ctx context.Context, cpf string) (string, error)
	DeleteAuthCode(ctx context.Context, cpf string) error
}
