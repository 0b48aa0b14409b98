package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/gamestore-webhook/internal/pkg/database"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
)

// WebhookRepo implements webhook.WebhookRepo on Postgres, with auth codes in Redis
type WebhookRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewWebhookRepository creates a new webhook repository. redisClient may be
// nil when auth codes travel in the session.
func NewWebhookRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *WebhookRepo {
	return &WebhookRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
