package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/gamestore-webhook/internal/pkg/constants"
	nr "github.com/piresc/gamestore-webhook/internal/pkg/newrelic"
)

// ErrAuthCodeStoreDisabled is returned when no Redis client was configured
var ErrAuthCodeStoreDisabled = errors.New("auth code store is not configured")

const authCodeCollection = "auth_code"

// SaveAuthCode stores the code for cpf, replacing any previous one
func (r *WebhookRepo) SaveAuthCode(ctx context.Context, cpf, code string, ttl time.Duration) error {
	if r.redisClient == nil {
		return ErrAuthCodeStoreDisabled
	}

	key := fmt.Sprintf(constants.KeyAuthCode, cpf)
	err := nr.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, authCodeCollection, "SET", func() error {
		return r.redisClient.Set(ctx, key, code, ttl)
	})
	if err != nil {
		return fmt.Errorf("failed to save auth code: %w", err)
	}

	return nil
}

// GetAuthCode returns "" once the code expired or was consumed
func (r *WebhookRepo) GetAuthCode(ctx context.Context, cpf string) (string, error) {
	if r.redisClient == nil {
		return "", ErrAuthCodeStoreDisabled
	}

	key := fmt.Sprintf(constants.KeyAuthCode, cpf)
	var code string
	err := nr.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, authCodeCollection, "GET", func() error {
		var err error
		code, err = r.redisClient.Get(ctx, key)
		return err
	})
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get auth code: %w", err)
	}

	return code, nil
}

func (r *WebhookRepo) DeleteAuthCode(ctx context.Context, cpf string) error {
	if r.redisClient == nil {
		return ErrAuthCodeStoreDisabled
	}

	key := fmt.Sprintf(constants.KeyAuthCode, cpf)
	err := nr.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, authCodeCollection, "DEL", func() error {
		return r.redisClient.Delete(ctx, key)
	})
	if err != nil {
		return fmt.Errorf("failed to delete auth code: %w", err)
	}

	return nil
}
