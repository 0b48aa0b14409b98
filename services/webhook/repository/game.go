package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	nr "github.com/piresc/gamestore-webhook/internal/pkg/newrelic"
)

const gamesTable = "jogos"

// ListGames returns the whole catalog in table order
func (r *WebhookRepo) ListGames(ctx context.Context) ([]*models.Game, error) {
	query := `SELECT jogo, plataforma, quantidade, valor FROM jogos`

	games := []*models.Game{}
	err := nr.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, gamesTable, "SELECT", func() error {
		return r.db.SelectContext(ctx, &games, query)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

// GetGame returns nil when the title is not sold on the platform
func (r *WebhookRepo) GetGame(ctx context.Context, title, platform string) (*models.Game, error) {
	query := `SELECT jogo, plataforma, quantidade, valor FROM jogos WHERE jogo = $1 AND plataforma = $2`

	var game models.Game
	err := nr.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, gamesTable, "SELECT", func() error {
		return r.db.GetContext(ctx, &game, query, title, platform)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return &game, nil
}
