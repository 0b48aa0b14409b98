package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/gamestore-webhook/internal/pkg/constants"
	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
)

const (
	catalogHeader = "🎮 Jogos disponíveis:\n\n"
	catalogEntry  = "📌 Nome: %s\n🎮 Plataforma: %s\n📦 Quantidade: %d\n💰 Valor: R$ %s\n----------------------\n"
	catalogFooter = "Gostaria de comprar algum? 🛒"
)

// SearchGame prices a title on a platform, or lists the catalog when the platform is "catalogo"
func (u *WebhookUC) SearchGame(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	title := strings.TrimSpace(params.Game)
	platform := strings.TrimSpace(params.Platform)

	if platform == constants.CatalogPlatform {
		return u.listCatalog(ctx)
	}

	game, err := u.repo.GetGame(ctx, title, platform)
	if err != nil {
		return gameSearchFailed(ctx, err)
	}
	if game == nil {
		return models.NewWebhookResponse(msgGameNotFound, models.GameNotFoundParams{})
	}

	return models.NewWebhookResponse(
		fmt.Sprintf(msgGamePrice, game.Title, game.Price.StringFixed(2)),
		models.GamePriceParams{Price: game.Price.InexactFloat64()},
	)
}

func (u *WebhookUC) listCatalog(ctx context.Context) *models.WebhookResponse {
	games, err := u.repo.ListGames(ctx)
	if err != nil {
		return gameSearchFailed(ctx, err)
	}

	var b strings.Builder
	b.WriteString(catalogHeader)
	for _, game := range games {
		fmt.Fprintf(&b, catalogEntry, game.Title, game.Platform, game.Quantity, game.Price.StringFixed(2))
	}
	b.WriteString(catalogFooter)

	return models.NewWebhookResponse(b.String(), models.CatalogParams{})
}

func gameSearchFailed(ctx context.Context, err error) *models.WebhookResponse {
	logger.ErrorCtx(ctx, "Failed to search games", logger.Err(err))
	return models.NewWebhookResponse(msgGameSearchErr, models.ErrorParams{
		Status:       statusError,
		ErrorMessage: err.Error(),
	})
}
