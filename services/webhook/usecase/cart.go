package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/shopspring/decimal"
)

const (
	receiptEntry  = "🕹 Jogo: %s \n💻 Plataforma: %s \n📦 Quantidade: %d \n💰 Valor: %s \n"
	receiptFooter = "💳 Valor total: %s \n Quer adicionar mais alguma coisa? 😃🔥"
)

// AddToCart folds the selected game into the cart and answers with the receipt
func (u *WebhookUC) AddToCart(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	quantity := int(params.Quantity)
	if quantity <= 0 {
		return models.NewWebhookResponse(msgInvalidQuantity, models.StatusParams{Status: statusInvalidQuantity})
	}

	title := strings.TrimSpace(params.Game)
	platform := strings.TrimSpace(params.Platform)
	unitPrice := decimal.NewFromFloat(float64(params.Price))

	cart, total := FoldCart(params.Cart, title, platform, quantity, unitPrice)
	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return models.NewWebhookResponse(Receipt(cart, total), models.CartParams{
		LineTotal: lineTotal.InexactFloat64(),
		Items:     cart,
		Total:     total.InexactFloat64(),
	})
}

// FoldCart adds quantity units of title on platform to a copy of cart and
// returns it with the recomputed grand total. A line already holding the
// same product grows in place and keeps its original unit price.
func FoldCart(cart []models.CartItem, title, platform string, quantity int, unitPrice decimal.Decimal) ([]models.CartItem, decimal.Decimal) {
	folded := make([]models.CartItem, len(cart), len(cart)+1)
	copy(folded, cart)

	found := false
	for i := range folded {
		item := &folded[i]
		if !item.SameProduct(title, platform) {
			continue
		}
		item.Quantity += models.FlexInt(quantity)
		line := decimal.NewFromFloat(float64(item.UnitPrice)).Mul(decimal.NewFromInt(int64(item.Quantity)))
		item.LineTotal = models.FlexFloat(line.InexactFloat64())
		found = true
		break
	}

	if !found {
		line := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		folded = append(folded, models.CartItem{
			Title:     title,
			Platform:  platform,
			Quantity:  models.FlexInt(quantity),
			UnitPrice: models.FlexFloat(unitPrice.InexactFloat64()),
			LineTotal: models.FlexFloat(line.InexactFloat64()),
		})
	}

	total := decimal.Zero
	for _, item := range folded {
		total = total.Add(decimal.NewFromFloat(float64(item.LineTotal)))
	}

	return folded, total
}

// Receipt renders the cart lines followed by the grand total
func Receipt(cart []models.CartItem, total decimal.Decimal) string {
	var b strings.Builder
	for _, item := range cart {
		unit := decimal.NewFromFloat(float64(item.UnitPrice))
		fmt.Fprintf(&b, receiptEntry, item.Title, item.Platform, int(item.Quantity), unit.StringFixed(2))
	}
	fmt.Fprintf(&b, receiptFooter, total.StringFixed(2))
	return b.String()
}
