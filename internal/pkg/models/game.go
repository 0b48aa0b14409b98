package models

import "github.com/shopspring/decimal"

// Game represents a catalog entry. Price scans from NUMERIC, float or text columns.
type Game struct {
	Title    string          `json:"jogo" db:"jogo"`
	Platform string          `json:"plataforma" db:"plataforma"`
	Quantity int             `json:"quantidade" db:"quantidade"`
	Price    decimal.Decimal `json:"valor" db:"valor"`
}
