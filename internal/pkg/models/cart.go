package models

// CartItem is one line of the shopping cart carried in the lista_jogos session parameter
type CartItem struct {
	Title     string    `json:"jogos"`
	Platform  string    `json:"plataforma"`
	Quantity  FlexInt   `json:"quantidade"`
	UnitPrice FlexFloat `json:"valor"`
	LineTotal FlexFloat `json:"valor_total"`
}

// SameProduct reports whether two lines refer to the same title on the same platform
func (i CartItem) SameProduct(title, platform string) bool {
	return i.Title == title && i.Platform == platform
}
