package models

type Product struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"` // código de barras ou código manual, único no catálogo
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Image    string  `json:"image,omitempty"`
}

// CartItem congela o preço do produto no momento em que entra no carrinho.
// Alterações posteriores no catálogo não afetam um carrinho aberto.
type CartItem struct {
	Product
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"` // Quantity * Price, calculado na mutação do carrinho
}
