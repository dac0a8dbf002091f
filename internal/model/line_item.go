package model

// LineItem is one cart entry. UnitPrice is captured when the line is created
// and Subtotal is always UnitPrice * Quantity.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}
