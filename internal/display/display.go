package display

import (
	"fmt"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
)

// Money renders an amount with two decimals, rounding half away from zero
// on the shortest decimal form of the float.
func Money(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

func Percent(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(2) + "%"
}

func Product(p model.Product) string {
	return fmt.Sprintf("ID: %d, PRODUCT: %s, PRICE: %s QUANTITY: %d", p.ID, p.Name, Money(p.Price), p.Quantity)
}

func LineItem(item model.LineItem) string {
	return fmt.Sprintf("ID: %d, PRODUCT: %s, PRICE: %s, QUANTITY: %d, TOTAL: %s",
		item.ProductID, item.Name, Money(item.UnitPrice), item.Quantity, Money(item.Subtotal))
}

func Total(total float64) string {
	return "Total amount: " + Money(total)
}
