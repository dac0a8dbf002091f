package display

import (
	"testing"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "$8.00"},
		{4.55, "$4.55"},
		{0.125, "$0.13"},
		{36.000000000000004, "$36.00"},
		{-6, "$-6.00"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in))
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "ID: 7, PRODUCT: Peach, PRICE: $4.55 QUANTITY: 10",
		Product(model.Product{ID: 7, Name: "Peach", Price: 4.55, Quantity: 10}))
	assert.Equal(t, "ID: 1, PRODUCT: Apple, PRICE: $8.00, QUANTITY: 3, TOTAL: $24.00",
		LineItem(model.LineItem{ProductID: 1, Name: "Apple", UnitPrice: 8, Quantity: 3, Subtotal: 24}))
	assert.Equal(t, "Total amount: $9.70", Total(9.70))
	assert.Equal(t, "10.00%", Percent(10))
}
