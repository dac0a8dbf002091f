package dto

// Policy holds the checks the register applies before calling into the cart.
type Policy struct {
	// RequireSufficientPayment rejects a checkout unless the amount paid
	// exceeds the total. When false, change may come out negative.
	RequireSufficientPayment bool
	// Discounts must lie strictly between MinDiscount and MaxDiscount.
	MinDiscount float64
	MaxDiscount float64
}

func DefaultPolicy() Policy {
	return Policy{
		RequireSufficientPayment: true,
		MinDiscount:              1,
		MaxDiscount:              99,
	}
}
