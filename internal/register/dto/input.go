package dto

type CheckoutInput struct {
	AmountPaid float64
}

type DiscountResult struct {
	Percentage float64
	Discount   float64
	Total      float64
}
