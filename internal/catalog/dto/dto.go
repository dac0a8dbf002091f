package dto

// ProductEntry is a raw catalog record before validation.
type ProductEntry struct {
	ID       int     `db:"id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Quantity int     `db:"quantity"`
}
