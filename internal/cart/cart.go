package cart

import (
	"iter"
	"slices"

	"github.com/fekuna/omnipos-register/internal/apperr"
	"github.com/fekuna/omnipos-register/internal/model"
)

type State int

const (
	StateEmpty State = iota
	StateNonEmpty
)

func (s State) String() string {
	if s == StateEmpty {
		return "empty"
	}
	return "non_empty"
}

// StockLookup resolves the current catalog stock of a product.
// *catalog.Catalog satisfies it.
type StockLookup interface {
	FindByID(id int) (model.Product, error)
}

// Cart is the line-item ledger of one checkout session. The running total
// is adjusted by each mutation rather than recomputed, so after any
// sequence of add/update/remove it equals the sum of the line subtotals.
// ApplyDiscount is the one operation that moves the total away from that sum.
//
// Adding the same product twice creates two independent lines; update and
// remove only touch the first line with a matching product id.
type Cart struct {
	items []model.LineItem
	total float64
}

func New() *Cart {
	return &Cart{}
}

// AddProduct appends a new line for quantity units of p at p's current
// price. The catalog product itself is not modified.
func (c *Cart) AddProduct(p model.Product, quantity int) (model.LineItem, error) {
	if quantity < 0 {
		return model.LineItem{}, apperr.NewInvalidArgument(apperr.ErrMsgNegativeQuantity)
	}
	if quantity > p.Quantity {
		return model.LineItem{}, apperr.NewInsufficientStock(apperr.ErrMsgInsufficientStock)
	}

	item := model.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  quantity,
		Subtotal:  p.Price * float64(quantity),
	}
	c.items = append(c.items, item)
	c.total += item.Subtotal

	return item, nil
}

// UpdateQuantity sets the quantity of the first line for productID. The
// line keeps the unit price it was created with; only the stock is read
// from the lookup. A product missing from the lookup counts as out of stock.
func (c *Cart) UpdateQuantity(productID, newQuantity int, stock StockLookup) (model.LineItem, error) {
	i := c.indexOf(productID)
	if i < 0 {
		return model.LineItem{}, apperr.NewNotFound(apperr.ErrMsgItemNotInCart)
	}
	if newQuantity < 0 {
		return model.LineItem{}, apperr.NewInvalidArgument(apperr.ErrMsgNegativeQuantity)
	}

	p, err := stock.FindByID(productID)
	if err != nil || newQuantity > p.Quantity {
		return model.LineItem{}, apperr.NewInsufficientStock(apperr.ErrMsgInsufficientStock)
	}

	item := &c.items[i]
	newSubtotal := item.UnitPrice * float64(newQuantity)
	c.total += newSubtotal - item.Subtotal
	item.Quantity = newQuantity
	item.Subtotal = newSubtotal

	return *item, nil
}

// RemoveProduct deletes the first line for productID and returns it.
func (c *Cart) RemoveProduct(productID int) (model.LineItem, error) {
	i := c.indexOf(productID)
	if i < 0 {
		return model.LineItem{}, apperr.NewNotFound(apperr.ErrMsgItemNotInCart)
	}

	item := c.items[i]
	c.total -= item.Subtotal
	c.items = slices.Delete(c.items, i, i+1)

	return item, nil
}

// ApplyDiscount lowers the running total by percentage percent of its
// current value and returns the amount taken off. Line subtotals are left
// as they are and the rate is not remembered, so a second call compounds
// on the already discounted total. The range check belongs to the caller.
func (c *Cart) ApplyDiscount(percentage float64) float64 {
	discount := c.total * (percentage / 100)
	c.total -= discount
	return discount
}

// Checkout computes the change for amountPaid and resets the cart. It does
// not reject insufficient payment; change may be negative.
func (c *Cart) Checkout(amountPaid float64) (CheckoutResult, error) {
	if len(c.items) == 0 {
		return CheckoutResult{}, apperr.NewEmptyCart(apperr.ErrMsgNothingToCheckout)
	}

	result := CheckoutResult{
		Items:  slices.Clone(c.items),
		Total:  c.total,
		Paid:   amountPaid,
		Change: amountPaid - c.total,
	}
	c.Clear()

	return result, nil
}

// Clear drops every line and zeroes the total.
func (c *Cart) Clear() {
	c.items = nil
	c.total = 0
}

// View takes a snapshot of the cart. Later mutations do not affect it.
func (c *Cart) View() View {
	return View{items: slices.Clone(c.items), total: c.total}
}

func (c *Cart) Total() float64 {
	return c.total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) State() State {
	if c.IsEmpty() {
		return StateEmpty
	}
	return StateNonEmpty
}

func (c *Cart) indexOf(productID int) int {
	return slices.IndexFunc(c.items, func(item model.LineItem) bool {
		return item.ProductID == productID
	})
}

type CheckoutResult struct {
	Items  []model.LineItem
	Total  float64
	Paid   float64
	Change float64
}

// View is an immutable snapshot of the cart contents.
type View struct {
	items []model.LineItem
	total float64
}

// Items yields the snapshot lines in insertion order. The sequence can be
// ranged over any number of times.
func (v View) Items() iter.Seq[model.LineItem] {
	return func(yield func(model.LineItem) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (v View) Total() float64 {
	return v.total
}

func (v View) Len() int {
	return len(v.items)
}

func (v View) IsEmpty() bool {
	return len(v.items) == 0
}
