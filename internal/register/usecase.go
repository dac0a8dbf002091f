package register

import (
	"github.com/fekuna/omnipos-register/internal/cart"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/register/dto"
)

// UseCase is one register session: a catalog, a cart and the caller-side
// checks that sit in front of the cart.
type UseCase interface {
	SessionID() string
	Products() []model.Product

	AddProduct(productID, quantity int) (model.LineItem, error)
	UpdateQuantity(productID, newQuantity int) (model.LineItem, error)
	RemoveProduct(productID int) (model.LineItem, error)
	ViewCart() cart.View
	ApplyDiscount(percentage float64) (*dto.DiscountResult, error)
	Checkout(input *dto.CheckoutInput) (*model.Receipt, error)
}
