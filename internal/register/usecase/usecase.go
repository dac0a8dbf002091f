package usecase

import (
	"time"

	"github.com/fekuna/omnipos-register/internal/apperr"
	"github.com/fekuna/omnipos-register/internal/cart"
	"github.com/fekuna/omnipos-register/internal/catalog"
	"github.com/fekuna/omnipos-register/internal/logger"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/register"
	"github.com/fekuna/omnipos-register/internal/register/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type registerUseCase struct {
	catalog   *catalog.Catalog
	cart      *cart.Cart
	policy    dto.Policy
	sessionID string
	now       func() time.Time
	logger    logger.ZapLogger
}

func NewRegisterUseCase(cat *catalog.Catalog, policy dto.Policy, log logger.ZapLogger) register.UseCase {
	sessionID := uuid.New().String()
	return &registerUseCase{
		catalog:   cat,
		cart:      cart.New(),
		policy:    policy,
		sessionID: sessionID,
		now:       time.Now,
		logger:    log.With(zap.String("session_id", sessionID)),
	}
}

func (uc *registerUseCase) SessionID() string {
	return uc.sessionID
}

func (uc *registerUseCase) Products() []model.Product {
	return uc.catalog.Products()
}

func (uc *registerUseCase) AddProduct(productID, quantity int) (model.LineItem, error) {
	p, err := uc.catalog.FindByID(productID)
	if err != nil {
		uc.logger.Info("product not in catalog", zap.Int("product_id", productID))
		return model.LineItem{}, err
	}

	item, err := uc.cart.AddProduct(p, quantity)
	if err != nil {
		uc.logger.Info("add rejected",
			zap.Int("product_id", productID),
			zap.Int("quantity", quantity),
			zap.Int("stock", p.Quantity),
			zap.Error(err),
		)
		return model.LineItem{}, err
	}

	uc.logger.Info("product added",
		zap.Int("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Float64("subtotal", item.Subtotal),
		zap.Float64("total", uc.cart.Total()),
	)
	return item, nil
}

func (uc *registerUseCase) UpdateQuantity(productID, newQuantity int) (model.LineItem, error) {
	item, err := uc.cart.UpdateQuantity(productID, newQuantity, uc.catalog)
	if err != nil {
		uc.logger.Info("update rejected",
			zap.Int("product_id", productID),
			zap.Int("quantity", newQuantity),
			zap.Error(err),
		)
		return model.LineItem{}, err
	}

	uc.logger.Info("quantity updated",
		zap.Int("product_id", productID),
		zap.Int("quantity", newQuantity),
		zap.Float64("total", uc.cart.Total()),
	)
	return item, nil
}

func (uc *registerUseCase) RemoveProduct(productID int) (model.LineItem, error) {
	item, err := uc.cart.RemoveProduct(productID)
	if err != nil {
		uc.logger.Info("remove rejected", zap.Int("product_id", productID), zap.Error(err))
		return model.LineItem{}, err
	}

	uc.logger.Info("product removed",
		zap.Int("product_id", productID),
		zap.Float64("total", uc.cart.Total()),
	)
	return item, nil
}

func (uc *registerUseCase) ViewCart() cart.View {
	return uc.cart.View()
}

func (uc *registerUseCase) ApplyDiscount(percentage float64) (*dto.DiscountResult, error) {
	if uc.cart.IsEmpty() {
		return nil, apperr.NewEmptyCart(apperr.ErrMsgCartEmpty)
	}
	if !(uc.policy.MinDiscount < percentage && percentage < uc.policy.MaxDiscount) {
		return nil, apperr.Newf(apperr.CodeInvalidArgument, apperr.ErrMsgDiscountRange,
			uc.policy.MinDiscount, uc.policy.MaxDiscount)
	}

	discount := uc.cart.ApplyDiscount(percentage)
	uc.logger.Info("discount applied",
		zap.Float64("percentage", percentage),
		zap.Float64("discount", discount),
		zap.Float64("total", uc.cart.Total()),
	)

	return &dto.DiscountResult{
		Percentage: percentage,
		Discount:   discount,
		Total:      uc.cart.Total(),
	}, nil
}

func (uc *registerUseCase) Checkout(input *dto.CheckoutInput) (*model.Receipt, error) {
	if uc.cart.IsEmpty() {
		return nil, apperr.NewEmptyCart(apperr.ErrMsgNothingToCheckout)
	}
	if uc.policy.RequireSufficientPayment && !(input.AmountPaid > uc.cart.Total()) {
		uc.logger.Info("payment rejected",
			zap.Float64("paid", input.AmountPaid),
			zap.Float64("total", uc.cart.Total()),
		)
		return nil, apperr.New(apperr.CodeInsufficientPayment, apperr.ErrMsgInsufficientPayment)
	}

	res, err := uc.cart.Checkout(input.AmountPaid)
	if err != nil {
		return nil, err
	}

	receipt := &model.Receipt{
		ID:        uuid.New().String(),
		SessionID: uc.sessionID,
		Items:     res.Items,
		Total:     res.Total,
		Paid:      res.Paid,
		Change:    res.Change,
		CreatedAt: uc.now(),
	}

	uc.logger.Info("checkout completed",
		zap.String("receipt_id", receipt.ID),
		zap.Int("items", len(receipt.Items)),
		zap.Float64("total", receipt.Total),
		zap.Float64("paid", receipt.Paid),
		zap.Float64("change", receipt.Change),
	)
	return receipt, nil
}
