package order

import (
	"context"
	"strings"

	"minimart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Place(ctx context.Context, input PlaceOrderInput) (*Order, error)
	Get(ctx context.Context, orderID string) (*Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, status PaymentStatus) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, update StatusUpdate) (*Order, error)
	ListAll(ctx context.Context, filter ListFilter) ([]*Order, error)
}

type service struct {
	repo Repository
	// deliveryCharge is the flat surcharge added to every order subtotal,
	// in currency minor units.
	deliveryCharge int64
}

func NewService(repo Repository, deliveryCharge int64) Service {
	return &service{
		repo:           repo,
		deliveryCharge: deliveryCharge,
	}
}

// Place validates the checkout request and hands the cart to the repository
// transaction. Validation failures reject the request before any product
// lookup happens.
func (s *service) Place(ctx context.Context, input PlaceOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Place"),
		zap.Int("item_count", len(input.Items)),
	)

	if len(input.Items) == 0 {
		log.Warn("rejected order with empty cart")
		return nil, ErrEmptyCart
	}

	for _, item := range input.Items {
		if item.Qty <= 0 {
			log.Warn("rejected order with non-positive quantity",
				zap.String("product_id", item.ProductID),
				zap.Int("qty", item.Qty),
			)
			return nil, ErrInvalidQuantity
		}
	}

	if !customerComplete(input.Customer) {
		log.Warn("rejected order with incomplete customer details")
		return nil, ErrCustomerIncomplete
	}

	if !input.PaymentMethod.Valid() {
		log.Warn("rejected order with unknown payment method",
			zap.String("payment_method", string(input.PaymentMethod)),
		)
		return nil, ErrInvalidPaymentMethod
	}

	o, err := s.repo.CreateOrderTx(ctx, input, s.deliveryCharge)
	if err != nil {
		log.Warn("order placement failed", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.Int64("total_amount", o.TotalAmount),
		zap.String("payment_method", string(o.PaymentMethod)),
	)

	return o, nil
}

func customerComplete(c Customer) bool {
	fields := []string{c.Name, c.Phone, c.Address, c.City, c.Pincode}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

func (s *service) Get(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

// UpdatePaymentStatus is the customer-facing "I paid" action. Transitions
// between enumerated values are deliberately unrestricted.
func (s *service) UpdatePaymentStatus(ctx context.Context, orderID string, status PaymentStatus) (*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}

	o, err := s.repo.UpdatePaymentStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("payment status updated",
		zap.String("order_id", orderID),
		zap.String("payment_status", string(status)),
	)

	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, update StatusUpdate) (*Order, error) {
	if update.OrderStatus == nil && update.PaymentStatus == nil {
		return nil, ErrNoFieldsToUpdate
	}

	if update.OrderStatus != nil && !update.OrderStatus.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	if update.PaymentStatus != nil && !update.PaymentStatus.Valid() {
		return nil, ErrInvalidPaymentStatus
	}

	return s.repo.UpdateStatus(ctx, orderID, update)
}

func (s *service) ListAll(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.ListAll(ctx, filter)
}
