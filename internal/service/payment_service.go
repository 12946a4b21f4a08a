package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mealdash/internal/domain"
)

const providerSucceeded = "succeeded"

type PaymentService struct {
	orders    OrderRepository
	provider  PaymentProvider
	publisher OrderPublisher
}

func NewPaymentService(orders OrderRepository, provider PaymentProvider, publisher OrderPublisher) *PaymentService {
	return &PaymentService{orders: orders, provider: provider, publisher: publisher}
}

func (s *PaymentService) loadOwnedOrder(ctx context.Context, identity domain.Identity, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}
	if order.UserID != identity.UserID && !identity.IsAdmin() {
		return nil, fmt.Errorf("%w: order belongs to another user", ErrUnauthorized)
	}
	return order, nil
}

// CreatePaymentIntent asks the provider for an intent covering the order
// total and stores the intent id on the order. The order must have lines and
// still be awaiting payment.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, identity domain.Identity, orderID string) (string, error) {
	order, err := s.loadOwnedOrder(ctx, identity, orderID)
	if err != nil {
		return "", err
	}
	if len(order.Lines) == 0 {
		return "", fmt.Errorf("%w: order has no items", ErrValidation)
	}
	if order.PaymentStatus != domain.PaymentPending {
		return "", fmt.Errorf("%w: order is not awaiting payment", ErrConflict)
	}

	amountCents := order.Total.Mul(decimal.NewFromInt(100)).IntPart()
	intent, err := s.provider.CreateIntent(ctx, order.ID, amountCents, "usd")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if err := s.orders.SetPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// ConfirmPayment finalizes a payment. The provider's reported status is
// re-fetched here rather than trusting the client's success flag, and the
// payment must be the intent issued for this order; only a succeeded payment
// moves the order from pending to paid.
func (s *PaymentService) ConfirmPayment(ctx context.Context, identity domain.Identity, orderID, providerPaymentID string) (*domain.Order, error) {
	order, err := s.loadOwnedOrder(ctx, identity, orderID)
	if err != nil {
		return nil, err
	}

	payment, err := s.provider.GetPayment(ctx, providerPaymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if order.PaymentIntentID != "" && payment.ID != order.PaymentIntentID {
		return nil, fmt.Errorf("%w: payment does not belong to this order", ErrValidation)
	}
	if payment.Status != providerSucceeded {
		return nil, fmt.Errorf("%w: payment has not succeeded (provider status %q)", ErrValidation, payment.Status)
	}

	details := &domain.CardDetails{
		PaymentIntentID: payment.ID,
		Last4:           payment.CardLast4,
		Brand:           payment.CardBrand,
	}
	rows, err := s.orders.UpdatePaymentStatus(ctx, order.ID, domain.PaymentPending, domain.PaymentPaid, details)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: order is not awaiting payment", ErrConflict)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:         "payment_confirmed",
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Total:        order.Total,
			Timestamp:    time.Now(),
		})
	}

	return s.orders.GetOrder(ctx, order.ID)
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
