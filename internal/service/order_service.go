package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mealdash/internal/domain"
)

var (
	deliveryFee = decimal.RequireFromString("5.99")
	taxRate     = decimal.RequireFromString("0.08")
)

const deliveryEstimate = 45 * time.Minute

type OrderService struct {
	orders    OrderRepository
	carts     CartRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(orders OrderRepository, carts CartRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{orders: orders, carts: carts, publisher: publisher, qrEncoder: qr}
}

// Checkout converts the user's cart into an immutable priced order. Prices
// are read from the catalog at this moment and frozen into the order lines;
// later menu edits never touch a placed order. The repository deletes the
// cart in the same transaction as the order insert.
func (s *OrderService) Checkout(ctx context.Context, userID, paymentMethod string, address domain.Address) (*domain.Order, error) {
	if !domain.ValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("%w: payment method must be card or cash", ErrValidation)
	}

	cart, err := s.carts.GetCartByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("%w: no cart found", ErrValidation)
	}
	if len(cart.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	subtotal := decimal.Zero
	lines := make([]domain.OrderLine, 0, len(cart.Lines))
	for _, cl := range cart.Lines {
		subtotal = subtotal.Add(cl.UnitPrice.Mul(decimal.NewFromInt(int64(cl.Quantity))))
		lines = append(lines, domain.OrderLine{
			MenuItemID:          cl.MenuItemID,
			MenuItemName:        cl.MenuItemName,
			Quantity:            cl.Quantity,
			SpecialInstructions: cl.SpecialInstructions,
			PriceAtOrder:        cl.UnitPrice,
		})
	}

	// Round half-up at the point tax is computed; subtotal is exact since
	// catalog prices carry two decimal places.
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(deliveryFee).Add(tax)

	order := &domain.Order{
		ID:                    uuid.NewString(),
		UserID:                userID,
		RestaurantID:          cart.RestaurantID,
		RestaurantName:        cart.RestaurantName,
		Lines:                 lines,
		Subtotal:              subtotal,
		DeliveryFee:           deliveryFee,
		Tax:                   tax,
		Total:                 total,
		DeliveryAddress:       address,
		PaymentMethod:         paymentMethod,
		PaymentStatus:         domain.PaymentPending,
		Status:                domain.OrderPending,
		EstimatedDeliveryTime: time.Now().Add(deliveryEstimate),
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:         "order_created",
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Total:        order.Total,
			Timestamp:    time.Now(),
		})
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.orders.SaveQRCode(ctx, order.ID, qr)
		}
	}

	return order, nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListUserOrders(ctx, userID)
}

func (s *OrderService) GetOrder(ctx context.Context, identity domain.Identity, orderID string) (*domain.Order, error) {
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

func (s *OrderService) GetOrderQRCode(ctx context.Context, identity domain.Identity, orderID string) ([]byte, error) {
	if _, err := s.GetOrder(ctx, identity, orderID); err != nil {
		return nil, err
	}

	qr, err := s.orders.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			return nil, err
		}
		if err := s.orders.SaveQRCode(ctx, orderID, regenerated); err != nil {
			log.Printf("WARNING: failed to cache regenerated QR code: %v", err)
		}
		return regenerated, nil
	}
	return qr, nil
}

// UpdateFulfillmentStatus applies a dispatch-driven transition. The write is
// conditional on the order being in a state the transition is legal from;
// completed and cancelled are terminal.
func (s *OrderService) UpdateFulfillmentStatus(ctx context.Context, orderID string, next domain.OrderStatus) error {
	allowedFrom := domain.ValidPriorStatuses(next)
	if len(allowedFrom) == 0 {
		return fmt.Errorf("%w: no transition leads to status %q", ErrValidation, next)
	}

	rows, err := s.orders.UpdateOrderStatus(ctx, orderID, next, allowedFrom)
	if err != nil {
		return err
	}
	if rows == 0 {
		order, err := s.orders.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return fmt.Errorf("%w: cannot move order from %s to %s", ErrConflict, order.Status, next)
	}
	return nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
