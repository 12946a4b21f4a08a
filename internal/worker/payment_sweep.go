package worker

import (
	"context"
	"log"
	"time"

	"mealdash/internal/domain"
	"mealdash/internal/service"
)

// PaymentSweep periodically re-checks orders that created a payment intent
// but never confirmed. The provider is treated as the source of truth: a
// succeeded intent is promoted to paid, a dead one is marked failed.
type PaymentSweep struct {
	Orders   service.OrderRepository
	Provider service.PaymentProvider
	Interval time.Duration
	MaxAge   time.Duration
}

func NewPaymentSweep(orders service.OrderRepository, provider service.PaymentProvider) *PaymentSweep {
	return &PaymentSweep{
		Orders:   orders,
		Provider: provider,
		Interval: 5 * time.Minute,
		MaxAge:   15 * time.Minute,
	}
}

func (s *PaymentSweep) Start(ctx context.Context) {
	log.Println("Starting payment sweep...")
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *PaymentSweep) Sweep(ctx context.Context) {
	stale, err := s.Orders.ListPendingPayments(ctx, time.Now().Add(-s.MaxAge))
	if err != nil {
		log.Printf("Error listing stale pending payments: %v", err)
		return
	}

	for _, order := range stale {
		payment, err := s.Provider.GetPayment(ctx, order.PaymentIntentID)
		if err != nil {
			log.Printf("Error checking payment %s for order %s: %v", order.PaymentIntentID, order.ID, err)
			continue
		}

		switch payment.Status {
		case "succeeded":
			details := &domain.CardDetails{
				PaymentIntentID: payment.ID,
				Last4:           payment.CardLast4,
				Brand:           payment.CardBrand,
			}
			rows, err := s.Orders.UpdatePaymentStatus(ctx, order.ID, domain.PaymentPending, domain.PaymentPaid, details)
			if err != nil {
				log.Printf("Error marking order %s paid: %v", order.ID, err)
			} else if rows > 0 {
				log.Printf("Order %s reconciled to paid", order.ID)
			}
		case "canceled", "failed":
			rows, err := s.Orders.UpdatePaymentStatus(ctx, order.ID, domain.PaymentPending, domain.PaymentFailed, nil)
			if err != nil {
				log.Printf("Error marking order %s failed: %v", order.ID, err)
			} else if rows > 0 {
				log.Printf("Order %s reconciled to failed", order.ID)
			}
		default:
			// requires_payment_method, processing: leave for the next pass.
		}
	}
}
