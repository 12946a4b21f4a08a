package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mealdash/internal/domain"
	"mealdash/internal/mocks"
	"mealdash/internal/worker"
)

func TestFulfillmentConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name       string
		event      domain.FulfillmentEvent
		setupMocks func(*mocks.OrderServiceInterface)
	}{
		{
			name:  "valid transition applied",
			event: domain.FulfillmentEvent{OrderID: "order-1", Status: "processing"},
			setupMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("UpdateFulfillmentStatus", mock.Anything, "order-1", domain.OrderProcessing).
					Return(nil).Once()
			},
		},
		{
			name:       "unknown status never reaches the service",
			event:      domain.FulfillmentEvent{OrderID: "order-1", Status: "teleported"},
			setupMocks: func(orders *mocks.OrderServiceInterface) {},
		},
		{
			name:  "service error is swallowed",
			event: domain.FulfillmentEvent{OrderID: "order-1", Status: "cancelled"},
			setupMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("UpdateFulfillmentStatus", mock.Anything, "order-1", domain.OrderCancelled).
					Return(assert.AnError).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockOrders := mocks.NewOrderServiceInterface(t)
			testCase.setupMocks(mockOrders)

			consumer := worker.NewFulfillmentConsumer(nil, mockOrders)
			consumer.ProcessEvent(context.Background(), testCase.event)
		})
	}
}

func TestPaymentSweep_Sweep(t *testing.T) {
	staleOrder := domain.Order{
		ID:              "order-1",
		UserID:          "user-1",
		PaymentStatus:   domain.PaymentPending,
		PaymentIntentID: "pi_123",
	}

	t.Run("succeeded intent promotes the order to paid", func(t *testing.T) {
		mockOrders := mocks.NewOrderRepository(t)
		mockProvider := mocks.NewPaymentProvider(t)
		sweep := worker.NewPaymentSweep(mockOrders, mockProvider)

		mockOrders.On("ListPendingPayments", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]domain.Order{staleOrder}, nil).Once()
		mockProvider.On("GetPayment", mock.Anything, "pi_123").
			Return(&domain.ProviderPayment{ID: "pi_123", Status: "succeeded", CardLast4: "4242", CardBrand: "visa"}, nil).Once()
		mockOrders.On("UpdatePaymentStatus", mock.Anything, "order-1", domain.PaymentPending, domain.PaymentPaid,
			&domain.CardDetails{PaymentIntentID: "pi_123", Last4: "4242", Brand: "visa"}).Return(int64(1), nil).Once()

		sweep.Sweep(context.Background())
	})

	t.Run("canceled intent marks the order failed", func(t *testing.T) {
		mockOrders := mocks.NewOrderRepository(t)
		mockProvider := mocks.NewPaymentProvider(t)
		sweep := worker.NewPaymentSweep(mockOrders, mockProvider)

		mockOrders.On("ListPendingPayments", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]domain.Order{staleOrder}, nil).Once()
		mockProvider.On("GetPayment", mock.Anything, "pi_123").
			Return(&domain.ProviderPayment{ID: "pi_123", Status: "canceled"}, nil).Once()
		mockOrders.On("UpdatePaymentStatus", mock.Anything, "order-1", domain.PaymentPending, domain.PaymentFailed,
			(*domain.CardDetails)(nil)).Return(int64(1), nil).Once()

		sweep.Sweep(context.Background())
	})

	t.Run("still processing intent is left alone", func(t *testing.T) {
		mockOrders := mocks.NewOrderRepository(t)
		mockProvider := mocks.NewPaymentProvider(t)
		sweep := worker.NewPaymentSweep(mockOrders, mockProvider)

		mockOrders.On("ListPendingPayments", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]domain.Order{staleOrder}, nil).Once()
		mockProvider.On("GetPayment", mock.Anything, "pi_123").
			Return(&domain.ProviderPayment{ID: "pi_123", Status: "processing"}, nil).Once()

		sweep.Sweep(context.Background())
	})

	t.Run("provider error skips the order", func(t *testing.T) {
		mockOrders := mocks.NewOrderRepository(t)
		mockProvider := mocks.NewPaymentProvider(t)
		sweep := worker.NewPaymentSweep(mockOrders, mockProvider)

		mockOrders.On("ListPendingPayments", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]domain.Order{staleOrder}, nil).Once()
		mockProvider.On("GetPayment", mock.Anything, "pi_123").
			Return(nil, assert.AnError).Once()

		sweep.Sweep(context.Background())
	})
}

func TestPaymentSweepCutoff(t *testing.T) {
	mockOrders := mocks.NewOrderRepository(t)
	mockProvider := mocks.NewPaymentProvider(t)
	sweep := worker.NewPaymentSweep(mockOrders, mockProvider)

	var cutoff time.Time
	mockOrders.On("ListPendingPayments", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { cutoff = args.Get(1).(time.Time) }).
		Return(nil, nil).Once()

	sweep.Sweep(context.Background())

	assert.WithinDuration(t, time.Now().Add(-sweep.MaxAge), cutoff, 2*time.Second)
}
