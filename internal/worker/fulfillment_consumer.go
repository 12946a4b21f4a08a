package worker

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"mealdash/internal/domain"
	"mealdash/internal/service"
)

// FulfillmentConsumer applies order status transitions published by the
// dispatch side. Unknown states are rejected before they reach storage.
type FulfillmentConsumer struct {
	Reader *kafka.Reader
	Orders service.OrderServiceInterface
}

func NewFulfillmentConsumer(reader *kafka.Reader, orders service.OrderServiceInterface) *FulfillmentConsumer {
	return &FulfillmentConsumer{Reader: reader, Orders: orders}
}

func (c *FulfillmentConsumer) Start(ctx context.Context) {
	log.Println("Starting fulfillment consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading fulfillment message: %v", err)
			continue
		}

		var event domain.FulfillmentEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling fulfillment message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *FulfillmentConsumer) ProcessEvent(ctx context.Context, event domain.FulfillmentEvent) {
	status, err := domain.ParseOrderStatus(event.Status)
	if err != nil {
		log.Printf("Rejecting fulfillment event for order %s: %v", event.OrderID, err)
		return
	}

	if err := c.Orders.UpdateFulfillmentStatus(ctx, event.OrderID, status); err != nil {
		log.Printf("Error applying fulfillment status %s to order %s: %v", status, event.OrderID, err)
		return
	}
	log.Printf("Order %s moved to %s", event.OrderID, status)
}
