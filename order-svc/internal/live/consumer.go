package live

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"mealdrop/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer feeds the hub from the order event topic.
type Consumer struct {
	Reader *kafka.Reader
	Hub    *Hub
}

func NewConsumer(reader *kafka.Reader, hub *Hub) *Consumer {
	return &Consumer{Reader: reader, Hub: hub}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting live order consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Hub.Notify(event)
	}
}
