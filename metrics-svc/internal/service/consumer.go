package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/segmentio/kafka-go"
)

// busEvent is the common slice of order and review events; the consumer
// only needs to know which restaurant's cache went stale.
type busEvent struct {
	Type         string `json:"type"`
	RestaurantID string `json:"restaurant_id"`
}

// Consumer watches an event topic and drops the cached stats for every
// restaurant an event touches, so the next read recomputes.
type Consumer struct {
	Reader  *kafka.Reader
	Metrics MetricsServiceInterface
}

func NewConsumer(reader *kafka.Reader, metrics MetricsServiceInterface) *Consumer {
	return &Consumer{Reader: reader, Metrics: metrics}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Printf("Starting metrics invalidation consumer on %s...", c.Reader.Config().Topic)
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		c.HandleMessage(ctx, message.Value)
	}
}

// HandleMessage decodes a single event payload and invalidates the affected
// restaurant's cached stats. Malformed payloads are logged and skipped.
func (c *Consumer) HandleMessage(ctx context.Context, payload []byte) {
	var event busEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return
	}
	c.Metrics.InvalidateStats(ctx, event.RestaurantID)
}
