package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/carrent/order-service/internal/config"
	"github.com/carrent/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// StatusChange is the wire format of an order lifecycle event. Previous
// is empty for creations.
type StatusChange struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	CarID      string    `json:"car_id"`
	Status     string    `json:"status"`
	Previous   string    `json:"previous_status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *kafkaPublisher) PublishStatusChange(ctx context.Context, order entities.Order, previous entities.Status) error {
	event := StatusChange{
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		CarID:      order.CarID,
		Status:     string(order.Status),
		Previous:   string(previous),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Keyed by order id so events for one order stay in order.
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderID),
		Value: data,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
