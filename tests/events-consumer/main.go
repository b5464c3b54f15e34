package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type StatusChange struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	CarID      string    `json:"car_id"`
	Status     string    `json:"status"`
	Previous   string    `json:"previous_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Tails the status-change topic and prints each event, handy for
// watching transitions while poking the API by hand.
func main() {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "order-events",
		GroupID: "events-consumer",
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Println("read failed:", err)
			continue
		}

		var event StatusChange
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Println("bad event payload:", err)
			continue
		}

		if event.Previous == "" {
			log.Printf("order %s created for %s (car %s)", event.OrderID, event.CustomerID, event.CarID)
			continue
		}
		log.Printf("order %s: %s -> %s", event.OrderID, event.Previous, event.Status)
	}
}
