package handler

import (
	"time"

	"github.com/carrent/order-service/internal/entities"
)

// CreateOrderRequest is the body of POST /orders. The customer identity
// comes from the token, never from the body.
type CreateOrderRequest struct {
	CarID string `json:"car_id" validate:"required"`
}

// Order represents a booking
type Order struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	CarID      string    `json:"car_id"`
	StartDate  time.Time `json:"start_date"`
	Status     string    `json:"status"`
}

// Car is the inventory summary attached to order views
type Car struct {
	CarID     string `json:"car_id"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	DailyRate int    `json:"daily_rate"`
	Available bool   `json:"available"`
}

// OrderView is an order with its car summary, car is null when the
// referenced car has left inventory
type OrderView struct {
	Order Order `json:"order"`
	Car   *Car  `json:"car,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderID:    o.OrderID,
		CustomerID: o.CustomerID,
		CarID:      o.CarID,
		StartDate:  o.StartDate,
		Status:     string(o.Status),
	}
}

func CarEntityToJSON(c entities.CarSummary) Car {
	return Car{
		CarID:     c.CarID,
		Brand:     c.Brand,
		Model:     c.Model,
		DailyRate: c.DailyRate,
		Available: c.Available,
	}
}

func OrderViewsToJSON(views []entities.OrderView) []OrderView {
	out := make([]OrderView, 0, len(views))
	for _, v := range views {
		item := OrderView{Order: OrderEntityToJSON(v.Order)}
		if v.Car != nil {
			car := CarEntityToJSON(*v.Car)
			item.Car = &car
		}
		out = append(out, item)
	}
	return out
}
