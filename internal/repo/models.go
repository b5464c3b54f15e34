package repo

import (
	"time"

	"github.com/carrent/order-service/internal/entities"
)

type Order struct {
	OrderID    string    `db:"order_id"`
	CustomerID string    `db:"customer_id"`
	CarID      string    `db:"car_id"`
	StartDate  time.Time `db:"start_date"`
	Status     string    `db:"status"`
}

// OrderToEntity rejects rows with unknown status values instead of
// passing them through.
func OrderToEntity(o Order) (entities.Order, error) {
	status, err := entities.ParseStatus(o.Status)
	if err != nil {
		return entities.Order{}, err
	}

	return entities.Order{
		OrderID:    o.OrderID,
		CustomerID: o.CustomerID,
		CarID:      o.CarID,
		StartDate:  o.StartDate,
		Status:     status,
	}, nil
}

func OrdersToEntities(rows []Order) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
