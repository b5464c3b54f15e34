package entities

import (
	"errors"
	"fmt"
	"time"
)

// Status is the closed set of order states. Raw strings coming from
// storage or transport must go through ParseStatus.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnknownCar        = errors.New("unknown car")
	ErrUnauthorized      = errors.New("caller is not allowed to perform this action")
	ErrInvalidTransition = errors.New("order status does not allow this transition")
	ErrInvalidStatus     = errors.New("unknown order status")

	// ErrDependency marks store/inventory infrastructure failures,
	// always joined with the underlying cause.
	ErrDependency = errors.New("dependency unavailable")
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// transitions is the whole lifecycle table, terminal states have no entry.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

type Order struct {
	OrderID    string
	CustomerID string
	CarID      string
	StartDate  time.Time
	Status     Status
}

// OrderView is a projection entry: an order enriched with the referenced
// car when it still exists in inventory, nil Car otherwise.
type OrderView struct {
	Order
	Car *CarSummary
}
