package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carrent/order-service/internal/entities"
	"github.com/carrent/order-service/pkg/trm"
)

type OrderRepo interface {
	Insert(ctx context.Context, customerID, carID string, startDate time.Time) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)

	// UpdateStatus must be a conditional update keyed on the expected
	// prior status, ErrInvalidTransition when another writer got there first.
	UpdateStatus(ctx context.Context, orderID string, from, to entities.Status) (entities.Order, error)
}

type CarInventory interface {
	Resolve(ctx context.Context, carID string) (entities.CarSummary, error)
}

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, order entities.Order, previous entities.Status) error
}

// orderService owns the booking state machine: which transitions are
// legal and who may trigger them. It never retries mutations.
type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cars      CarInventory
	events    EventPublisher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cars CarInventory, events EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cars:      cars,
		events:    events,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, caller entities.Caller, carID string) (entities.Order, error) {
	if !caller.Authenticated() {
		return entities.Order{}, entities.ErrUnauthorized
	}

	// No transaction spans inventory and the order store, inventory is
	// read-only context here.
	if _, err := s.cars.Resolve(ctx, carID); err != nil {
		if errors.Is(err, entities.ErrCarNotFound) {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrUnknownCar, carID)
		}
		return entities.Order{}, classify(err)
	}

	order, err := s.repo.Insert(ctx, caller.ID, carID, time.Now().UTC())
	if err != nil {
		return entities.Order{}, classify(err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.OrderID),
		slog.String("customer_id", order.CustomerID),
		slog.String("car_id", order.CarID),
	)
	s.publish(ctx, order, "")

	return order, nil
}

func (s *orderService) ConfirmOrder(ctx context.Context, caller entities.Caller, orderID string) (entities.Order, error) {
	if !caller.IsAdmin() {
		return entities.Order{}, entities.ErrUnauthorized
	}
	return s.transition(ctx, orderID, entities.StatusConfirmed, nil)
}

func (s *orderService) CancelOrder(ctx context.Context, caller entities.Caller, orderID string) (entities.Order, error) {
	if !caller.IsAdmin() {
		return entities.Order{}, entities.ErrUnauthorized
	}
	return s.transition(ctx, orderID, entities.StatusCancelled, nil)
}

func (s *orderService) CompleteOrder(ctx context.Context, caller entities.Caller, orderID string) (entities.Order, error) {
	if !caller.Authenticated() {
		return entities.Order{}, entities.ErrUnauthorized
	}
	return s.transition(ctx, orderID, entities.StatusCompleted, func(order entities.Order) error {
		// owner only, the table gives admins no completion path
		if order.CustomerID != caller.ID {
			return entities.ErrUnauthorized
		}
		return nil
	})
}

// transition validates the requested status change against the current
// record and applies it through the compare-and-swap update, all within
// one transaction so the losing side of a race is classified correctly.
func (s *orderService) transition(ctx context.Context, orderID string, to entities.Status, check func(entities.Order) error) (entities.Order, error) {
	var updated entities.Order
	var previous entities.Status

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}

		if check != nil {
			if err := check(order); err != nil {
				return err
			}
		}

		if !order.Status.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, to)
		}

		previous = order.Status
		updated, err = s.repo.UpdateStatus(ctx, orderID, order.Status, to)
		return err
	})
	if err != nil {
		return entities.Order{}, classify(err)
	}

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", updated.OrderID),
		slog.String("from", string(previous)),
		slog.String("to", string(updated.Status)),
	)
	s.publish(ctx, updated, previous)

	return updated, nil
}

// publish is fire-and-forget: a lost event never fails or rolls back a
// recorded transition.
func (s *orderService) publish(ctx context.Context, order entities.Order, previous entities.Status) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishStatusChange(ctx, order, previous); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish status change",
			slog.String("order_id", order.OrderID), slog.Any("error", err))
	}
}

var domainErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrUnknownCar,
	entities.ErrUnauthorized,
	entities.ErrInvalidTransition,
	entities.ErrCarNotFound,
}

// classify passes domain errors through unchanged and marks everything
// else as a dependency failure, keeping the cause in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, domain := range domainErrors {
		if errors.Is(err, domain) {
			return err
		}
	}
	return errors.Join(entities.ErrDependency, err)
}
