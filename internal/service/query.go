package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/carrent/order-service/internal/entities"
	"github.com/carrent/order-service/pkg/utils"

	"golang.org/x/sync/errgroup"
)

type OrderLister interface {
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
}

const resolveConcurrency = 8

var listRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

// queryService assembles read-only order views joined with car summaries.
// Views are recomputed per call and never written back.
type queryService struct {
	logger *slog.Logger
	repo   OrderLister
	cars   CarInventory
}

func NewQueryService(logger *slog.Logger, repo OrderLister, cars CarInventory) *queryService {
	return &queryService{
		logger: logger.With(slog.String("service", "query")),
		repo:   repo,
		cars:   cars,
	}
}

func (s *queryService) MyOrders(ctx context.Context, caller entities.Caller) ([]entities.OrderView, error) {
	if !caller.Authenticated() {
		return nil, entities.ErrUnauthorized
	}

	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListByCustomer(ctx, caller.ID)
		return err
	}
	if err := utils.Retry(listRetry, fn); err != nil {
		return nil, classify(err)
	}

	return s.project(ctx, orders)
}

func (s *queryService) AllOrders(ctx context.Context, caller entities.Caller) ([]entities.OrderView, error) {
	if !caller.IsAdmin() {
		return nil, entities.ErrUnauthorized
	}

	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListAll(ctx)
		return err
	}
	if err := utils.Retry(listRetry, fn); err != nil {
		return nil, classify(err)
	}

	return s.project(ctx, orders)
}

// project resolves each distinct car once, concurrently. A car missing
// from inventory degrades to a nil summary instead of failing the view.
func (s *queryService) project(ctx context.Context, orders []entities.Order) ([]entities.OrderView, error) {
	carIDs := make([]string, 0, len(orders))
	seen := make(map[string]struct{}, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.CarID]; !ok {
			seen[order.CarID] = struct{}{}
			carIDs = append(carIDs, order.CarID)
		}
	}

	var mu sync.Mutex
	cars := make(map[string]*entities.CarSummary, len(carIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for _, carID := range carIDs {
		carID := carID
		g.Go(func() error {
			car, err := s.cars.Resolve(gctx, carID)
			if errors.Is(err, entities.ErrCarNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			cars[carID] = &car
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, classify(err)
	}

	views := make([]entities.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, entities.OrderView{Order: order, Car: cars[order.CarID]})
	}
	return views, nil
}
