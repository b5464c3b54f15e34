package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carrent/order-service/internal/entities"
	"github.com/carrent/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{"order_id", "customer_id", "car_id", "start_date", "status"}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) Insert(ctx context.Context, customerID, carID string, startDate time.Time) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(uuid.NewString(), customerID, carID, startDate, string(entities.StatusPending)).
		Suffix("RETURNING " + returning()).
		MustSql()

	var row Order
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	return OrderToEntity(row)
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(row)
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("start_date ASC", "order_id ASC").
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return OrdersToEntities(rows)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("start_date ASC", "order_id ASC").
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return OrdersToEntities(rows)
}

// UpdateStatus performs a compare-and-swap on the order status. A blind
// overwrite would let concurrent transitions silently clobber each other,
// so the update is keyed on the expected prior status; when it touches no
// row the order is re-read to tell "gone" from "lost the race".
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, from, to entities.Status) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Where(sq.Eq{"order_id": orderID, "status": string(from)}).
		Suffix("RETURNING " + returning()).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := r.GetByID(ctx, orderID); err != nil {
			return entities.Order{}, err
		}
		return entities.Order{}, entities.ErrInvalidTransition
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}

	return OrderToEntity(row)
}

func returning() string {
	s := orderColumns[0]
	for _, c := range orderColumns[1:] {
		s += ", " + c
	}
	return s
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
