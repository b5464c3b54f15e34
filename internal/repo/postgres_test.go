package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carrent/order-service/internal/entities"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (sqlmock.Sqlmock, *postgresRepo) {
	t.Helper()

	mockDb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	db := sqlx.NewDb(mockDb, "sqlmock")
	return mock, NewPostgresRepo(db)
}

func TestPostgresRepo_Insert(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("inserts pending order", func(t *testing.T) {
		mock, r := newRepo(t)

		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(sqlmock.AnyArg(), "u1", "42", start, "pending").
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow("o1", "u1", "42", start, "pending"))

		order, err := r.Insert(context.Background(), "u1", "42", start)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, order.Status)
		assert.Equal(t, "u1", order.CustomerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates db failure", func(t *testing.T) {
		mock, r := newRepo(t)

		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(errors.New("connection refused"))

		_, err := r.Insert(context.Background(), "u1", "42", start)
		assert.Error(t, err)
	})
}

func TestPostgresRepo_GetByID(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock, r := newRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM orders WHERE order_id`).
			WithArgs("o1").
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow("o1", "u1", "42", start, "confirmed"))

		order, err := r.GetByID(context.Background(), "o1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusConfirmed, order.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mock, r := newRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM orders WHERE order_id`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(orderColumns))

		_, err := r.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		mock, r := newRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM orders WHERE order_id`).
			WithArgs("o1").
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow("o1", "u1", "42", start, "shipped"))

		_, err := r.GetByID(context.Background(), "o1")
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	})
}

func TestPostgresRepo_ListByCustomer(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mock, r := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM orders WHERE customer_id .+ ORDER BY start_date ASC, order_id ASC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow("o1", "u1", "42", start, "pending").
			AddRow("o2", "u1", "7", start.Add(time.Hour), "completed"))

	orders, err := r.ListByCustomer(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].OrderID)
	assert.Equal(t, entities.StatusCompleted, orders[1].Status)
}

func TestPostgresRepo_ListAll(t *testing.T) {
	mock, r := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM orders ORDER BY start_date ASC, order_id ASC`).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	orders, err := r.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPostgresRepo_UpdateStatus(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("swaps when prior status matches", func(t *testing.T) {
		mock, r := newRepo(t)

		mock.ExpectQuery(`UPDATE orders SET status .+ WHERE order_id .+ status`).
			WithArgs("confirmed", "o1", "pending").
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow("o1", "u1", "42", start, "confirmed"))

		order, err := r.UpdateStatus(context.Background(), "o1", entities.StatusPending, entities.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusConfirmed, order.Status)
	})

	t.Run("lost race reads back as invalid transition", func(t *testing.T) {
		mock, r := newRepo(t)

		// CAS touches no row, the order still exists with another status
		mock.ExpectQuery(`UPDATE orders SET status`).
			WithArgs("confirmed", "o1", "pending").
			WillReturnRows(sqlmock.NewRows(orderColumns))
		mock.ExpectQuery(`SELECT .+ FROM orders WHERE order_id`).
			WithArgs("o1").
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow("o1", "u1", "42", start, "cancelled"))

		_, err := r.UpdateStatus(context.Background(), "o1", entities.StatusPending, entities.StatusConfirmed)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order gone entirely", func(t *testing.T) {
		mock, r := newRepo(t)

		mock.ExpectQuery(`UPDATE orders SET status`).
			WithArgs("confirmed", "missing", "pending").
			WillReturnRows(sqlmock.NewRows(orderColumns))
		mock.ExpectQuery(`SELECT .+ FROM orders WHERE order_id`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(orderColumns))

		_, err := r.UpdateStatus(context.Background(), "missing", entities.StatusPending, entities.StatusConfirmed)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
