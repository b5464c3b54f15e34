package inventory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/carrent/order-service/internal/entities"
	"github.com/carrent/order-service/pkg/cache"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carColumns = []string{"car_id", "brand", "model", "daily_rate", "available"}

func newLookup(t *testing.T) (sqlmock.Sqlmock, *postgresLookup) {
	t.Helper()

	mockDb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	db := sqlx.NewDb(mockDb, "sqlmock")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return mock, NewPostgresLookup(logger, db, cache.NewTTLCache(16, time.Minute))
}

func TestPostgresLookup_Resolve(t *testing.T) {
	t.Run("reads the cars table", func(t *testing.T) {
		mock, l := newLookup(t)

		mock.ExpectQuery(`SELECT .+ FROM cars WHERE car_id`).
			WithArgs("42").
			WillReturnRows(sqlmock.NewRows(carColumns).
				AddRow("42", "Skoda", "Octavia", 4500, true))

		car, err := l.Resolve(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, entities.CarSummary{
			CarID: "42", Brand: "Skoda", Model: "Octavia", DailyRate: 4500, Available: true,
		}, car)
	})

	t.Run("second resolve hits the cache", func(t *testing.T) {
		mock, l := newLookup(t)

		// a single query expectation for two Resolve calls
		mock.ExpectQuery(`SELECT .+ FROM cars WHERE car_id`).
			WithArgs("42").
			WillReturnRows(sqlmock.NewRows(carColumns).
				AddRow("42", "Skoda", "Octavia", 4500, true))

		first, err := l.Resolve(context.Background(), "42")
		require.NoError(t, err)

		second, err := l.Resolve(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown car", func(t *testing.T) {
		mock, l := newLookup(t)

		mock.ExpectQuery(`SELECT .+ FROM cars WHERE car_id`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(carColumns))

		_, err := l.Resolve(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrCarNotFound)
	})

	t.Run("db failure", func(t *testing.T) {
		mock, l := newLookup(t)

		mock.ExpectQuery(`SELECT .+ FROM cars WHERE car_id`).
			WithArgs("42").
			WillReturnError(errors.New("connection refused"))

		_, err := l.Resolve(context.Background(), "42")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrCarNotFound)
	})
}
