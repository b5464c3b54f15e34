package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/carrent/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// postgresLookup reads car metadata from the cars reference table.
// Strictly read-only: the order core never writes inventory.
type postgresLookup struct {
	logger *slog.Logger
	db     *sqlx.DB
	qb     sq.StatementBuilderType
	cache  Cache
}

func NewPostgresLookup(logger *slog.Logger, db *sqlx.DB, cache Cache) *postgresLookup {
	return &postgresLookup{
		logger: logger.With(slog.String("component", "inventory")),
		db:     db,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		cache:  cache,
	}
}

type carRow struct {
	CarID     string `db:"car_id"`
	Brand     string `db:"brand"`
	Model     string `db:"model"`
	DailyRate int    `db:"daily_rate"`
	Available bool   `db:"available"`
}

func (l *postgresLookup) Resolve(ctx context.Context, carID string) (entities.CarSummary, error) {
	if data, ok := l.cache.Get(cacheKey(carID)); ok {
		var car entities.CarSummary
		if err := car.Unmarshal(data); err == nil {
			return car, nil
		}
		l.logger.WarnContext(ctx, "failed to unmarshal cached car", slog.String("car_id", carID))
	}

	query, args := l.qb.Select("car_id", "brand", "model", "daily_rate", "available").
		From("cars").
		Where(sq.Eq{"car_id": carID}).
		MustSql()

	var row carRow
	err := l.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CarSummary{}, entities.ErrCarNotFound
	}
	if err != nil {
		return entities.CarSummary{}, fmt.Errorf("failed to get car: %w", err)
	}

	car := entities.CarSummary{
		CarID:     row.CarID,
		Brand:     row.Brand,
		Model:     row.Model,
		DailyRate: row.DailyRate,
		Available: row.Available,
	}

	if data, err := car.Marshal(); err == nil {
		l.cache.Set(cacheKey(carID), data)
	}

	return car, nil
}

func cacheKey(carID string) string {
	return "car:" + carID
}
