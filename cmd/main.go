package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/carrent/order-service/internal/app"
	"github.com/carrent/order-service/internal/config"
	"github.com/carrent/order-service/internal/events"
	"github.com/carrent/order-service/internal/handler"
	"github.com/carrent/order-service/internal/inventory"
	"github.com/carrent/order-service/internal/postgres"
	"github.com/carrent/order-service/internal/repo"
	"github.com/carrent/order-service/internal/service"
	"github.com/carrent/order-service/migrations"
	"github.com/carrent/order-service/pkg/cache"
	"github.com/carrent/order-service/pkg/trm"

	_ "github.com/carrent/order-service/docs"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// @title           Car Rental Order API
// @version         1.0
// @description     Order lifecycle for the car rental platform
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", migrations.Apply(ctx, db))

	carCache := cache.NewTTLCache(conf.Cache.Capacity, conf.Cache.TTL)
	carCache.StartJanitor(ctx)

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	carLookup := inventory.NewPostgresLookup(logger, db, carCache)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, carLookup, publisher)
	queryService := service.NewQueryService(logger, orderRepo, carLookup)

	httpHandler := handler.NewHTTPHandler(logger, orderService, queryService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHttpHandlers(httpHandler, swaggerRoutes{})
	app.AddClosers(publisher)

	app.Start()
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type swaggerRoutes struct{}

func (swaggerRoutes) Init(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler())
}
