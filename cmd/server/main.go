package main // Entry point package

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"doctors-portal-api/internal/config"
	"doctors-portal-api/internal/database"
	"doctors-portal-api/internal/handler"
	"doctors-portal-api/internal/middleware"
	"doctors-portal-api/internal/queue"
	"doctors-portal-api/internal/repository"
	"doctors-portal-api/internal/router"
	queue_publisher "doctors-portal-api/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "doctors-portal-api").Logger()
	if cfg.Env == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// document store: one pooled client shared by every repository,
	// released on shutdown
	client, err := database.Open(cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	logger.Info().Str("db", cfg.DBName).Msg("connected to mongo")

	db := client.Database(cfg.DBName)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		logger.Fatal().Err(err).Msg("ensure indexes")
	}

	users := repository.NewUserRepo(db)
	services := repository.NewServiceRepo(db)
	bookings := repository.NewBookingRepo(db)
	doctors := repository.NewDoctorRepo(db)

	publish := func(ctx context.Context, ev queue.BookingConfirmedEvent) {
		_ = queue_publisher.PublishBookingConfirmed(ctx, cfg.AMQPURL, ev)
	}
	go queue.StartBookingConsumer(cfg.AMQPURL, logger)

	sh := handler.NewServiceHandler(services)
	uh := handler.NewUserHandler(users, cfg.JWTSecret, cfg.AccessTTLMin)
	bh := handler.NewBookingHandler(bookings, services, publish)
	dh := handler.NewDoctorHandler(doctors, users)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(logger))
	router.Register(e, cfg.JWTSecret, sh, uh, bh, dh)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
