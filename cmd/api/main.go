package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/trip-booking-service/internal/api/http"
	"github.com/spec-kit/trip-booking-service/internal/api/http/handlers"
	"github.com/spec-kit/trip-booking-service/internal/auth"
	"github.com/spec-kit/trip-booking-service/internal/config"
	"github.com/spec-kit/trip-booking-service/internal/events"
	"github.com/spec-kit/trip-booking-service/internal/observability"
	"github.com/spec-kit/trip-booking-service/internal/persistence"
	"github.com/spec-kit/trip-booking-service/internal/repository"
	"github.com/spec-kit/trip-booking-service/internal/service"
	"github.com/spec-kit/trip-booking-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer db.Close(context.Background())

	if cfg.Mongo.EnsureIndexes {
		if err := persistence.EnsureIndexes(ctx, db, logger); err != nil {
			logger.Fatal("failed to ensure indexes", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.NewUserRepository(db.Collection(persistence.CollectionUsers))
	tripRepo := repository.NewTripRepository(db.Collection(persistence.CollectionTrips))
	bookingRepo := repository.NewBookingRepository(db.Collection(persistence.CollectionBookings))
	contactRepo := repository.NewContactRepository(db.Collection(persistence.CollectionContacts))

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg, userRepo, dispatcher, logger)
	tripService := service.NewTripService(tripRepo)
	bookingService := service.NewBookingService(bookingRepo, tripRepo, dispatcher)
	contactService := service.NewContactService(contactRepo, dispatcher)
	statsService := service.NewStatsService(tripRepo, bookingRepo, contactRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService, logger)

	if err := authService.SeedAdmin(ctx); err != nil {
		logger.Fatal("failed to seed admin user", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(authService)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.CORSOrigins)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Trips:          handlers.NewTripsHandler(tripService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Contacts:       handlers.NewContactsHandler(contactService),
		Dashboard:      handlers.NewDashboardHandler(statsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
