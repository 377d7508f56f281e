package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/VenueBookingService/internal/config"
	bookingRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/VenueBookingService/internal/infra/storage/memory"
	orderRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/order"
	userRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/user"
	authService "github.com/m04kA/VenueBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/VenueBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/VenueBookingService/internal/service/catalog"
	inquiriesService "github.com/m04kA/VenueBookingService/internal/service/inquiries"
	createBookingUC "github.com/m04kA/VenueBookingService/internal/usecase/create_booking"
	"github.com/m04kA/VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/VenueBookingService/pkg/logger"
	"github.com/m04kA/VenueBookingService/pkg/metrics"
	"github.com/m04kA/VenueBookingService/pkg/txmanager"
)

type bookingStore interface {
	createBookingUC.BookingRepository
	bookingsService.BookingRepository
}

type orderStore interface {
	catalogService.OrderRepository
	inquiriesService.Repository
}

type txManager interface {
	createBookingUC.TransactionManager
	bookingsService.TransactionManager
}

// storage хранилища, выбранные storage.driver
type storage struct {
	bookings bookingStore
	users    authService.UserRepository
	orders   orderStore
	tx       txManager
	close    func() error
}

func newMemoryStorage() *storage {
	return &storage{
		bookings: memory.NewBookings(),
		users:    memory.NewUsers(),
		orders:   memory.NewOrders(),
		tx:       memory.NewTxManager(),
		close:    func() error { return nil },
	}
}

func newPostgresStorage(cfg config.DatabaseConfig, collector *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)

	var wrapped *dbmetrics.DB
	if collector != nil {
		wrapped = dbmetrics.WrapWithDefault(db, collector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrapped = dbmetrics.Wrap(db, nil)
	}

	return &storage{
		bookings: bookingRepo.NewRepository(wrapped),
		users:    userRepo.NewRepository(wrapped),
		orders:   orderRepo.NewRepository(wrapped),
		tx:       txmanager.NewTransactionManager(wrapped),
		close:    db.Close,
	}, nil
}
