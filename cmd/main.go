package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	askAssistantHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/ask_assistant"
	bookConcertTicketsHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/book_concert_tickets"
	cancelBookingHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/get_booking"
	getQuoteHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/get_quote"
	getUserBookingsHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/get_venue"
	listCatalogHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/list_catalog"
	listVenuesHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/list_venues"
	loginHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/login"
	registerWorkshopHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/register_workshop"
	sendContactMessageHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/send_contact_message"
	signupHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/signup"
	submitJobApplicationHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/submit_job_application"
	"github.com/m04kA/VenueBookingService/internal/api/middleware"
	"github.com/m04kA/VenueBookingService/internal/config"
	"github.com/m04kA/VenueBookingService/internal/domain"
	catalogRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/VenueBookingService/internal/integrations/gemini"
	authService "github.com/m04kA/VenueBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/VenueBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/VenueBookingService/internal/service/catalog"
	inquiriesService "github.com/m04kA/VenueBookingService/internal/service/inquiries"
	askAssistantUC "github.com/m04kA/VenueBookingService/internal/usecase/ask_assistant"
	createBookingUC "github.com/m04kA/VenueBookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/VenueBookingService/internal/usecase/get_availability"
	getQuoteUC "github.com/m04kA/VenueBookingService/internal/usecase/get_quote"
	"github.com/m04kA/VenueBookingService/pkg/logger"
	"github.com/m04kA/VenueBookingService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting VenueBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилища
	var store *storage
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		store, err = newPostgresStorage(cfg.Database, metricsCollector, stopMetricsCh, log)
		if err != nil {
			log.Fatal("Failed to initialize postgres storage: %v", err)
		}
	default:
		store = newMemoryStorage()
		log.Warn("Using in-memory storage: bookings and users are lost on restart")
	}
	defer store.close()

	catalog, err := catalogRepo.NewDefaultRepository()
	if err != nil {
		log.Fatal("Failed to load venue catalog: %v", err)
	}

	policy := domain.BookingPolicy{
		HorizonEnd:             cfg.Booking.Horizon(),
		Location:               cfg.Booking.Location(),
		CancellationNoticeDays: cfg.Booking.CancellationNoticeDays,
	}
	log.Info("Booking policy: horizon_end=%s, timezone=%s, cancellation_notice_days=%d",
		policy.HorizonEnd, policy.Location, policy.CancellationNoticeDays)

	// Ассистент
	var assistant askAssistantUC.Assistant = gemini.Disabled{}
	if cfg.Assistant.Enabled {
		assistant = gemini.NewClient(
			cfg.Assistant.BaseURL,
			cfg.Assistant.Model,
			cfg.Assistant.APIKey,
			time.Duration(cfg.Assistant.Timeout)*time.Second,
			log,
		)
		log.Info("Assistant enabled (model=%s, timeout=%ds)", cfg.Assistant.Model, cfg.Assistant.Timeout)
	} else {
		log.Warn("Assistant is disabled, /assistant/ask will respond 503")
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		store.users,
		authService.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL(), cfg.Auth.Issuer),
		log,
	)
	bookingSvc := bookingsService.NewService(store.bookings, store.tx, policy, metricsCollector, log)
	catalogSvc := catalogService.NewService(catalog, store.orders, log)
	inquiriesSvc := inquiriesService.NewService(catalog, store.orders, log)

	// Инициализируем use cases
	getQuoteUseCase := getQuoteUC.NewUseCase(catalog, store.bookings, policy, metricsCollector, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(catalog, store.bookings, policy, log)
	createBookingUseCase := createBookingUC.NewUseCase(store.bookings, catalog, store.tx, policy, metricsCollector, log)
	askAssistantUseCase := askAssistantUC.NewUseCase(catalog, assistant, policy, metricsCollector, log)

	// Инициализируем handlers
	signup := signupHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	listVenues := listVenuesHandler.NewHandler(catalogSvc, log)
	getVenue := getVenueHandler.NewHandler(catalogSvc, log)
	listCatalog := listCatalogHandler.NewHandler(catalogSvc, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	bookConcertTickets := bookConcertTicketsHandler.NewHandler(catalogSvc, log)
	registerWorkshop := registerWorkshopHandler.NewHandler(catalogSvc, log)
	sendContactMessage := sendContactMessageHandler.NewHandler(inquiriesSvc, log)
	submitJobApplication := submitJobApplicationHandler.NewHandler(inquiriesSvc, log)
	askAssistant := askAssistantHandler.NewHandler(askAssistantUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Аутентификация ---
	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	api.HandleFunc("/locations", listCatalog.Locations).Methods(http.MethodGet)
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/concerts", listCatalog.Concerts).Methods(http.MethodGet)
	api.HandleFunc("/workshops", listCatalog.Workshops).Methods(http.MethodGet)
	api.HandleFunc("/event-managers", listCatalog.EventManagers).Methods(http.MethodGet)

	// Регистрация на мастер-класс
	api.HandleFunc("/workshops/{workshopId}/registrations", registerWorkshop.Handle).Methods(http.MethodPost)

	// --- Обратная связь и вакансии ---
	api.HandleFunc("/contact", sendContactMessage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/careers", listCatalog.JobOpenings).Methods(http.MethodGet)
	api.HandleFunc("/careers/applications", submitJobApplication.Handle).Methods(http.MethodPost)

	// --- Расчет стоимости и доступность ---
	api.HandleFunc("/venues/{venueId}/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Ассистент (ограничение частоты запросов) ---
	limiter := middleware.NewLimiter(cfg.Assistant.RatePerMinute, cfg.Assistant.Burst)
	api.Handle("/assistant/ask",
		middleware.RateLimit(limiter, log)(http.HandlerFunc(askAssistant.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Билеты на концерты ---
	protected.HandleFunc("/concerts/{concertId}/tickets", bookConcertTickets.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		// Останавливаем сбор метрик connection pool
		close(stopMetricsCh)

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("%v", err)
	}

	log.Info("Server stopped gracefully")
}
