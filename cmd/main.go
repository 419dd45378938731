package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	cancelBookingHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_customer_bookings"
	getDayBookingsHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_day_bookings"
	getServicesCatalogHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_services_catalog"
	updateBookingStatusHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/update_booking_status"
	validateServicesHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/validate_services"
	"github.com/m04kA/SMC-DetailingBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/booking"
	userServiceClient "github.com/m04kA/SMC-DetailingBooking/internal/integrations/userservice"
	bookingsService "github.com/m04kA/SMC-DetailingBooking/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_available_slots"
	validateServicesUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/validate_services"
	"github.com/m04kA/SMC-DetailingBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
	"github.com/m04kA/SMC-DetailingBooking/pkg/metrics"
	"github.com/m04kA/SMC-DetailingBooking/pkg/tracing"
	"github.com/m04kA/SMC-DetailingBooking/pkg/txmanager"
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

	log.Info("Starting SMC-DetailingBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Каталог, правила совместимости и настройки мастерской уже проверены в config.Load
	ruleSet, err := cfg.RuleSet()
	if err != nil {
		log.Fatal("Failed to build service catalog: %v", err)
	}
	shopSettings, err := cfg.ShopSettings()
	if err != nil {
		log.Fatal("Failed to build shop settings: %v", err)
	}
	log.Info("Shop configured: hours=%s-%s, location=%s, granularity=%dm, services=%d, rules=%d",
		shopSettings.Hours.Open, shopSettings.Hours.Close, shopSettings.Location,
		shopSettings.SlotGranularityMinutes, len(ruleSet.Catalog().List()), len(ruleSet.Rules()))

	// Трейсинг
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Metrics.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Без метрик обёртка просто проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := wrappedDB.PingContext(pingCtx); err != nil {
		pingCancel()
		log.Fatal("Failed to ping database: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Транспорт клиента из UserService (опционально)
	var vehicleProvider createBookingUC.VehicleProvider
	if cfg.UserService.Enabled {
		vehicleProvider = userServiceClient.NewClient(
			cfg.UserService.URL,
			time.Duration(cfg.UserService.Timeout)*time.Second,
			log,
		)
		log.Info("UserService client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		cfg.Staff(),
		ruleSet.Catalog(),
		log,
	)

	// Инициализируем use cases
	validateServicesUseCase := validateServicesUC.NewUseCase(ruleSet, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		ruleSet,
		shopSettings,
		metricsCollector,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		ruleSet,
		txMgr,
		shopSettings,
		metricsCollector,
		vehicleProvider,
		log,
	)

	// Инициализируем handlers
	getServicesCatalog := getServicesCatalogHandler.NewHandler(ruleSet.Catalog(), ruleSet, shopSettings, log)
	validateServices := validateServicesHandler.NewHandler(validateServicesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Rate limit на создание бронирований (Redis, fail open)
	var redisClient *redis.Client
	createBookingRoute := http.Handler(http.HandlerFunc(createBooking.Handle))
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
		limiter := middleware.RateLimit(
			middleware.NewRedisCounter(redisClient),
			cfg.RateLimit.Limit,
			cfg.RateLimit.Window(),
			"ratelimit:create_booking",
			log,
		)
		createBookingRoute = limiter(createBookingRoute)
		log.Info("Rate limit enabled for booking creation: limit=%d, window=%s, redis=%s",
			cfg.RateLimit.Limit, cfg.RateLimit.Window(), cfg.RateLimit.RedisAddr)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг, часы работы и правила совместимости
	r.HandleFunc("/bookings/services-catalog", getServicesCatalog.Handle).Methods(http.MethodGet)

	// Проверка совместимости выбранных услуг
	r.HandleFunc("/bookings/validate-services", validateServices.Handle).Methods(http.MethodPost)

	// Доступные слоты на дату
	r.HandleFunc("/bookings/available-slots/{date}", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := r.PathPrefix("/bookings").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.Handle("/create", createBookingRoute).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/my", getCustomerBookings.Handle).Methods(http.MethodGet)

	// Расписание бокса на день (для сотрудников)
	protected.HandleFunc("/day/{date}", getDayBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса (для сотрудников)
	protected.HandleFunc("/{bookingId:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, cfg.Metrics.ServiceName),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
