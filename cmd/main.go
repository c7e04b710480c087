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

	cancelReservationHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/create_reservation"
	getDailySlotsHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/get_daily_slots"
	getMonthlyAvailabilityHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/get_monthly_availability"
	getReservationHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/get_schedule"
	getTenantReservationsHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/get_tenant_reservations"
	updateReservationStatusHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/update_reservation_status"
	updateScheduleHandler "github.com/ktnb/ARS-ReservationService/internal/api/handlers/update_schedule"
	"github.com/ktnb/ARS-ReservationService/internal/api/middleware"
	"github.com/ktnb/ARS-ReservationService/internal/config"
	menuRepo "github.com/ktnb/ARS-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/ktnb/ARS-ReservationService/internal/infra/storage/reservation"
	scheduleRepo "github.com/ktnb/ARS-ReservationService/internal/infra/storage/schedule"
	tenantServiceClient "github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
	reservationsService "github.com/ktnb/ARS-ReservationService/internal/service/reservations"
	scheduleService "github.com/ktnb/ARS-ReservationService/internal/service/schedule"
	createReservationUC "github.com/ktnb/ARS-ReservationService/internal/usecase/create_reservation"
	getDailySlotsUC "github.com/ktnb/ARS-ReservationService/internal/usecase/get_daily_slots"
	getMonthlyAvailabilityUC "github.com/ktnb/ARS-ReservationService/internal/usecase/get_monthly_availability"
	"github.com/ktnb/ARS-ReservationService/pkg/dbmetrics"
	"github.com/ktnb/ARS-ReservationService/pkg/logger"
	"github.com/ktnb/ARS-ReservationService/pkg/metrics"
	"github.com/ktnb/ARS-ReservationService/pkg/simpletxmanager"
	"github.com/ktnb/ARS-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting ARS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс, в котором заданы рабочие часы тенантов
	location, err := time.LoadLocation(cfg.App.CivilTimeZone)
	if err != nil {
		log.Fatal("Failed to load civil time zone %q: %v", cfg.App.CivilTimeZone, err)
	}
	log.Info("Civil time zone: %s", cfg.App.CivilTimeZone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент TenantService
	tenantClient := tenantServiceClient.NewClient(
		cfg.TenantService.URL,
		time.Duration(cfg.TenantService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (TenantService=%s timeout=%ds)",
		cfg.TenantService.URL, cfg.TenantService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		menuRepository        *menuRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		menuRepository = menuRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		menuRepository = menuRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		tenantClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		menuRepository,
		tenantClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		menuRepository,
		tenantClient,
		txMgr,
		location,
		log,
	)

	getDailySlotsUseCase := getDailySlotsUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		menuRepository,
		tenantClient,
		location,
		log,
	)

	getMonthlyAvailabilityUseCase := getMonthlyAvailabilityUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		menuRepository,
		tenantClient,
		location,
		log,
	)

	// Инициализируем handlers
	getDailySlots := getDailySlotsHandler.NewHandler(getDailySlotsUseCase, location, log)
	getMonthlyAvailability := getMonthlyAvailabilityHandler.NewHandler(getMonthlyAvailabilityUseCase, log)
	getMonthlyFull := getMonthlyAvailabilityHandler.NewFullHandler(getMonthlyAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getTenantReservations := getTenantReservationsHandler.NewHandler(reservationsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты одного дня
	api.HandleFunc("/tenants/{tenantId}/available-slots",
		getDailySlots.Handle).Methods(http.MethodGet)

	// Календарь доступности на месяц
	api.HandleFunc("/tenants/{tenantId}/availability",
		getMonthlyAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Обновление статуса брони (completed / no_show)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Управление тенантом ---
	// Календарь месяца с разбивкой по сотрудникам
	protected.HandleFunc("/tenants/{tenantId}/availability/full", getMonthlyFull.Handle).Methods(http.MethodGet)

	// Список броней тенанта
	protected.HandleFunc("/tenants/{tenantId}/reservations", getTenantReservations.Handle).Methods(http.MethodGet)

	// Расписание: рабочие часы, часы сотрудников, меню
	protected.HandleFunc("/tenants/{tenantId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
