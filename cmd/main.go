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

	cancelAppointmentHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/create_appointment"
	deleteServiceHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/delete_service"
	deleteUserHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/delete_user"
	expireAppointmentsHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/expire_appointments"
	getAvailableSlotsHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/get_available_slots"
	getBarberAppointmentsHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/get_barber_appointments"
	getBarberServicesHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/get_barber_services"
	getClientAppointmentsHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/get_client_appointments"
	getScheduleHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/get_schedule"
	getShopConfigHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/get_shop_config"
	listBarbersHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/list_barbers"
	saveServiceHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/save_service"
	toggleScheduleSlotHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/toggle_schedule_slot"
	updateAppointmentStatusHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/update_appointment_status"
	updateBarberProfileHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/update_barber_profile"
	updateScheduleHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/update_schedule"
	updateShopConfigHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/update_shop_config"
	updateUserRoleHandler "github.com/primebarbervip/PrimeBarberClub/internal/api/handlers/update_user_role"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/config"
	appointmentRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/appointment"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	catalogRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/catalog"
	overrideRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/override"
	shopRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/shop"
	userRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/user"
	"github.com/primebarbervip/PrimeBarberClub/internal/integrations/mailer"
	appointmentsService "github.com/primebarbervip/PrimeBarberClub/internal/service/appointments"
	barbersService "github.com/primebarbervip/PrimeBarberClub/internal/service/barbers"
	catalogService "github.com/primebarbervip/PrimeBarberClub/internal/service/catalog"
	scheduleService "github.com/primebarbervip/PrimeBarberClub/internal/service/schedule"
	shopConfigService "github.com/primebarbervip/PrimeBarberClub/internal/service/shopconfig"
	createAppointmentUC "github.com/primebarbervip/PrimeBarberClub/internal/usecase/create_appointment"
	expireAppointmentsUC "github.com/primebarbervip/PrimeBarberClub/internal/usecase/expire_appointments"
	getAvailableSlotsUC "github.com/primebarbervip/PrimeBarberClub/internal/usecase/get_available_slots"
	"github.com/primebarbervip/PrimeBarberClub/pkg/dbmetrics"
	"github.com/primebarbervip/PrimeBarberClub/pkg/logger"
	"github.com/primebarbervip/PrimeBarberClub/pkg/metrics"
	"github.com/primebarbervip/PrimeBarberClub/pkg/simpletxmanager"
	"github.com/primebarbervip/PrimeBarberClub/pkg/txmanager"
)

// TxManager is the transaction surface consumed by services and use cases.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PrimeBarberClub booking service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize the SMTP client for confirmation emails
	mailClient, err := mailer.NewClient(cfg.Mail, log)
	if err != nil {
		log.Fatal("Failed to initialize mail client: %v", err)
	}
	if cfg.Mail.Enabled {
		log.Info("Mail client initialized (host=%s, port=%d)", cfg.Mail.Host, cfg.Mail.Port)
	} else {
		log.Info("Mail delivery disabled, confirmation emails will be skipped")
	}

	// Initialize repositories and the transaction manager, with the
	// metrics wrapper when metrics are enabled
	var (
		appointmentRepository *appointmentRepo.Repository
		barberRepository      *barberRepo.Repository
		overrideRepository    *overrideRepo.Repository
		catalogRepository     *catalogRepo.Repository
		shopRepository        *shopRepo.Repository
		userRepository        *userRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		barberRepository = barberRepo.NewRepository(wrappedDB)
		overrideRepository = overrideRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		shopRepository = shopRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		barberRepository = barberRepo.NewRepository(db)
		overrideRepository = overrideRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		shopRepository = shopRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		barberRepository,
		userRepository,
		shopRepository,
		mailClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		barberRepository,
		overrideRepository,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		barberRepository,
		txMgr,
		log,
	)
	barbersSvc := barbersService.NewService(
		barberRepository,
		userRepository,
		appointmentRepository,
		txMgr,
		log,
	)
	shopConfigSvc := shopConfigService.NewService(shopRepository, log)

	// Initialize use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		barberRepository,
		catalogRepository,
		overrideRepository,
		shopRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		barberRepository,
		overrideRepository,
		appointmentRepository,
		log,
	)
	expireAppointmentsUseCase := expireAppointmentsUC.NewUseCase(appointmentRepository, log)

	// Initialize handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBarberAppointments := getBarberAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listBarbers := listBarbersHandler.NewHandler(barbersSvc, log)
	updateBarberProfile := updateBarberProfileHandler.NewHandler(barbersSvc, log)
	updateUserRole := updateUserRoleHandler.NewHandler(barbersSvc, log)
	deleteUser := deleteUserHandler.NewHandler(barbersSvc, log)
	getBarberServices := getBarberServicesHandler.NewHandler(catalogSvc, log)
	saveService := saveServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	toggleScheduleSlot := toggleScheduleSlotHandler.NewHandler(scheduleSvc, log)
	getShopConfig := getShopConfigHandler.NewHandler(shopConfigSvc, log)
	updateShopConfig := updateShopConfigHandler.NewHandler(shopConfigSvc, log)
	expireAppointments := expireAppointmentsHandler.NewHandler(expireAppointmentsUseCase, cfg.Sweep.Token, log)

	// Set up the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/services", getBarberServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shop/config", getShopConfig.Handle).Methods(http.MethodGet)

	// Sweep endpoint for external schedulers, guarded by a bearer token
	if cfg.Sweep.Enabled {
		api.HandleFunc("/maintenance/expire-appointments", expireAppointments.Handle).Methods(http.MethodPost)
	}

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Appointments ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{barberId}/appointments", getBarberAppointments.Handle).Methods(http.MethodGet)

	// --- Barber profile and catalog ---
	protected.HandleFunc("/barbers/{barberId}/profile", updateBarberProfile.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/{barberId}/services", saveService.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/barbers/{barberId}/services/{serviceId}", saveService.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/{barberId}/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Schedule editing ---
	protected.HandleFunc("/barbers/{barberId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{barberId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/{barberId}/schedule/slots", toggleScheduleSlot.Handle).Methods(http.MethodPatch)

	// --- Administration ---
	protected.HandleFunc("/users/{userId}/role", updateUserRole.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/shop/config", updateShopConfig.Handle).Methods(http.MethodPut)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// In-process expiry sweep ticker
	stopSweepCh := make(chan struct{})
	if cfg.Sweep.Enabled {
		go runSweep(expireAppointmentsUseCase, time.Duration(cfg.Sweep.IntervalMinutes)*time.Minute, stopSweepCh, log)
		log.Info("Expiry sweep started (interval=%dm)", cfg.Sweep.IntervalMinutes)
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Sweep.Enabled {
		close(stopSweepCh)
	}
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

// runSweep periodically cancels pending appointments the barber never
// confirmed. The sweep UPDATE is set-based, so overlapping with the HTTP
// endpoint is harmless.
func runSweep(uc *expireAppointmentsUC.UseCase, interval time.Duration, stopCh <-chan struct{}, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := uc.Execute(context.Background()); err != nil {
				log.Error("Expiry sweep failed: %v", err)
			}
		case <-stopCh:
			return
		}
	}
}
