package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	createHoldHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/create_hold"
	getCatalogHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/get_catalog"
	getCatalogServiceHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/get_catalog_service"
	getFreeBusyHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/get_free_busy"
	getScheduleHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/get_schedule"
	listEventsHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/list_events"
	renderGridHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/render_grid"
	startDisputeHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/start_dispute"
	toggleStrategicHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/toggle_strategic_block"
	updateSelectionHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/update_selection"
	"github.com/m04kA/kstudio-agenda/internal/api/middleware"
	"github.com/m04kA/kstudio-agenda/internal/config"
	"github.com/m04kA/kstudio-agenda/internal/integrations/googlecalendar"
	"github.com/m04kA/kstudio-agenda/internal/presentation"
	"github.com/m04kA/kstudio-agenda/internal/scheduling"
	catalogService "github.com/m04kA/kstudio-agenda/internal/service/catalog"
	createHoldUC "github.com/m04kA/kstudio-agenda/internal/usecase/create_hold"
	getFreeBusyUC "github.com/m04kA/kstudio-agenda/internal/usecase/get_free_busy"
	listEventsUC "github.com/m04kA/kstudio-agenda/internal/usecase/list_events"
	startDisputeUC "github.com/m04kA/kstudio-agenda/internal/usecase/start_dispute"
	"github.com/m04kA/kstudio-agenda/pkg/logger"
	"github.com/m04kA/kstudio-agenda/pkg/metrics"
	"github.com/m04kA/kstudio-agenda/pkg/tracing"
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

	log.Info("Starting kstudio-agenda...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil *Metrics безопасен во всех вызовах.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем трассировку
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Tracing.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled (endpoint=%s, ratio=%.2f)", cfg.Tracing.OTLPEndpoint, cfg.Tracing.SampleRatio)
	}

	// Каталог и таймзона уже проверены в config.Validate
	catalog, err := cfg.Catalog()
	if err != nil {
		log.Fatal("Invalid catalog: %v", err)
	}
	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}

	// Инициализируем клиент календаря
	calendarCfg := googlecalendar.Config{
		ClientEmail: cfg.Calendar.ClientEmail,
		PrivateKey:  cfg.Calendar.PrivateKey,
		CalendarID:  cfg.Calendar.CalendarID,
		Timezone:    cfg.Calendar.Timezone,
		Timeout:     time.Duration(cfg.Calendar.Timeout) * time.Second,
	}
	calendarClient := googlecalendar.NewClient(calendarCfg, log, metricsCollector)
	if calendarCfg.IsComplete() {
		log.Info("Google Calendar client initialized (calendar=%s, timezone=%s, timeout=%ds)",
			cfg.Calendar.CalendarID, cfg.Calendar.Timezone, cfg.Calendar.Timeout)
	} else {
		log.Warn("Google Calendar credentials are incomplete, calendar endpoints will fail until configured")
	}

	// Инициализируем доску слотов
	board, err := presentation.NewBoard(presentation.Options{
		Catalog:     catalog,
		Classifier:  scheduling.ArithmeticClassifier{},
		StepMinutes: cfg.Schedule.StepMinutes,
		HoldSeconds: cfg.HoldSeconds(),
		Clock:       clockwork.NewRealClock(),
		Location:    location,
		Logger:      log,
		Metrics:     metricsCollector,
	})
	if err != nil {
		log.Fatal("Failed to initialize board: %v", err)
	}
	defer board.Close()

	view, err := presentation.NewView(catalog, cfg.Schedule.StepMinutes)
	if err != nil {
		log.Fatal("Failed to parse grid template: %v", err)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalog, cfg.Schedule.StepMinutes, cfg.Schedule.HoldMinutes, log)

	// Инициализируем use cases
	getFreeBusyUseCase := getFreeBusyUC.NewUseCase(calendarClient, log)
	createHoldUseCase := createHoldUC.NewUseCase(calendarClient, metricsCollector, log)
	listEventsUseCase := listEventsUC.NewUseCase(calendarClient, cfg.Calendar.MaxResults, log)
	startDisputeUseCase := startDisputeUC.NewUseCase(board, calendarClient, metricsCollector, log)

	// Инициализируем handlers
	getFreeBusy := getFreeBusyHandler.NewHandler(getFreeBusyUseCase, log)
	createHold := createHoldHandler.NewHandler(createHoldUseCase, log)
	listEvents := listEventsHandler.NewHandler(listEventsUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getCatalogService := getCatalogServiceHandler.NewHandler(catalogSvc, log)
	getSchedule := getScheduleHandler.NewHandler(board, log)
	updateSelection := updateSelectionHandler.NewHandler(board, log)
	toggleStrategic := toggleStrategicHandler.NewHandler(board, log)
	startDispute := startDisputeHandler.NewHandler(startDisputeUseCase, log)
	renderGrid := renderGridHandler.NewHandler(board, view, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Создание холдов ограничено по частоте на клиента
	limited := func(sub *mux.Router) *mux.Router { return sub }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		limited = func(sub *mux.Router) *mux.Router {
			sub.Use(limiter.Middleware())
			return sub
		}
		log.Info("Rate limit enabled: %d req/min, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// ============================================================
	// CALENDAR ROUTES (корень и алиасы /api/calendar)
	// ============================================================

	for _, prefix := range []string{"", "/api/calendar"} {
		r.HandleFunc(prefix+"/freebusy", getFreeBusy.Handle).Methods(http.MethodGet)
		r.HandleFunc(prefix+"/events", listEvents.Handle).Methods(http.MethodGet)

		holds := limited(r.PathPrefix(prefix + "/holds").Subrouter())
		holds.HandleFunc("/create", createHold.Handle).Methods(http.MethodPost)
	}

	// ============================================================
	// BOARD ROUTES
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог услуг и сессий
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog/services/{name}", getCatalogService.Handle).Methods(http.MethodGet)

	// Сетка слотов и выбор
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/selection", updateSelection.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedule/strategic/{time}", toggleStrategic.Handle).Methods(http.MethodPost)

	// Спор за слот создает холд в календаре
	disputes := limited(api.PathPrefix("/schedule/disputes").Subrouter())
	disputes.HandleFunc("", startDispute.Handle).Methods(http.MethodPost)

	// HTML страница
	r.HandleFunc("/", renderGrid.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, cfg.Tracing.ServiceName),
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем отсчеты доски
	board.Close()
	log.Info("Board countdowns stopped")

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
