package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aidar/mergington-activities/internal/config"
	"github.com/aidar/mergington-activities/internal/domain"
	"github.com/aidar/mergington-activities/internal/handler"
	"github.com/aidar/mergington-activities/internal/middleware"
	"github.com/aidar/mergington-activities/internal/repository/memory"
	"github.com/aidar/mergington-activities/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config          *config.Config
	server          *http.Server
	logger          *slog.Logger
	activityService *service.ActivityService
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	snapshot, err := a.loadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}

	activityRepo := memory.NewActivityRepository(snapshot)
	a.activityService = service.NewActivityService(activityRepo, a.logger)
	a.activityService.RefreshMetrics(ctx)

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully", "activities", snapshot.Len())
	return nil
}

// loadSnapshot возвращает начальный набор занятий из файла или встроенный
func (a *App) loadSnapshot() (*domain.Catalog, error) {
	path := a.config.Activities.SeedFile
	if path == "" {
		return domain.DefaultCatalog(), nil
	}

	snapshot, err := domain.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Loaded activities from seed file", "path", path)
	return snapshot, nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	activityHandler := handler.NewActivityHandler(a.activityService)

	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(a.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/", handler.RedirectToIndex)
	r.Handle("/static/*", handler.StaticHandler())

	// Health check для мониторинга
	r.Get("/health", handler.Health)

	if a.config.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Эндпоинты занятий
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", activityHandler.ListActivities)
		r.Post("/{activity}/signup", activityHandler.SignUp)
		r.Delete("/{activity}/participants", activityHandler.Unregister)
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := a.config.Server.Addr()
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик (используется в тестах)
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Service возвращает сервис занятий
func (a *App) Service() *service.ActivityService {
	return a.activityService
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
