package api

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/stratcheck/internal/api/handlers"
	mw "github.com/Harshitk-cp/stratcheck/internal/api/middleware"
	"github.com/Harshitk-cp/stratcheck/internal/buildconfig"
	"github.com/Harshitk-cp/stratcheck/internal/config"
	"github.com/Harshitk-cp/stratcheck/internal/domain"
	"github.com/Harshitk-cp/stratcheck/internal/outlier"
	"github.com/Harshitk-cp/stratcheck/internal/service"
	"github.com/Harshitk-cp/stratcheck/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Pinger reports database reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the router and background services for lifecycle management.
type App struct {
	Router    *chi.Mux
	Limiter   *mw.RateLimiter
	metrics   *mw.Metrics
	startTime time.Time
}

// NewApp wires the PostgreSQL-backed stores into the router.
func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	return Build(db, store.NewLabStore(db), store.NewTransectStore(db), logger)
}

// Build assembles the application from its stores.
func Build(db Pinger, labStore domain.LabStore, transectStore domain.TransectStore, logger *zap.Logger) *App {
	defaults := outlier.Params{
		StratLevel:  config.OutlierStratLevel(),
		ExcludeEnds: config.OutlierExcludeEnds(),
	}

	// Services
	transectSvc := service.NewTransectService(transectStore, logger)
	outlierSvc := service.NewOutlierService(transectSvc, defaults, logger)

	// Handlers
	labHandler := handlers.NewLabHandler(labStore)
	transectHandler := handlers.NewTransectHandler(transectSvc)
	outlierHandler := handlers.NewOutlierHandler(outlierSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Limiter:   mw.NewRateLimiter(config.RateLimitRPS(), config.RateLimitBurst()),
		metrics:   mw.NewMetrics(),
		startTime: time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(app.Limiter.Middleware)

	// Unauthenticated
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())
	r.Get("/version", versionHandler)
	r.Post("/v1/labs", labHandler.Create)

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(labStore))

		r.Route("/transects", func(r chi.Router) {
			r.Post("/", transectHandler.Create)
			r.Get("/", transectHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", transectHandler.GetByID)
				r.Delete("/", transectHandler.Delete)
				r.Get("/outliers", outlierHandler.DetectStored)
			})
		})

		r.Post("/outliers", outlierHandler.DetectInline)
	})

	logger.Info("router configured",
		zap.Int("default_strat_level", defaults.StratLevel),
		zap.Bool("default_exclude_ends", defaults.ExcludeEnds))

	return app
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func versionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(buildconfig.VersionInfo())
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"requests":       app.metrics.Snapshot(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy interfaces at compile time.
var (
	_ domain.LabStore      = (*store.LabStore)(nil)
	_ domain.TransectStore = (*store.TransectStore)(nil)
	_ Pinger               = (*pgxpool.Pool)(nil)
)
