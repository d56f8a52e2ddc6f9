package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dietrack-backend/internal/adapter/postgres"
	compliancerepo "github.com/heartmarshall/dietrack-backend/internal/adapter/postgres/compliance"
	"github.com/heartmarshall/dietrack-backend/internal/adapter/postgres/dish"
	"github.com/heartmarshall/dietrack-backend/internal/adapter/postgres/foodcatalog"
	ledgerrepo "github.com/heartmarshall/dietrack-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/dietrack-backend/internal/adapter/postgres/plan"
	"github.com/heartmarshall/dietrack-backend/internal/auth"
	"github.com/heartmarshall/dietrack-backend/internal/config"
	"github.com/heartmarshall/dietrack-backend/internal/service/compliance"
	"github.com/heartmarshall/dietrack-backend/internal/service/ledger"
	"github.com/heartmarshall/dietrack-backend/internal/service/meal"
	"github.com/heartmarshall/dietrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/dietrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers, and serves
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	rl := middleware.NewRateLimiter(5 * time.Minute)
	defer rl.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, pool, rl),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// NewHandler wires repositories, services and transport on top of pool and
// returns the root HTTP handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rl *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	checkRepo := compliancerepo.New(pool)
	dishRepo := dish.New(pool)
	catalogRepo := foodcatalog.New(pool)
	ledgerRepo := ledgerrepo.New(pool)
	planRepo := plan.New(pool)

	// Services.
	tracker := compliance.NewService(logger, checkRepo, planRepo)
	ledgerService := ledger.NewService(logger, ledgerRepo, planRepo, cfg.Meal.DefaultGoalCalorie)
	mealService := meal.NewService(logger, dishRepo, ledgerRepo, catalogRepo, planRepo, tracker, txm, cfg.Meal)

	// API routes.
	api := http.NewServeMux()
	rest.Mount(api,
		rest.NewDishHandler(mealService, logger),
		rest.NewDayHandler(ledgerService, logger),
		rest.NewRoutineHandler(mealService, tracker, logger),
	)

	validator := auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(reg)

	apiHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		httpMetrics.Middleware(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator, logger),
		rl.Limit(cfg.Server.RateLimitPerMinute),
	)(api)

	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, catalogRepo, BuildVersion())
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/v1/", apiHandler)

	return mux
}
