// Command server wires the assurance service: configuration, storage,
// optional cache and change feed, the HTTP router, and a graceful lifecycle.
// Business logic lives in the internal packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"assure/internal/assessment/events"
	assessmenthandler "assure/internal/assessment/handler"
	assessmentmetrics "assure/internal/assessment/metrics"
	"assure/internal/assessment/resolver"
	"assure/internal/assessment/service"
	assessmentstore "assure/internal/assessment/store/assessment"
	historystore "assure/internal/assessment/store/history"
	"assure/internal/deliverygroup"
	"assure/internal/deliverypartner"
	"assure/internal/platform/config"
	"assure/internal/platform/httpserver"
	"assure/internal/platform/logger"
	"assure/internal/platform/metrics"
	"assure/internal/platform/middleware"
	"assure/internal/platform/postgres"
	platformredis "assure/internal/platform/redis"
	"assure/internal/profession"
	"assure/internal/project"
	"assure/internal/standard"
	"assure/pkg/platform/httputil"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err.Error())
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage: postgres when a DSN is configured, in-memory otherwise.
	var (
		projectStore    project.Store
		standardStore   standard.Store
		professionStore profession.Store
		groupStore      deliverygroup.Store
		partnerStore    deliverypartner.Store
		assessStore     service.AssessmentStore
		histStore       service.HistoryStore
		storeTx         service.StoreTx
		healthDB        func(context.Context) error
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		projectStore = project.NewPostgresStore(db)
		standardStore = standard.NewPostgresStore(db)
		professionStore = profession.NewPostgresStore(db)
		groupStore = deliverygroup.NewPostgresStore(db)
		partnerStore = deliverypartner.NewPostgresStore(db)
		assessStore = assessmentstore.NewPostgres(db)
		histStore = historystore.NewPostgres(db)
		storeTx = service.NewSQLStoreTx(db)
		healthDB = db.PingContext
		log.Info("using postgres storage")
	} else {
		projectStore = project.NewInMemoryStore()
		standardStore = standard.NewInMemoryStore()
		professionStore = profession.NewInMemoryStore()
		groupStore = deliverygroup.NewInMemoryStore()
		partnerStore = deliverypartner.NewInMemoryStore()
		assessStore = assessmentstore.NewInMemory()
		histStore = historystore.NewInMemory()
		storeTx = service.NewMemoryStoreTx()
		log.Warn("no database configured, using in-memory storage")
	}

	// Reference resolution, optionally cached through Redis. When the cache is
	// on, entity soft-deletes invalidate their cached resolutions so the
	// validator never accepts a retired standard or profession.
	var refs resolver.ReferenceResolver = resolver.New(projectStore, standardStore, professionStore)
	var standardOpts []standard.Option
	var professionOpts []profession.Option
	rdb, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		cached := resolver.NewCached(refs, rdb.Client, cfg.ReferenceCacheTTL, log)
		refs = cached
		standardOpts = append(standardOpts, standard.WithDeleteHook(cached.InvalidateStandard))
		professionOpts = append(professionOpts, profession.WithDeleteHook(cached.InvalidateProfession))
		log.Info("reference cache enabled", "ttl", cfg.ReferenceCacheTTL.String())
	}

	// Optional Kafka change feed for history entries.
	feed, err := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	if err != nil {
		return err
	}

	procMetrics := metrics.New()
	assessOpts := []service.Option{
		service.WithMetrics(assessmentmetrics.New()),
		service.WithStoreTx(storeTx),
	}
	if feed != nil {
		defer feed.Close()
		assessOpts = append(assessOpts, service.WithChangeFeed(feed))
		log.Info("history change feed enabled", "topic", cfg.KafkaTopic)
	}

	assessSvc := service.New(assessStore, histStore, refs, log, assessOpts...)

	admin := middleware.RequireAdminToken(cfg.AdminToken, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(procMetrics))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.ContentTypeJSON)

	project.NewHandler(project.NewService(projectStore), log).Register(r, admin)
	standard.NewHandler(standard.NewService(standardStore, standardOpts...), log).Register(r, admin)
	profession.NewHandler(profession.NewService(professionStore, professionOpts...), log).Register(r, admin)
	deliverygroup.NewHandler(deliverygroup.NewService(groupStore), log).Register(r, admin)
	deliverypartner.NewHandler(deliverypartner.NewService(partnerStore), log).Register(r, admin)
	assessmenthandler.NewHandler(assessSvc, log).Register(r, admin)

	r.Get("/healthz", healthHandler(healthDB, rdb))
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// healthHandler reports liveness plus the state of optional backends.
// Degraded backends are reported but do not fail the check; the process can
// still serve from whatever is reachable.
func healthHandler(pingDB func(context.Context) error, rdb *platformredis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		if pingDB != nil {
			status["database"] = "ok"
			if err := pingDB(r.Context()); err != nil {
				status["database"] = "unreachable"
			}
		}
		if rdb != nil {
			status["cache"] = "ok"
			if err := rdb.Health(r.Context()); err != nil {
				status["cache"] = "unreachable"
			}
		}
		httputil.WriteJSON(w, http.StatusOK, status)
	}
}
