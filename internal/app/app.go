package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/audit"
	"github.com/GlebRadaev/poolkeeper/internal/config"
	"github.com/GlebRadaev/poolkeeper/internal/events"
	"github.com/GlebRadaev/poolkeeper/internal/handlers"
	"github.com/GlebRadaev/poolkeeper/internal/kv"
	"github.com/GlebRadaev/poolkeeper/internal/pg"
	"github.com/GlebRadaev/poolkeeper/internal/repo"
	"github.com/GlebRadaev/poolkeeper/internal/service"
	"github.com/GlebRadaev/poolkeeper/internal/settlement"
	"github.com/GlebRadaev/poolkeeper/internal/tokenclient"
	"github.com/GlebRadaev/poolkeeper/pkg/auth"
	"github.com/GlebRadaev/poolkeeper/pkg/clients"
	"github.com/GlebRadaev/poolkeeper/pkg/logger"
)

const publishWorkers = 4

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type publisher interface {
	settlement.Publisher
	Close() error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	auditor   *audit.Auditor
	publisher publisher
	closeRepo func() error

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if cfg.JWTSecret == "" {
		zap.L().Warn("JWT_SECRET is not set, using the built-in signing key")
	}
	auth.SetSecretKey(cfg.JWTSecret)

	a.cfg = cfg
	if err = a.openRepositories(ctx); err != nil {
		return err
	}
	if err = a.startServices(ctx); err != nil {
		a.release()
		return err
	}

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("storage", cfg.Storage),
		zap.String("tokenService", cfg.TokenServiceAddress),
	)
	return nil
}

// startServices wires everything above the repositories. On error the caller
// releases the storage.
func (a *Application) startServices(ctx context.Context) error {
	a.publisher = newPublisher(a.cfg)
	tokens := tokenclient.New(a.cfg.TokenServiceAddress, clients.NewHTTPClient())
	a.srv = service.New(a.repo, tokens, a.publisher, a.cfg.PoolAddress)
	if err := a.repo.TXManager.Begin(ctx, a.srv.Ledger.Instantiate); err != nil {
		zap.L().Error("instantiate failed: ", zap.Error(err))
		return fmt.Errorf("can't instantiate ledger: %w", err)
	}
	a.api = handlers.New(a.srv)

	if err := a.startAuditor(ctx); err != nil {
		return fmt.Errorf("can't start auditor: %w", err)
	}

	if err := a.startHTTPServer(ctx); err != nil {
		if a.auditor != nil {
			a.auditor.Stop()
		}
		return fmt.Errorf("can't start http server: %w", err)
	}
	return nil
}

func (a *Application) openRepositories(ctx context.Context) error {
	switch a.cfg.Storage {
	case config.StoragePebble:
		store, err := kv.Open(a.cfg.PebbleDir)
		if err != nil {
			zap.L().Error("open pebble store failed: ", zap.Error(err))
			return fmt.Errorf("can't open pebble store: %w", err)
		}
		a.repo = repo.NewKV(store)
		a.closeRepo = store.Close
	default:
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			pool.Close()
			return fmt.Errorf("can't run migrations: %w", err)
		}
		a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
		a.closeRepo = func() error {
			pool.Close()
			return nil
		}
	}
	return nil
}

func newPublisher(cfg *config.Config) publisher {
	if len(cfg.KafkaBrokers) == 0 {
		zap.L().Info("KAFKA_BROKERS is not set, ledger events are only logged")
		return events.NoopPublisher{}
	}
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, publishWorkers)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.auditor != nil {
			a.auditor.Stop()
		}
		a.release()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startAuditor schedules the invariant audit. It is stopped by the HTTP
// server shutdown goroutine before storage is closed.
func (a *Application) startAuditor(ctx context.Context) error {
	if a.cfg.AuditSchedule == "" {
		return nil
	}
	auditor := audit.New(ctx, a.repo.State())
	if err := auditor.Register(a.cfg.AuditSchedule); err != nil {
		return err
	}
	auditor.Start()
	a.auditor = auditor
	return nil
}

// release flushes pending events and closes storage once no request can
// reach the ledger any more. Calling it twice is a no-op.
func (a *Application) release() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			zap.L().Error("event publisher close failed", zap.Error(err))
		}
		a.publisher = nil
	}
	if a.closeRepo != nil {
		if err := a.closeRepo(); err != nil {
			zap.L().Error("storage close failed", zap.Error(err))
		}
		a.closeRepo = nil
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
