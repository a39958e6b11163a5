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

	"github.com/GlebRadaev/bookstore/internal/config"
	"github.com/GlebRadaev/bookstore/internal/handlers"
	"github.com/GlebRadaev/bookstore/internal/mq"
	"github.com/GlebRadaev/bookstore/internal/payments"
	"github.com/GlebRadaev/bookstore/internal/pg"
	"github.com/GlebRadaev/bookstore/internal/repo"
	"github.com/GlebRadaev/bookstore/internal/service"
	"github.com/GlebRadaev/bookstore/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	pool     *pgxpool.Pool
	backend  mq.Backend
	consumer *payments.Consumer

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
	return a.start(ctx, cfg)
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.pool = pool
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		a.close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg)
	a.api = handlers.New(a.srv, cfg.RequestTimeout)

	backend, err := mq.NewBackend(ctx, cfg.MQ)
	if err != nil {
		zap.L().Error("mq backend failed: ", zap.Error(err))
		a.close()
		return fmt.Errorf("can't connect mq backend: %w", err)
	}
	if backend != nil {
		a.backend = backend
		a.consumer = payments.NewConsumer(backend, a.srv.BalanceService,
			cfg.MQ.PaymentEventsChannel, cfg.MQ.PaymentEventsWorkers)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		a.close()
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startPaymentConsumer(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
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

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
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

// startPaymentConsumer is a no-op when no mq backend is configured.
func (a *Application) startPaymentConsumer(ctx context.Context) {
	if a.consumer == nil {
		zap.L().Info("mq backend not configured, payment events consumer disabled")
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Run(ctx); err != nil {
			a.errCh <- fmt.Errorf("payment events consumer exited with error: %w", err)
		}
	}()
}

func (a *Application) close() {
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			zap.L().Error("mq close failed", zap.Error(err))
		}
		a.backend = nil
	}
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
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
	a.close()

	return appErr
}
