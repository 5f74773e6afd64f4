package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/TableBooker/internal/config"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler"
	"github.com/stpnv0/TableBooker/internal/middleware"
	"github.com/stpnv0/TableBooker/internal/notification"
	"github.com/stpnv0/TableBooker/internal/repository"
	"github.com/stpnv0/TableBooker/internal/repository/inmem"
	"github.com/stpnv0/TableBooker/internal/router"
	"github.com/stpnv0/TableBooker/internal/scheduler"
	"github.com/stpnv0/TableBooker/internal/service"
	"github.com/stpnv0/TableBooker/internal/service/ports"
	"github.com/stpnv0/TableBooker/internal/validation"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TableBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	tableRepo, bookingStore, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(tableRepo, bookingStore); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (ports.TableRepo, ports.BookingStore, error) {
	if a.cfg.Storage.Engine == "memory" {
		store := inmem.NewStore()
		seedTables(store)
		a.log.Info("using in-memory storage")
		return tableRepoAdapter{store}, store, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return repository.NewTableRepo(db), repository.NewBookingRepo(db), nil
}

func (a *App) initServices(tableRepo ports.TableRepo, bookingStore ports.BookingStore) error {
	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.StaffChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	v := validation.New(a.cfg.Restaurant.MaxGuestsPerTable)
	availabilityService := service.NewAvailabilityService(tableRepo, bookingStore)
	bookingService := service.NewBookingService(bookingStore, availabilityService, v, n, a.log)
	tableService := service.NewTableService(tableRepo, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, availabilityService, tableService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}

// seedTables mirrors the seed migration for the in-memory engine.
func seedTables(store *inmem.Store) {
	for _, t := range []struct {
		capacity int
		location domain.TableLocation
	}{
		{2, domain.TableLocationIndoor},
		{2, domain.TableLocationIndoor},
		{2, domain.TableLocationOutdoor},
		{2, domain.TableLocationTerrace},
		{4, domain.TableLocationIndoor},
		{4, domain.TableLocationIndoor},
		{4, domain.TableLocationIndoor},
		{4, domain.TableLocationOutdoor},
		{4, domain.TableLocationTerrace},
		{6, domain.TableLocationIndoor},
		{6, domain.TableLocationOutdoor},
		{6, domain.TableLocationTerrace},
		{8, domain.TableLocationIndoor},
		{8, domain.TableLocationOutdoor},
		{10, domain.TableLocationIndoor},
	} {
		store.AddTable(t.capacity, t.location)
	}
}

// tableRepoAdapter renames the in-memory store's table lookup to match the
// ports.TableRepo method set.
type tableRepoAdapter struct {
	*inmem.Store
}

func (a tableRepoAdapter) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	return a.Store.GetTableByID(ctx, id)
}
