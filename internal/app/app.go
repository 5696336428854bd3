package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/Devpy220/DiscoveryEvents/internal/config"
	"github.com/Devpy220/DiscoveryEvents/internal/handler"
	"github.com/Devpy220/DiscoveryEvents/internal/middleware"
	"github.com/Devpy220/DiscoveryEvents/internal/notification"
	"github.com/Devpy220/DiscoveryEvents/internal/repository"
	"github.com/Devpy220/DiscoveryEvents/internal/repository/memory"
	"github.com/Devpy220/DiscoveryEvents/internal/router"
	"github.com/Devpy220/DiscoveryEvents/internal/scheduler"
	"github.com/Devpy220/DiscoveryEvents/internal/service"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports"
	"github.com/Devpy220/DiscoveryEvents/internal/session"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"DiscoveryEvents",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	repos, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	app.initServices(repos)

	return app, nil
}

// repoSet is the full set of storage ports, satisfied by either the
// Postgres repositories or the in-memory store.
type repoSet struct {
	users     ports.UserRepo
	reference ports.ReferenceRepo
	events    ports.EventRepo
	tickets   ports.TicketRepo
	orders    ports.OrderRepo
}

func (a *App) initStorage() (*repoSet, error) {
	if a.cfg.Storage.Driver == "memory" {
		store := memory.NewStore()
		store.Seed()
		a.log.Info("using in-memory storage")
		return &repoSet{
			users:     store.Users(),
			reference: store.Reference(),
			events:    store.Events(),
			tickets:   store.Tickets(),
			orders:    store.Orders(),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
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
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return &repoSet{
		users:     repository.NewUserRepo(db),
		reference: repository.NewReferenceRepo(db),
		events:    repository.NewEventRepo(db),
		tickets:   repository.NewTicketRepo(db),
		orders:    repository.NewOrderRepo(db),
	}, nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices(repos *repoSet) {
	notifier := notification.NewEmailNotifier(notification.SMTPConfig{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
		FromName: a.cfg.SMTP.FromName,
	}, a.log)

	userService := service.NewUserService(repos.users, notifier, a.log)
	referenceService := service.NewReferenceService(repos.reference)
	eventService := service.NewEventService(repos.events, repos.reference)
	ticketService := service.NewTicketService(repos.tickets, repos.events, a.log)
	orderService := service.NewOrderService(
		repos.orders,
		repos.tickets,
		repos.events,
		repos.users,
		notifier,
		a.log,
	)

	a.scheduler = scheduler.New(
		ticketService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	sessions := session.NewRedisManager(a.redis, a.cfg.Session.TTL)

	h := handler.NewHandler(
		userService,
		referenceService,
		eventService,
		ticketService,
		orderService,
		sessions,
		a.cfg.Session.TTL,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequireAuth(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Session(sessions),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
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

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
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
