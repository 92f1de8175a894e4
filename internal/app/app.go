package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pressly/goose/v3"
	"github.com/rachmurali02/social-app/internal/config"
	"github.com/rachmurali02/social-app/internal/handler"
	"github.com/rachmurali02/social-app/internal/middleware"
	"github.com/rachmurali02/social-app/internal/notification"
	"github.com/rachmurali02/social-app/internal/recommendation"
	"github.com/rachmurali02/social-app/internal/repository"
	"github.com/rachmurali02/social-app/internal/router"
	"github.com/rachmurali02/social-app/internal/scheduler"
	"github.com/rachmurali02/social-app/internal/service"
	"github.com/rachmurali02/social-app/internal/service/ports"
	"github.com/rachmurali02/social-app/internal/sessionstore"
	"github.com/rs/cors"
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
		config.AppName,
		cfg.Logger.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initSessionStore(ctx context.Context) (ports.SessionStore, error) {
	sc := a.cfg.Session

	if sc.Backend != config.SessionBackendDynamoDB {
		a.log.Info("session store: memory", logger.Duration("ttl", sc.TTL))
		return sessionstore.NewMemoryStore(sessionstore.WithTTL(sc.TTL)), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(sc.DynamoDB.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if sc.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.DynamoDB.Endpoint)
		}
	})

	a.log.Info("session store: dynamodb",
		logger.String("table", sc.DynamoDB.Table),
		logger.String("region", sc.DynamoDB.Region),
		logger.Duration("ttl", sc.TTL),
	)

	return sessionstore.NewDynamoStore(client, sc.DynamoDB.Table, sessionstore.WithTTL(sc.TTL)), nil
}

func (a *App) initServices() error {
	meetupRepo := repository.NewMeetupRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	sessions, err := a.initSessionStore(context.Background())
	if err != nil {
		return fmt.Errorf("init session store: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	rc := a.cfg.Recommendation
	if rc.APIKey == "" {
		a.log.Warn("recommendation api key is empty, fallback options will be served")
	}
	recommender := recommendation.NewClient(recommendation.Config{
		APIKey:    rc.APIKey,
		BaseURL:   rc.BaseURL,
		Model:     rc.Model,
		MaxTokens: rc.MaxTokens,
		Timeout:   rc.Timeout,
	})

	sessionService := service.NewSessionService(sessions, recommender, a.log)
	meetupService := service.NewMeetupService(meetupRepo, sessions, userRepo, n, a.log)
	userService := service.NewUserService(userRepo)

	a.scheduler = scheduler.New(
		sessionService,
		a.cfg.Session.SweepInterval,
		a.log,
	)

	h := handler.NewHandler(sessionService, meetupService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth([]byte(a.cfg.Auth.JWTSecret), a.cfg.Auth.Issuer),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   a.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}).Handler(r)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      corsHandler,
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

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
