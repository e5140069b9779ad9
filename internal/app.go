package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"user-account-api/config"
	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
	"user-account-api/internal/infrastructure/db/postgres/user"
	"user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/infrastructure/mailer"
	"user-account-api/internal/infrastructure/metrics"
	"user-account-api/internal/infrastructure/mq"
	"user-account-api/internal/infrastructure/openapi"
	"user-account-api/internal/infrastructure/security"
	"user-account-api/internal/interface/api/rest"
	"user-account-api/internal/interface/api/rest/middleware"
	"user-account-api/pkg/rmqconsumer"
)

type App struct {
	logger      *zap.Logger
	cfg         config.Config
	db          *pgxpool.Pool
	httpSrv     *http.Server
	router      *gin.Engine
	mCounter    *prometheus.CounterVec
	mq          ports.RabbitMQ
	mqConsumer  ports.RMQConsumer
	userService ports.UserService
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err = postgres.Migrate(ctx, logger, dbPool, cfg.DB.MigrationsDir); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// mailer
	mailClient, err := mailer.New(cfg, logger)
	if err != nil {
		logger.Fatal("mailer config error", zap.Error(err))
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, mailClient)
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	return &App{
		logger:     logger,
		cfg:        cfg,
		db:         dbPool,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	sessions := postgres.NewSessionSource(a.db)
	hasher := security.NewHasher()
	userRepo := user.NewRepository(sessions, hasher, a.logger)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(jwtService)
	a.userService = services.NewUserService(userRepo, a.mq, a.mCounter)

	// controllers
	rest.NewAuthController(a.router, a.logger, a.userService, authService)
	rest.NewUserController(a.router, a.userService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
	a.router.StaticFile(rest.RouteOpenAPI, a.cfg.OpenAPI.FilePath)
}

// InitStartupTasks performs the one-shot startup work: rewriting the OpenAPI
// document and bootstrapping the first superuser when configured.
func (a *App) InitStartupTasks(ctx context.Context) {
	if err := openapi.Rewrite(a.logger, a.cfg.OpenAPI.FilePath); err != nil {
		a.logger.Error("openapi rewrite error", zap.Error(err))
	}

	if err := a.bootstrapSuperuser(ctx); err != nil {
		a.logger.Error("superuser bootstrap error", zap.Error(err))
	}
}

func (a *App) bootstrapSuperuser(ctx context.Context) error {
	admin := a.cfg.Admin
	if admin.Email == "" || admin.Username == "" || admin.Password == "" {
		return nil
	}

	spec, err := domain.NewEmailSpecification(admin.Email)
	if err != nil {
		return fmt.Errorf("invalid superuser email: %w", err)
	}
	existing, err := a.userService.FindByEmail(ctx, spec)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	created, err := a.userService.RegisterUser(ctx, domain.UserCreate{
		Username:    admin.Username,
		Email:       admin.Email,
		Password:    admin.Password,
		FirstName:   "Super",
		LastName:    "User",
		IsSuperuser: true,
	})
	if err != nil {
		return err
	}

	a.logger.Info("first superuser created",
		zap.Uint64("user_id", uint64(created.ID)),
		zap.String("email", mailer.MaskEmail(created.Email)),
	)

	return nil
}

func (a *App) Logger() *zap.Logger { return a.logger }
