package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-blog/internal/config"
	"github.com/sbilibin2017/gw-blog/internal/handlers"
	"github.com/sbilibin2017/gw-blog/internal/jwt"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/middlewares"
	"github.com/sbilibin2017/gw-blog/internal/password"
	"github.com/sbilibin2017/gw-blog/internal/repositories"
	"github.com/sbilibin2017/gw-blog/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-blog/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-blog API
// @version 1.0.0
// @description Role-gated blog and user management service
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, optional Redis cache and Kafka writer,
// and the HTTP server. It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := repositories.RunMigrations(ctx, db.DB); err != nil {
		return err
	}

	// Optional Redis blog cache
	var blogCache services.BlogCache
	if cfg.UseRedisCache() {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
		blogCache = repositories.NewBlogCacheRepository(rdb, cfg.BlogCacheTTL)
		logger.Log.Infof("Blog cache enabled at %s", cfg.RedisAddr())
	}

	// Optional Kafka blog events
	var kafkaWriter services.KafkaWriter
	if cfg.UseKafka() {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaBlogTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Blog events enabled on topic %s", cfg.KafkaBlogTopic)
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey))
	hasher := password.NewHasher(cfg.PasswordHashCost)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	blogReadRepo := repositories.NewBlogReadRepository(db)
	blogWriteRepo := repositories.NewBlogWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher, tokens)
	userService := services.NewUserService(userReadRepo, userWriteRepo, hasher)
	blogService := services.NewBlogService(blogReadRepo, blogWriteRepo, blogCache, kafkaWriter)

	srv := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: newRouter(cfg, db, tokens, authService, userService, blogService),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires every route. Mutating routes run inside a request transaction.
func newRouter(
	cfg *config.Config,
	db *sqlx.DB,
	tokens *jwt.JWT,
	authService *services.AuthService,
	userService *services.UserService,
	blogService *services.BlogService,
) http.Handler {
	tx := middlewares.TxMiddleware(db)
	auth := middlewares.AuthMiddleware(tokens, authService)

	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))

	// Public routes
	r.Get("/", handlers.NewHomeHandler())
	r.With(tx).Post("/register", handlers.NewRegisterHandler(authService))
	r.With(tx).Post("/token", handlers.NewLoginHandler(authService))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.With(tx).Post("/logout", handlers.NewLogoutHandler(authService))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", handlers.NewListUsersHandler(userService))
			r.Get("/me", handlers.NewGetMeHandler(userService))
			r.With(tx).Put("/me", handlers.NewUpdateMeHandler(userService))
			r.Get("/{id}", handlers.NewGetUserHandler(userService))
			r.With(tx).Put("/{id}", handlers.NewUpdateUserRoleHandler(userService))
			r.With(tx).Delete("/{id}", handlers.NewDeleteUserHandler(userService))
		})

		r.Get("/allblogs", handlers.NewListAllBlogsHandler(blogService))
		r.Get("/yourblogs", handlers.NewListOwnBlogsHandler(blogService))
		r.With(tx).Post("/blog", handlers.NewCreateBlogHandler(blogService))
		r.Get("/blog/{id}", handlers.NewGetBlogHandler(blogService))
		r.With(tx).Put("/blog/{id}", handlers.NewUpdateBlogHandler(blogService))
		r.With(tx).Delete("/blog/{id}", handlers.NewDeleteBlogHandler(blogService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
