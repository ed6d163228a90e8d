package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-formation-admin/docs"
	"github.com/sbilibin2017/gw-formation-admin/internal/config"
	"github.com/sbilibin2017/gw-formation-admin/internal/database"
	"github.com/sbilibin2017/gw-formation-admin/internal/jwt"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/middlewares"
	"github.com/sbilibin2017/gw-formation-admin/internal/notify"
	"github.com/sbilibin2017/gw-formation-admin/internal/repositories"
	"github.com/sbilibin2017/gw-formation-admin/internal/seed"
	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-formation-admin API
// @version 1.0.0
// @description Training program back office: public submissions, staff login and admin review
// @host localhost:8080
// @BasePath /api/v1
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

// seedFile returns the seed document from SEED_FILE, or the admin account from the environment.
func seedFile(cfg *config.Config) (*seed.File, error) {
	if cfg.SeedFile != "" {
		return seed.LoadFile(cfg.SeedFile)
	}
	return &seed.File{Admin: seed.Account{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		FullName: cfg.Admin.FullName,
	}}, nil
}

// run wires storage, messaging and notifications into the HTTP server and
// blocks until a shutdown signal or a server error.
// logKafkaCompletion reports the outcome of an async batch write.
func logKafkaCompletion(messages []kafka.Message, err error) {
	if err != nil {
		logger.Log.Errorw("Failed to deliver submission events", "count", len(messages), "error", err)
		return
	}
	logger.Log.Debugw("Submission events delivered", "count", len(messages))
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.Development); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.App.LogLevel)

	// PostgreSQL
	db, err := database.Open(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Log.Infow("connected to PostgreSQL", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	// Redis, optional
	var limiter middlewares.Counter
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unreachable, rate limiter fails open", "addr", cfg.Redis.Addr(), "err", err)
		}
		limiter = repositories.NewRateLimitRepository(rdb, cfg.RateLimit.Window)
	} else {
		logger.Log.Infow("REDIS_HOST not set, rate limiting disabled")
	}

	// Kafka, optional
	var kafkaWriter services.KafkaWriter
	if cfg.Kafka.Enabled() {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
			BatchTimeout: 10 * time.Millisecond,
			Async:        true,
			Completion:   logKafkaCompletion,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Infow("KAFKA_BROKERS not set, submission events disabled")
	}

	// Email notifications
	var mailer notify.Mailer = notify.LogMailer{}
	if cfg.SMTP.Host != "" {
		smtp := cfg.SMTP
		mailer = &smtp
	}
	dispatcher := notify.NewDispatcher(mailer, cfg.Notify)
	defer dispatcher.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)

	// Services
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration),
	)
	authService := services.NewAuthService(userRepo, tokens, tokens)
	userService := services.NewUserService(userRepo)
	applicationService := services.NewApplicationService(applicationRepo, dispatcher, kafkaWriter)
	contactService := services.NewContactService(contactRepo, dispatcher, kafkaWriter)
	quoteService := services.NewQuoteService(quoteRepo, dispatcher, kafkaWriter)
	testimonialService := services.NewTestimonialService(testimonialRepo, dispatcher, kafkaWriter)

	// Seed
	doc, err := seedFile(cfg)
	if err != nil {
		return fmt.Errorf("load seed file: %w", err)
	}
	if err := seed.NewSeeder(userService, applicationRepo).Run(ctx, doc); err != nil {
		return err
	}

	router := newRouter(routerDeps{
		Auth:         authService,
		Users:        userService,
		Applications: applicationService,
		Contacts:     contactService,
		Quotes:       quoteService,
		Testimonials: testimonialService,
		DB:           db,
		Tokener:      tokens,
		Resolver:     authService,
		Limiter:      limiter,
		RateLimit:    cfg.RateLimit.Requests,
		RateWindow:   cfg.RateLimit.Window,
		Timeout:      cfg.App.RequestTimeout,
		CORSOrigins:  cfg.App.CORSOrigins,
		SwaggerURL:   fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr()),
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
