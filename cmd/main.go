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
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-funds-transfer/internal/handlers"
	"github.com/sbilibin2017/gw-funds-transfer/internal/ledger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/middlewares"
	"github.com/sbilibin2017/gw-funds-transfer/internal/repositories"
	"github.com/sbilibin2017/gw-funds-transfer/internal/services"
	"github.com/sbilibin2017/gw-funds-transfer/internal/settlement"
	"github.com/sbilibin2017/gw-funds-transfer/internal/txid"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage backends selectable with APP_STORAGE.
const (
	storageMemory   = "memory"
	storagePostgres = "postgres"
)

// sampleAccounts is the number of accounts seeded into an empty store.
const sampleAccounts = 10

// config holds everything parseConfig reads from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	Storage  string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisVpaTTL       time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SettlementMinDelay time.Duration
	SettlementMaxDelay time.Duration
}

// @title gw-funds-transfer API
// @version 1.0.0
// @description Microservice for moving funds between accounts over UPI, IMPS, NEFT and RTGS
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
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

// parseConfig loads environment variables from a file and returns
// the application, storage, Redis, Kafka and settlement configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.Storage = strings.ToLower(getEnv("APP_STORAGE", storageMemory))
	if cfg.Storage != storageMemory && cfg.Storage != storagePostgres {
		err = fmt.Errorf("unsupported APP_STORAGE %q", cfg.Storage)
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, an empty host disables the VPA cache
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	var ttl int
	if ttl, err = strconv.Atoi(getEnv("REDIS_VPA_TTL_SECOND", "300")); err != nil {
		return
	}
	cfg.RedisVpaTTL = time.Duration(ttl) * time.Second

	// Kafka config, no brokers disables publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// Settlement latency config
	var minMs, maxMs int
	if minMs, err = strconv.Atoi(getEnv("SETTLEMENT_DELAY_MIN_MS", "100")); err != nil {
		return
	}
	if maxMs, err = strconv.Atoi(getEnv("SETTLEMENT_DELAY_MAX_MS", "500")); err != nil {
		return
	}
	cfg.SettlementMinDelay = time.Duration(minMs) * time.Millisecond
	cfg.SettlementMaxDelay = time.Duration(maxMs) * time.Millisecond

	return
}

// stores groups the persistence dependencies of the services.
type stores struct {
	accounts interface {
		services.AccountStore
		services.AccountFinder
	}
	upiIDs       services.UpiIDStore
	transactions services.TransactionStore
	close        func()
}

// openStores builds the configured storage backend and loads sample data into an empty one.
func openStores(ctx context.Context, cfg config) (*stores, error) {
	if cfg.Storage == storageMemory {
		store := repositories.NewMemoryStore()
		if err := repositories.SeedSampleData(ctx, store, sampleAccounts); err != nil {
			return nil, err
		}
		logger.Log.Infow("using in-memory storage", "accounts", sampleAccounts)
		return &stores{
			accounts:     store,
			upiIDs:       store,
			transactions: store,
			close:        func() {},
		}, nil
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres migration failed: %w", err)
	}

	accountRepo := repositories.NewAccountRepository(db)
	upiRepo := repositories.NewUpiIDRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)

	existing, err := accountRepo.ListAccounts(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	if len(existing) == 0 {
		seeder := struct {
			*repositories.AccountRepository
			*repositories.UpiIDRepository
		}{accountRepo, upiRepo}
		if err := repositories.SeedSampleData(ctx, seeder, sampleAccounts); err != nil {
			db.Close()
			return nil, err
		}
	}

	inFlight, err := txnRepo.ListInFlight(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, txn := range inFlight {
		logger.Log.Warnw("transaction left in flight, needs reconciliation",
			"transaction_id", txn.TransactionID,
			"leg", txn.Leg,
			"from", txn.FromAccount,
			"to", txn.ToAccount,
			"amount", txn.Amount,
		)
	}

	return &stores{
		accounts:     accountRepo,
		upiIDs:       upiRepo,
		transactions: txnRepo,
		close:        func() { db.Close() },
	}, nil
}

// openUpiCache connects to Redis. It returns nil when the cache is disabled or unreachable.
func openUpiCache(ctx context.Context, cfg config) (*redis.Client, services.UpiCache) {
	if cfg.RedisHost == "" {
		logger.Log.Infow("VPA cache disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unavailable, VPA cache disabled", "error", err)
		rdb.Close()
		return nil, nil
	}
	return rdb, repositories.NewUpiCacheRepository(rdb, cfg.RedisVpaTTL)
}

// newRouter mounts the API handlers.
func newRouter(cfg config, transferSvc *services.TransferService, accountSvc *services.AccountService) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/transfers", handlers.NewTransferHandler(transferSvc))
		r.Get("/transactions/{id}", handlers.NewTransactionStatusHandler(transferSvc))

		r.Post("/accounts", handlers.NewOpenAccountHandler(accountSvc))
		r.Get("/accounts/{accountNumber}", handlers.NewGetAccountHandler(accountSvc))
		r.Get("/accounts/{accountNumber}/balance", handlers.NewGetBalanceHandler(accountSvc))
		r.Post("/accounts/{accountNumber}/deactivate", handlers.NewDeactivateAccountHandler(accountSvc))

		r.Post("/upi", handlers.NewRegisterUpiIDHandler(accountSvc))
		r.Get("/upi/{upiId}/validate", handlers.NewValidateUpiIDHandler(accountSvc))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, storage, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel)

	// Storage
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	// Redis VPA cache
	rdb, upiCache := openUpiCache(ctx, cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Infow("Kafka publishing disabled")
	}

	// Core components
	simulator := settlement.New(cfg.SettlementMinDelay, cfg.SettlementMaxDelay)
	l := ledger.New(st.accounts)
	ids := txid.New()

	// Services
	transferSvc := services.NewTransferService(st.accounts, upiCache, st.transactions, l, simulator, ids, kafkaWriter)
	accountSvc := services.NewAccountService(st.accounts, st.upiIDs, upiCache, simulator, l)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, transferSvc, accountSvc),
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
		logger.Log.Infow("shutdown signal received, stopping HTTP server")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Infow("HTTP server stopped gracefully")
	return nil
}
