package main

import (
	"context"
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

	"github.com/drivelog/drivelog-api/internal/handlers"

	appjwt "github.com/drivelog/drivelog-api/internal/jwt"
	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/repositories"
	"github.com/drivelog/drivelog-api/internal/services"

	"github.com/drivelog/drivelog-api/internal/middlewares"

	_ "github.com/drivelog/drivelog-api/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title drivelog API
// @version 1.0.0
// @description Service for tracking vehicle maintenance: users, vehicles, works and maintenance events
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, patternCacheTTLSecond,
		kafkaBrokers, kafkaAuditTopic,
		jwtPrivateKeyPath, jwtPublicKeyPath,
		jwtAccessTTLSecond, jwtRefreshTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, patternCacheTTLSecond,
		kafkaBrokers, kafkaAuditTopic,
		jwtPrivateKeyPath, jwtPublicKeyPath,
		jwtAccessTTLSecond, jwtRefreshTTLSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, patternCacheTTLSecond int,
	kafkaBrokers, kafkaAuditTopic string,
	jwtPrivateKeyPath, jwtPublicKeyPath string,
	jwtAccessTTLSecond, jwtRefreshTTLSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "drivelog")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if patternCacheTTLSecond, err = strconv.Atoi(getEnv("WORK_PATTERN_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	kafkaAuditTopic = getEnv("KAFKA_AUDIT_TOPIC", "maintenance-audit")

	// JWT config
	jwtPrivateKeyPath = getEnv("JWT_PRIVATE_KEY_PATH", "jwt_private.pem")
	jwtPublicKeyPath = getEnv("JWT_PUBLIC_KEY_PATH", "jwt_public.pem")
	if jwtAccessTTLSecond, err = strconv.Atoi(getEnv("JWT_ACCESS_TTL_SECOND", "900")); err != nil {
		return
	}
	if jwtRefreshTTLSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_TTL_SECOND", "2592000")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, patternCacheTTLSecond int,
	kafkaBrokers, kafkaAuditTopic string,
	jwtPrivateKeyPath, jwtPublicKeyPath string,
	jwtAccessTTLSecond, jwtRefreshTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "err", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "err", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "err", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for the maintenance-audit stream
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(kafkaBrokers, ",")...),
		Topic:                  kafkaAuditTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	privPEM, err := os.ReadFile(jwtPrivateKeyPath)
	if err != nil {
		logger.Log.Errorw("failed to read JWT private key", "path", jwtPrivateKeyPath, "err", err)
		return err
	}
	pubPEM, err := os.ReadFile(jwtPublicKeyPath)
	if err != nil {
		logger.Log.Errorw("failed to read JWT public key", "path", jwtPublicKeyPath, "err", err)
		return err
	}
	refreshTTL := time.Duration(jwtRefreshTTLSecond) * time.Second
	jwt, err := appjwt.New(
		appjwt.WithPrivateKeyPEM(privPEM),
		appjwt.WithPublicKeyPEM(pubPEM),
		appjwt.WithAccessTTL(time.Duration(jwtAccessTTLSecond)*time.Second),
		appjwt.WithRefreshTTL(refreshTTL),
	)
	if err != nil {
		logger.Log.Errorw("failed to initialize JWT service", "err", err)
		return err
	}

	// Initialize repositories
	txRunner := repositories.NewTxRunner(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.TxFromContext)
	vehicleReadRepo := repositories.NewVehicleReadRepository(db)
	vehicleWriteRepo := repositories.NewVehicleWriteRepository(db, repositories.TxFromContext)
	patternReadRepo := repositories.NewWorkPatternReadRepository(db)
	patternWriteRepo := repositories.NewWorkPatternWriteRepository(db, repositories.TxFromContext)
	patternCacheRepo := repositories.NewWorkPatternCacheRepository(rdb, time.Duration(patternCacheTTLSecond)*time.Second)
	workReadRepo := repositories.NewWorkReadRepository(db)
	workWriteRepo := repositories.NewWorkWriteRepository(db, repositories.TxFromContext)
	workEventReadRepo := repositories.NewWorkEventReadRepository(db)
	workEventWriteRepo := repositories.NewWorkEventWriteRepository(db, repositories.TxFromContext)
	mileageEventReadRepo := repositories.NewMileageEventReadRepository(db)
	mileageEventWriteRepo := repositories.NewMileageEventWriteRepository(db, repositories.TxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	patternService := services.NewWorkPatternService(patternReadRepo, patternWriteRepo, patternCacheRepo)
	vehicleService := services.NewVehicleService(vehicleReadRepo, vehicleWriteRepo, workWriteRepo, patternService, txRunner)
	workService := services.NewWorkService(workReadRepo, workWriteRepo, vehicleReadRepo, workEventReadRepo)
	ratchet := services.NewHighestWinsRatchet(vehicleWriteRepo)
	eventService := services.NewEventService(
		workEventReadRepo, workEventWriteRepo,
		mileageEventReadRepo, mileageEventWriteRepo,
		workReadRepo, vehicleReadRepo,
		ratchet, kafkaWriter,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/users", handlers.NewRegisterHandler(authService))
		r.Post("/auth/jwt/login", handlers.NewLoginHandler(authService, refreshTTL))
		r.Post("/auth/jwt/refresh", handlers.NewRefreshHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwt))

			r.Get("/auth/jwt/users/me", handlers.NewMeHandler(authService))

			r.Get("/users", handlers.NewUserListHandler(userService))
			r.Get("/users/{id}", handlers.NewUserGetHandler(userService))
			r.Patch("/users/{id}", handlers.NewUserUpdateHandler(userService))
			r.Delete("/users/{id}", handlers.NewUserDeleteHandler(userService))
			r.Get("/users/{id}/vehicles", handlers.NewOwnerVehiclesHandler(vehicleService))

			r.Post("/vehicles", handlers.NewVehicleCreateHandler(vehicleService))
			r.Get("/vehicles", handlers.NewVehicleListHandler(vehicleService))
			r.Get("/vehicles/by-vin/{vin}", handlers.NewVehicleByVINHandler(vehicleService))
			r.Get("/vehicles/{id}", handlers.NewVehicleGetHandler(vehicleService))
			r.Patch("/vehicles/{id}", handlers.NewVehicleUpdateHandler(vehicleService))
			r.Delete("/vehicles/{id}", handlers.NewVehicleDeleteHandler(vehicleService))
			r.Get("/vehicles/{id}/works", handlers.NewVehicleWorksHandler(workService))
			r.Get("/vehicles/{id}/mileage-events", handlers.NewVehicleMileageEventsHandler(eventService))

			r.Get("/workpatterns", handlers.NewWorkPatternListHandler(patternService))
			r.Post("/workpatterns", handlers.NewWorkPatternCreateHandler(patternService))
			r.Get("/workpatterns/{id}", handlers.NewWorkPatternGetHandler(patternService))
			r.Patch("/workpatterns/{id}", handlers.NewWorkPatternUpdateHandler(patternService))
			r.Delete("/workpatterns/{id}", handlers.NewWorkPatternDeleteHandler(patternService))

			r.Post("/works", handlers.NewWorkCreateHandler(workService))
			r.Get("/works/{id}", handlers.NewWorkGetHandler(workService))
			r.Patch("/works/{id}", handlers.NewWorkUpdateHandler(workService))
			r.Delete("/works/{id}", handlers.NewWorkDeleteHandler(workService))
			r.Get("/works/{id}/events", handlers.NewWorkEventsListHandler(eventService))
			r.Get("/works/{id}/mileage-interval", handlers.NewMileageIntervalHandler(workService))

			r.Post("/work-events", handlers.NewWorkEventCreateHandler(eventService))
			r.Get("/work-events/{id}", handlers.NewWorkEventGetHandler(eventService))
			r.Patch("/work-events/{id}", handlers.NewWorkEventUpdateHandler(eventService))
			r.Delete("/work-events/{id}", handlers.NewWorkEventDeleteHandler(eventService))

			r.Post("/mileage-events", handlers.NewMileageEventCreateHandler(eventService))
			r.Get("/mileage-events/{id}", handlers.NewMileageEventGetHandler(eventService))
			r.Patch("/mileage-events/{id}", handlers.NewMileageEventUpdateHandler(eventService))
			r.Delete("/mileage-events/{id}", handlers.NewMileageEventDeleteHandler(eventService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
