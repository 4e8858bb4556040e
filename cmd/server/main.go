package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/swasthya-saathi/portal-api/internal/config"
	"github.com/swasthya-saathi/portal-api/internal/database"
	"github.com/swasthya-saathi/portal-api/internal/handler"
	"github.com/swasthya-saathi/portal-api/internal/metrics"
	"github.com/swasthya-saathi/portal-api/internal/middleware"
	"github.com/swasthya-saathi/portal-api/internal/queue"
	"github.com/swasthya-saathi/portal-api/internal/repository"
	"github.com/swasthya-saathi/portal-api/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	dsn := database.DSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err := database.Migrate(dsn); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and response caching disabled")
	}

	reg := prometheus.NewRegistry()
	col := metrics.NewCollector(reg)

	// Background consumer turning broker messages into notification log
	// lines. Runs its own reconnect loop for the life of the process.
	go queue.StartNotificationConsumer()

	users := repository.NewUserRepo(db)
	profiles := repository.NewProfileRepo(db)
	tokens := repository.NewTokenRepo(db)
	resets := repository.NewResetRepo(db)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users, profiles, tokens, resets),
		Profile:   handler.NewProfileHandler(users, profiles),
		Members:   handler.NewMemberHandler(repository.NewMemberRepo(db)),
		Finance:   handler.NewFinanceHandler(repository.NewTransactionRepo(db)),
		Inventory: handler.NewInventoryHandler(repository.NewInventoryRepo(db)),
		Events:    handler.NewEventHandler(repository.NewEventRepo(db)),
		Insights:  handler.NewInsightHandler(repository.NewInsightRepo(db)),
		Schemes:   handler.NewSchemeHandler(repository.NewSchemeRepo(db)),
		Training:  handler.NewTrainingHandler(repository.NewTrainingRepo(db)),
		Products:  handler.NewProductHandler(repository.NewProductRepo(db)),
		Groups:    handler.NewSHGHandler(repository.NewSHGRepo(db)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.Metrics(col))

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, h.Auth, limiter)
	router.RegisterAPI(e, h, cfg.JWTSecret, cache)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(reg)))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
