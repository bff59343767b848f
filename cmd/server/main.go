package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/planora/wedding-planner/internal/config"
	"github.com/planora/wedding-planner/internal/database"
	"github.com/planora/wedding-planner/internal/handler"
	"github.com/planora/wedding-planner/internal/middleware"
	"github.com/planora/wedding-planner/internal/model"
	"github.com/planora/wedding-planner/internal/planner"
	"github.com/planora/wedding-planner/internal/queue"
	"github.com/planora/wedding-planner/internal/repository"
	"github.com/planora/wedding-planner/internal/router"
	"github.com/planora/wedding-planner/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database: %v", err)
	}
	cancel()

	// Aggregate stores share one durable id counter.
	vendors := store.New[model.Vendor](store.NewMySQLBackend(db, "vendor_records"))
	weddings := store.New[model.Wedding](store.NewMySQLBackend(db, "wedding_records"))
	ids := store.NewIDGenerator(store.NewMySQLCell(db))
	core := planner.New(vendors, weddings, ids)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	e := echo.New()

	// Redis is optional: when unreachable, caching and rate limiting
	// degrade to pass-through.
	rdb := config.NewRedisClient()
	if rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	} else {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}
	var cacheMW echo.MiddlewareFunc
	if rdb != nil {
		cacheMW = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	}

	handlers := router.PlannerHandlers{
		Vendor:   handler.NewVendorHandler(core),
		Wedding:  handler.NewWeddingHandler(core),
		Guest:    handler.NewGuestHandler(core),
		Task:     handler.NewTaskHandler(core),
		Timeline: handler.NewTimelineHandler(core),
		Registry: handler.NewRegistryHandler(core),
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterPublic(e, handlers, cacheMW)
	router.RegisterPlanner(e, handlers, cfg.JWTSecret)

	// Booking confirmations are logged by a background consumer; it keeps
	// reconnecting on broker failures and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
