package main // Entry point package

import (
	"context" // Context type for the event publisher signature
	"log"     // Logging library

	"github.com/joho/godotenv"                      // .env loading for local development
	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware

	"github.com/asukapos/pos-backend/internal/config"     // Internal config loader
	"github.com/asukapos/pos-backend/internal/database"   // MySQL pool constructor
	"github.com/asukapos/pos-backend/internal/handler"    // HTTP handlers
	"github.com/asukapos/pos-backend/internal/middleware" // Product lookup cache
	"github.com/asukapos/pos-backend/internal/queue"      // Purchase event consumer
	"github.com/asukapos/pos-backend/internal/repository" // Storage access
	"github.com/asukapos/pos-backend/internal/router"     // Route registration
	"github.com/asukapos/pos-backend/internal/service/queue_publisher"
)

// corsOrigins lists the browser origins allowed to call the API.  The
// register frontend runs on localhost during development and on Azure
// or Vercel when deployed.
var corsOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8000",
	"https://*.azurewebsites.net",
	"https://*.vercel.app",
	"*",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err) // fine in production, envs come from the platform
	}
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLCA)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// The storage clients are constructed once here and injected into
	// the handlers; no package-level database state exists.
	productRepo := repository.NewProductRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)

	var publish func(ctx context.Context, ev queue.PurchaseRecordedEvent) error
	if cfg.EventsEnabled {
		publish = queue_publisher.PublishPurchaseRecorded
		go func() {
			if err := queue.StartPurchaseConsumer(); err != nil {
				log.Printf("purchase consumer stopped: %v", err)
			}
		}()
	}

	productHandler := handler.NewProductHandler(productRepo)
	purchaseHandler := handler.NewPurchaseHandler(transactionRepo, publish)

	e := echo.New() // Create Echo instance
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		ExposeHeaders:    []string{"*"},
	}))

	// Redis is optional: when unreachable the client is nil and the
	// cache middleware degrades to a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, product cache disabled")
	}
	productCache := middleware.ProductCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e, productHandler, purchaseHandler, productCache)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
