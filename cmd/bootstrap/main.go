// Command bootstrap creates the POS schema and seeds the sample
// catalog.  It is run once per deployment, separately from the API
// server, and is safe to re-run: table creation is idempotent, though
// seeding appends the sample rows again.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/asukapos/pos-backend/internal/config"
	"github.com/asukapos/pos-backend/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLCA)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.CreateSchema(ctx, db); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	existing, err := database.ListProducts(ctx, db)
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	log.Printf("existing catalog rows: %d", len(existing))
	for _, p := range existing {
		log.Printf("  %d %d %s %d", p.ItemID, p.ProductCode, p.ProductName, p.Price)
	}

	n, err := database.SeedProducts(ctx, db)
	if err != nil {
		log.Fatalf("seed products: %v", err)
	}
	log.Printf("seeded %d catalog rows", n)

	after, err := database.ListProducts(ctx, db)
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	log.Printf("catalog after seeding:")
	for _, p := range after {
		log.Printf("  %d %d %s %d", p.ItemID, p.ProductCode, p.ProductName, p.Price)
	}
}
