package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"requestquote/pkg/config"
)

// SeedAdmin creates the back-office user used to reach the admin endpoints.
func SeedAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("seeding admin user...")

	if err := seedAdminUser(ctx, db, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	log.Println("admin user seeding done")
}

// SeedCatalog fills the products table with a small demo catalog.
func SeedCatalog(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo products...")

	if err := seedDemoProducts(ctx, db); err != nil {
		log.Fatalf("failed to seed demo products: %v", err)
	}
	log.Println("demo product seeding done")
}
