package seeders

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"requestquote/pkg/config"
	"requestquote/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	email := cfg.Notify.AdminEmail
	if email == "" {
		email = "admin@example.com"
	}

	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existingID)
	if err == nil {
		log.Printf("  - admin user %q already exists, skipping", email)
		return nil
	}
	if err.Error() != "no rows in result set" {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
		log.Println("  - SEED_ADMIN_PASSWORD not set, using default password 'admin'")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	query := `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)`
	if _, err := db.Exec(ctx, query, "Administrator", email, hashed); err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}

	log.Printf("  - admin user %q created", email)
	return nil
}
