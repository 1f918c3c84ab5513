package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var demoProducts = []struct {
	Name      string
	Reference string
}{
	{"Industrial Shelving Unit", "SHELF-001"},
	{"Pallet Rack System", "RACK-010"},
	{"Conveyor Belt 6m", "CONV-006"},
	{"Hydraulic Lift Table", "LIFT-002"},
	{"Warehouse Trolley", "TROL-015"},
}

func seedDemoProducts(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		log.Printf("  - products table already has %d rows, skipping", count)
		return nil
	}

	for _, p := range demoProducts {
		query := `INSERT INTO products (name, reference, active) VALUES ($1, $2, TRUE)`
		if _, err := db.Exec(ctx, query, p.Name, p.Reference); err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.Name, err)
		}
	}

	log.Printf("  - %d demo products created", len(demoProducts))
	return nil
}
