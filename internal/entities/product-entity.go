package entities

import "time"

// Product mirrors the host platform's catalog entry. Only the fields the
// quote flow needs are kept here; the catalog itself is owned elsewhere.
type Product struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Reference string    `json:"reference"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
