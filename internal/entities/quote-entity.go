package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// QuoteRequest is a customer-submitted lead asking for pricing on a product.
// Records are created once via the submission endpoint and never edited;
// admins only read and delete them.
type QuoteRequest struct {
	ID         uint64      `json:"id"`
	ProductID  uint64      `json:"product_id"`
	ShopID     uint64      `json:"shop_id"`
	ClientName string      `json:"client_name"`
	Email      string      `json:"email"`
	Phone      null.String `json:"phone"`
	Note       null.String `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  null.Time   `json:"updated_at"`

	// ProductName is resolved at read time from the catalog; empty when the
	// product no longer exists.
	ProductName string `json:"product_name,omitempty"`
}
