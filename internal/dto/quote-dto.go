package dto

import (
	"strings"

	"github.com/aarondl/null/v8"
)

// SubmitQuoteDTO is what the storefront form posts. Field order matters for
// validation reporting: the first violated rule wins.
type SubmitQuoteDTO struct {
	ProductID  uint64      `json:"product_id" form:"product_id" validate:"required,gt=0"`
	ClientName string      `json:"client_name" form:"client_name" validate:"required,min=2,max=255"`
	Email      string      `json:"email" form:"email" validate:"required,custom_email,max=255"`
	Phone      null.String `json:"phone" form:"phone" validate:"omitempty,min=10,max=50"`
	Note       null.String `json:"message" form:"message" validate:"omitempty,max=1000"`

	// FormToken is the one-time token issued to the rendered form. Only
	// checked when the feature is configured on.
	FormToken string `json:"form_token" form:"form_token"`
}

// Normalize trims whitespace and drops empty optional fields, so "" and
// absent mean the same thing at rest.
func (d *SubmitQuoteDTO) Normalize() {
	d.ClientName = strings.TrimSpace(d.ClientName)
	d.Email = strings.TrimSpace(d.Email)

	if d.Phone.Valid {
		d.Phone.String = strings.TrimSpace(d.Phone.String)
		if d.Phone.String == "" {
			d.Phone = null.String{}
		}
	}
	if d.Note.Valid {
		d.Note.String = strings.TrimSpace(d.Note.String)
		if d.Note.String == "" {
			d.Note = null.String{}
		}
	}
}

// QuoteDTO is what the server sends back for a stored quote request.
type QuoteDTO struct {
	ID          uint64      `json:"id"`
	ProductID   uint64      `json:"product_id"`
	ProductName string      `json:"product_name"`
	ShopID      uint64      `json:"shop_id"`
	ClientName  string      `json:"client_name"`
	Email       string      `json:"email"`
	Phone       null.String `json:"phone"`
	Note        null.String `json:"note"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// SubmitResultDTO is the submission endpoint's success body.
type SubmitResultDTO struct {
	QuoteID uint64 `json:"quote_id"`
}

// BulkDeleteDTO names the records a bulk delete should remove.
type BulkDeleteDTO struct {
	IDs []uint64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// BulkDeleteResultDTO reports how many deletions succeeded; per-id failures
// do not abort the batch.
type BulkDeleteResultDTO struct {
	Deleted   uint64   `json:"deleted"`
	Requested int      `json:"requested"`
	Missing   []uint64 `json:"missing,omitempty"`
}

// FormTokenDTO carries a freshly issued one-time form token.
type FormTokenDTO struct {
	Token string `json:"form_token"`
}
