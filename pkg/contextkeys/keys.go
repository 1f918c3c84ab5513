package contextkeys

type contextKey string

const (
	// UserIDKey holds the authenticated admin's id.
	UserIDKey contextKey = "userID"
	// ShopIDKey holds the storefront (tenant) scope for the request.
	ShopIDKey contextKey = "shopID"
)
