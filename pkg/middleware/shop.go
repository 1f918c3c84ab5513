package middleware

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"requestquote/pkg/contextkeys"
)

// ShopContext resolves the tenant scope for the request from the
// X-Shop-Id header (or ?shop_id=), defaulting to shop 1. The storefronts
// embedding the quote form pass their own id here.
func ShopContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			shopID := uint64(1)

			raw := c.Request().Header.Get("X-Shop-Id")
			if raw == "" {
				raw = c.QueryParam("shop_id")
			}
			if raw != "" {
				if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
					shopID = id
				}
			}

			ctx := context.WithValue(c.Request().Context(), contextkeys.ShopIDKey, shopID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
