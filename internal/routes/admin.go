package routes

import (
	"github.com/labstack/echo/v4"

	"requestquote/internal/controllers"
)

func runAdminQuoteRouter(secureGroup *echo.Group, adminCtrl *controllers.AdminQuoteController) {
	quoteGroup := secureGroup.Group("/quotes")
	{
		quoteGroup.GET("", adminCtrl.GetQuotes)
		quoteGroup.GET("/:id", adminCtrl.FindQuote)
		quoteGroup.DELETE("/:id", adminCtrl.DeleteQuote)
		quoteGroup.POST("/bulk_delete", adminCtrl.BulkDeleteQuotes)
	}
}
