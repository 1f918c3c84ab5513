package routes

import (
	"github.com/labstack/echo/v4"

	"requestquote/internal/controllers"
)

func runQuoteRouter(api *echo.Group, quoteCtrl *controllers.QuoteController) {
	quoteGroup := api.Group("/quotes")
	{
		quoteGroup.POST("", quoteCtrl.SubmitQuote)
		quoteGroup.GET("/form_token", quoteCtrl.GetFormToken)
	}
}
