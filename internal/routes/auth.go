package routes

import (
	"github.com/labstack/echo/v4"

	"requestquote/internal/controllers"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh_token", authCtrl.Refresh)
	}
}
