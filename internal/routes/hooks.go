package routes

import (
	"github.com/labstack/echo/v4"

	"requestquote/internal/controllers"
)

func runHookRouter(api *echo.Group, hookCtrl *controllers.HookController) {
	hookGroup := api.Group("/hooks")
	{
		hookGroup.GET("", hookCtrl.ListHooks)
		hookGroup.GET("/:name", hookCtrl.RenderHook)
	}
}
