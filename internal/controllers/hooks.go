package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"requestquote/internal/hooks"
	"requestquote/internal/services"
	"requestquote/pkg/config"
	"requestquote/pkg/utils"
)

// HookController serves the presentation snippets the storefront embeds on
// product pages. A disabled feature renders empty markup, so themes can
// include the hooks unconditionally.
type HookController struct {
	registry   *hooks.Registry
	catalog    services.CatalogServiceInterface
	formTokens services.FormTokenServiceInterface
	features   config.Features
	logger     *zap.Logger
}

func NewHookController(
	registry *hooks.Registry,
	catalog services.CatalogServiceInterface,
	formTokens services.FormTokenServiceInterface,
	features config.Features,
	logger *zap.Logger,
) *HookController {
	return &HookController{
		registry:   registry,
		catalog:    catalog,
		formTokens: formTokens,
		features:   features,
		logger:     logger,
	}
}

func (c *HookController) ListHooks(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.registry.Names(), "Available hooks", http.StatusOK)
}

func (c *HookController) RenderHook(ctx echo.Context) error {
	if !c.features.Enabled {
		return ctx.HTML(http.StatusOK, "")
	}

	reqCtx := ctx.Request().Context()
	name := ctx.Param("name")

	renderCtx := hooks.RenderContext{
		SubmitURL: "/api/quotes",
	}

	if raw := ctx.QueryParam("product_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrorBadID(raw, err), c.logger)
		}
		renderCtx.ProductID = id
		renderCtx.ProductName = c.catalog.ProductName(reqCtx, id)
	}

	if c.features.RequireFormToken {
		token, err := c.formTokens.Issue(reqCtx)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		renderCtx.FormToken = token
	}

	content, err := c.registry.Render(name, renderCtx)
	if err != nil {
		c.logger.Warn("hook render failed", zap.String("hook", name), zap.Error(err))
		return ctx.HTML(http.StatusNotFound, "")
	}

	return ctx.HTML(http.StatusOK, content)
}
