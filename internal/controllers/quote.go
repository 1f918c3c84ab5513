package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"requestquote/internal/dto"
	"requestquote/internal/services"
	"requestquote/pkg/utils"
)

// QuoteController serves the public storefront endpoints: issuing a form
// token and accepting a submission.
type QuoteController struct {
	quoteService services.QuoteServiceInterface
	formTokens   services.FormTokenServiceInterface
	logger       *zap.Logger
}

func NewQuoteController(
	quoteService services.QuoteServiceInterface,
	formTokens services.FormTokenServiceInterface,
	logger *zap.Logger,
) *QuoteController {
	return &QuoteController{quoteService: quoteService, formTokens: formTokens, logger: logger}
}

// SubmitQuote accepts the quote form, form-encoded or JSON. Validation
// happens in the service so the rules hold no matter who calls it.
func (c *QuoteController) SubmitQuote(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.SubmitQuoteDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("submit: malformed payload", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrorBadPayload(err),
			c.logger,
		)
	}

	result, err := c.quoteService.SubmitQuote(reqCtx, payload, ctx.RealIP())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, result, "Your quote request has been submitted successfully! We will contact you soon.", http.StatusCreated)
}

// GetFormToken hands the storefront a one-time token to embed in the form.
func (c *QuoteController) GetFormToken(ctx echo.Context) error {
	token, err := c.formTokens.Issue(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.FormTokenDTO{Token: token}, "Form token issued", http.StatusOK)
}
