package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"requestquote/internal/dto"
	"requestquote/internal/entities"
	"requestquote/internal/events"
	"requestquote/internal/repositories"
	"requestquote/pkg/config"
	apperrors "requestquote/pkg/errors"
	"requestquote/pkg/eventbus"
	"requestquote/pkg/types"
	"requestquote/pkg/utils"
	"requestquote/pkg/validation"
)

const rateLimitKeyPrefix = "requestquote:rate:"

type QuoteServiceInterface interface {
	SubmitQuote(ctx context.Context, payload dto.SubmitQuoteDTO, clientKey string) (*dto.SubmitResultDTO, error)
	GetQuotes(ctx context.Context, filter types.Filter) ([]dto.QuoteDTO, uint64, error)
	FindQuote(ctx context.Context, id uint64) (*dto.QuoteDTO, error)
	DeleteQuote(ctx context.Context, id uint64) error
	BulkDeleteQuotes(ctx context.Context, ids []uint64) (*dto.BulkDeleteResultDTO, error)
}

// QuoteService is the heart of the module: it gates, validates and persists
// submissions, and serves the admin read/delete surface. Feature flags come
// in as an explicit config value, never from ambient state.
type QuoteService struct {
	quoteRepo  repositories.QuoteRepositoryInterface
	catalog    CatalogServiceInterface
	formTokens FormTokenServiceInterface
	cache      repositories.CacheRepositoryInterface
	validator  *validation.CustomValidator
	bus        *eventbus.Bus
	features   config.Features
	rate       config.RateLimit
	logger     *zap.Logger
}

func NewQuoteService(
	quoteRepo repositories.QuoteRepositoryInterface,
	catalog CatalogServiceInterface,
	formTokens FormTokenServiceInterface,
	cache repositories.CacheRepositoryInterface,
	validator *validation.CustomValidator,
	bus *eventbus.Bus,
	features config.Features,
	rate config.RateLimit,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		quoteRepo:  quoteRepo,
		catalog:    catalog,
		formTokens: formTokens,
		cache:      cache,
		validator:  validator,
		bus:        bus,
		features:   features,
		rate:       rate,
		logger:     logger,
	}
}

// SubmitQuote accepts one quote request. clientKey identifies the submitter
// for rate limiting (usually the remote address); empty disables the check.
// On any failure path nothing is written.
func (s *QuoteService) SubmitQuote(ctx context.Context, payload dto.SubmitQuoteDTO, clientKey string) (*dto.SubmitResultDTO, error) {
	if !s.features.Enabled {
		return nil, apperrors.ErrFeatureDisabled
	}

	if s.features.RequireFormToken {
		if err := s.formTokens.Consume(ctx, payload.FormToken); err != nil {
			return nil, err
		}
	}

	if err := s.checkRateLimit(ctx, clientKey); err != nil {
		return nil, err
	}

	payload.Normalize()
	if err := s.validator.Validate(&payload); err != nil {
		return nil, validation.FirstViolation(err)
	}

	if s.features.RequirePhone && !payload.Phone.Valid {
		return nil, validation.NewFieldError("phone", validation.KindMissingField, "please provide a phone number")
	}

	if s.features.ValidateProduct {
		exists, err := s.catalog.ProductExists(ctx, payload.ProductID)
		if err != nil {
			s.logger.Error("product existence check failed", zap.Uint64("product_id", payload.ProductID), zap.Error(err))
			return nil, err
		}
		if !exists {
			return nil, validation.NewFieldError("product_id", validation.KindInvalidProductReference, "invalid product selected")
		}
	}

	quote := entities.QuoteRequest{
		ProductID:  payload.ProductID,
		ShopID:     utils.GetShopIDFromCtx(ctx),
		ClientName: payload.ClientName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Note:       payload.Note,
	}

	created, err := s.quoteRepo.CreateQuote(ctx, quote)
	if err != nil {
		s.logger.Error("failed to persist quote request",
			zap.Uint64("product_id", payload.ProductID),
			zap.String("email", payload.Email),
			zap.Error(err),
		)
		return nil, err
	}

	if s.catalog != nil {
		created.ProductName = s.catalog.ProductName(ctx, created.ProductID)
	}

	s.logger.Info("quote request submitted",
		zap.Uint64("quote_id", created.ID),
		zap.Uint64("product_id", created.ProductID),
		zap.Uint64("shop_id", created.ShopID),
	)

	if s.bus != nil {
		s.bus.Publish(ctx, events.QuoteSubmittedEvent{Quote: *created})
	}

	return &dto.SubmitResultDTO{QuoteID: created.ID}, nil
}

func (s *QuoteService) checkRateLimit(ctx context.Context, clientKey string) error {
	if s.rate.MaxSubmissions <= 0 || s.cache == nil || clientKey == "" {
		return nil
	}

	key := rateLimitKeyPrefix + clientKey
	count, err := s.cache.Incr(ctx, key)
	if err != nil {
		// A broken limiter must not block customers.
		s.logger.Warn("rate limiter unavailable", zap.Error(err))
		return nil
	}
	if count == 1 {
		if _, err := s.cache.Expire(ctx, key, s.rate.Window); err != nil {
			s.logger.Warn("rate limiter expire failed", zap.Error(err))
		}
	}
	if count > int64(s.rate.MaxSubmissions) {
		return apperrors.ErrRateLimited
	}
	return nil
}

func (s *QuoteService) GetQuotes(ctx context.Context, filter types.Filter) ([]dto.QuoteDTO, uint64, error) {
	return s.quoteRepo.GetQuotes(ctx, filter)
}

func (s *QuoteService) FindQuote(ctx context.Context, id uint64) (*dto.QuoteDTO, error) {
	return s.quoteRepo.FindQuote(ctx, id)
}

func (s *QuoteService) DeleteQuote(ctx context.Context, id uint64) error {
	err := s.quoteRepo.DeleteQuote(ctx, id)
	if err == nil {
		s.logger.Info("quote request deleted", zap.Uint64("quote_id", id))
	}
	return err
}

// BulkDeleteQuotes removes each id independently: one missing or failing
// record does not abort the rest of the batch.
func (s *QuoteService) BulkDeleteQuotes(ctx context.Context, ids []uint64) (*dto.BulkDeleteResultDTO, error) {
	result := &dto.BulkDeleteResultDTO{Requested: len(ids)}

	for _, id := range ids {
		switch err := s.quoteRepo.DeleteQuote(ctx, id); {
		case err == nil:
			result.Deleted++
		case errors.Is(err, apperrors.ErrNotFound):
			result.Missing = append(result.Missing, id)
		default:
			s.logger.Error("bulk delete: failed to delete quote",
				zap.Uint64("quote_id", id), zap.Error(err))
		}
	}

	s.logger.Info(fmt.Sprintf("bulk delete removed %d of %d quote requests", result.Deleted, result.Requested))
	return result, nil
}
