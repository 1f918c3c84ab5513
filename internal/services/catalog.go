package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"requestquote/internal/repositories"
	apperrors "requestquote/pkg/errors"
)

const (
	productNameKeyPrefix = "requestquote:product_name:"
	productNameCacheTTL  = time.Minute * 10
)

// CatalogServiceInterface is the external-product-catalog collaborator: the
// quote flow only ever asks whether a product exists and what to call it.
type CatalogServiceInterface interface {
	ProductExists(ctx context.Context, id uint64) (bool, error)
	ProductName(ctx context.Context, id uint64) string
}

type catalogService struct {
	productRepo repositories.ProductRepositoryInterface
	cache       repositories.CacheRepositoryInterface
	logger      *zap.Logger
}

func NewCatalogService(
	productRepo repositories.ProductRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &catalogService{productRepo: productRepo, cache: cache, logger: logger}
}

func (s *catalogService) ProductExists(ctx context.Context, id uint64) (bool, error) {
	return s.productRepo.ProductExists(ctx, id)
}

// ProductName resolves a display name, falling back to "Product #N" when
// the product is gone. Names are cached: the admin grid asks for the same
// handful of products over and over.
func (s *catalogService) ProductName(ctx context.Context, id uint64) string {
	key := fmt.Sprintf("%s%d", productNameKeyPrefix, id)
	if s.cache != nil {
		if name, err := s.cache.Get(ctx, key); err == nil && name != "" {
			return name
		}
	}

	product, err := s.productRepo.FindProduct(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("product lookup failed", zap.Uint64("product_id", id), zap.Error(err))
		}
		return fmt.Sprintf("Product #%d", id)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product.Name, productNameCacheTTL); err != nil {
			s.logger.Debug("product name cache write failed", zap.Error(err))
		}
	}
	return product.Name
}
