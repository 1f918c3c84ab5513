package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"requestquote/internal/dto"
	apperrors "requestquote/pkg/errors"
)

type fakeProductRepo struct {
	products map[uint64]dto.ProductDTO
	finds    int
}

func (r *fakeProductRepo) FindProduct(_ context.Context, id uint64) (*dto.ProductDTO, error) {
	r.finds++
	p, ok := r.products[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) ProductExists(_ context.Context, id uint64) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

func TestCatalogService_ProductExists(t *testing.T) {
	repo := &fakeProductRepo{products: map[uint64]dto.ProductDTO{42: {ID: 42, Name: "Pallet Rack System"}}}
	svc := NewCatalogService(repo, newMemCache(), zap.NewNop())

	exists, err := svc.ProductExists(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ProductExists(context.Background(), 9999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCatalogService_ProductName(t *testing.T) {
	repo := &fakeProductRepo{products: map[uint64]dto.ProductDTO{42: {ID: 42, Name: "Pallet Rack System"}}}
	svc := NewCatalogService(repo, newMemCache(), zap.NewNop())

	assert.Equal(t, "Pallet Rack System", svc.ProductName(context.Background(), 42))
}

func TestCatalogService_ProductNameFallback(t *testing.T) {
	repo := &fakeProductRepo{products: map[uint64]dto.ProductDTO{}}
	svc := NewCatalogService(repo, newMemCache(), zap.NewNop())

	assert.Equal(t, "Product #77", svc.ProductName(context.Background(), 77))
}

func TestCatalogService_ProductNameIsCached(t *testing.T) {
	repo := &fakeProductRepo{products: map[uint64]dto.ProductDTO{42: {ID: 42, Name: "Pallet Rack System"}}}
	svc := NewCatalogService(repo, newMemCache(), zap.NewNop())

	for i := 0; i < 3; i++ {
		assert.Equal(t, "Pallet Rack System", svc.ProductName(context.Background(), 42))
	}
	assert.Equal(t, 1, repo.finds, "repeated lookups are served from the cache")
}

func TestCatalogService_NilCache(t *testing.T) {
	repo := &fakeProductRepo{products: map[uint64]dto.ProductDTO{42: {ID: 42, Name: "Pallet Rack System"}}}
	svc := NewCatalogService(repo, nil, zap.NewNop())

	assert.Equal(t, "Pallet Rack System", svc.ProductName(context.Background(), 42))
	assert.Equal(t, "Product #1", svc.ProductName(context.Background(), 1))
}
