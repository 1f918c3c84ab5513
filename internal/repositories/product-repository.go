package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"requestquote/internal/dto"
	apperrors "requestquote/pkg/errors"
)

const (
	productTable  = "products"
	productFields = "id, name, reference, active"
)

type ProductRepositoryInterface interface {
	FindProduct(ctx context.Context, id uint64) (*dto.ProductDTO, error)
	ProductExists(ctx context.Context, id uint64) (bool, error)
}

type productRepository struct{ storage *pgxpool.Pool }

func NewProductRepository(storage *pgxpool.Pool) ProductRepositoryInterface {
	return &productRepository{storage: storage}
}

func (r *productRepository) FindProduct(ctx context.Context, id uint64) (*dto.ProductDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", productFields, productTable)

	var p dto.ProductDTO
	err := r.storage.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Reference, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) ProductExists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1 AND active)", productTable), id,
	).Scan(&exists)
	return exists, err
}
