package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"requestquote/internal/entities"
	apperrors "requestquote/pkg/errors"
)

const (
	userTable  = "users"
	userFields = "id, name, email, password_hash, created_at"
)

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
}

type userRepository struct{ storage *pgxpool.Pool }

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &userRepository{storage: storage}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, email))
}
