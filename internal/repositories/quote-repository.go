package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"requestquote/internal/dto"
	"requestquote/internal/entities"
	"requestquote/internal/infrastructure/bd"
	apperrors "requestquote/pkg/errors"
	"requestquote/pkg/types"
	"requestquote/pkg/utils"
)

const quoteTable = "quote_requests"

// Field map shared by filtering and sorting. Keys are the wire names.
var quoteMap = map[string]string{
	"id":         "q.id",
	"product_id": "q.product_id",
	"shop_id":    "q.shop_id",
	"email":      "q.email",
	"created_at": "q.created_at",
}

type dbQuote struct {
	ID          uint64
	ProductID   uint64
	ShopID      uint64
	ClientName  string
	Email       string
	Phone       sql.NullString
	Note        sql.NullString
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
	ProductName sql.NullString
}

// ToDTO formats a row for the API. A vanished catalog product degrades to
// the "Product #N" label instead of failing the listing.
func (db *dbQuote) ToDTO() dto.QuoteDTO {
	productName := utils.NullStringToString(db.ProductName)
	if productName == "" {
		productName = fmt.Sprintf("Product #%d", db.ProductID)
	}

	return dto.QuoteDTO{
		ID:          db.ID,
		ProductID:   db.ProductID,
		ProductName: productName,
		ShopID:      db.ShopID,
		ClientName:  db.ClientName,
		Email:       db.Email,
		Phone:       null.NewString(db.Phone.String, db.Phone.Valid),
		Note:        null.NewString(db.Note.String, db.Note.Valid),
		CreatedAt:   utils.FormatTime(db.CreatedAt),
		UpdatedAt:   utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

func scanQuote(row pgx.Row) (*dbQuote, error) {
	var q dbQuote
	err := row.Scan(
		&q.ID, &q.ProductID, &q.ShopID, &q.ClientName, &q.Email,
		&q.Phone, &q.Note, &q.CreatedAt, &q.UpdatedAt, &q.ProductName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning quote request: %w", err)
	}
	return &q, nil
}

type QuoteRepositoryInterface interface {
	CreateQuote(ctx context.Context, quote entities.QuoteRequest) (*dto.QuoteDTO, error)
	GetQuotes(ctx context.Context, filter types.Filter) ([]dto.QuoteDTO, uint64, error)
	FindQuote(ctx context.Context, id uint64) (*dto.QuoteDTO, error)
	DeleteQuote(ctx context.Context, id uint64) error
}

type QuoteRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewQuoteRepository(storage *pgxpool.Pool, logger *zap.Logger) QuoteRepositoryInterface {
	return &QuoteRepository{storage: storage, logger: logger}
}

func (r *QuoteRepository) CreateQuote(ctx context.Context, quote entities.QuoteRequest) (*dto.QuoteDTO, error) {
	query := fmt.Sprintf(`INSERT INTO %s (product_id, shop_id, client_name, email, phone, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, product_id, shop_id, client_name, email, phone, note, created_at, updated_at, NULL::varchar`, quoteTable)

	row := r.storage.QueryRow(ctx, query,
		quote.ProductID, quote.ShopID, quote.ClientName, quote.Email,
		quote.Phone.Ptr(), quote.Note.Ptr(),
	)

	dbRow, err := scanQuote(row)
	if err != nil {
		return nil, err
	}
	quoteDTO := dbRow.ToDTO()
	if quote.ProductName != "" {
		quoteDTO.ProductName = quote.ProductName
	}
	return &quoteDTO, nil
}

func (r *QuoteRepository) GetQuotes(ctx context.Context, filter types.Filter) ([]dto.QuoteDTO, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"q.client_name": pat},
				sq.ILike{"q.email": pat},
			})
		}
		return b
	}

	// 1. COUNT
	countBuilder := psql.Select("COUNT(q.id)").From(quoteTable + " AS q")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, quoteMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.QuoteDTO{}, 0, nil
	}

	// 2. SELECT with the catalog join for the product name.
	baseBuilder := psql.Select(
		"q.id", "q.product_id", "q.shop_id", "q.client_name", "q.email",
		"q.phone", "q.note", "q.created_at", "q.updated_at",
		"p.name",
	).From(quoteTable + " AS q").LeftJoin("products p ON q.product_id = p.id")

	baseBuilder = applySearch(baseBuilder)

	// Newest first unless the caller sorted explicitly.
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("q.created_at DESC, q.id DESC")
	}

	baseBuilder = bd.ApplyListParams(baseBuilder, filter, quoteMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	quotes := make([]dto.QuoteDTO, 0, filter.Limit)
	for rows.Next() {
		dbRow, err := scanQuote(rows)
		if err != nil {
			return nil, 0, err
		}
		quotes = append(quotes, dbRow.ToDTO())
	}
	return quotes, total, rows.Err()
}

func (r *QuoteRepository) FindQuote(ctx context.Context, id uint64) (*dto.QuoteDTO, error) {
	query := fmt.Sprintf(`SELECT q.id, q.product_id, q.shop_id, q.client_name, q.email,
		q.phone, q.note, q.created_at, q.updated_at, p.name
		FROM %s AS q
		LEFT JOIN products p ON q.product_id = p.id
		WHERE q.id = $1`, quoteTable)

	dbRow, err := scanQuote(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	quoteDTO := dbRow.ToDTO()
	return &quoteDTO, nil
}

// DeleteQuote removes exactly one record. Deleting an id that is already
// gone reports ErrNotFound, which makes concurrent admin deletes safe.
func (r *QuoteRepository) DeleteQuote(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", quoteTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
