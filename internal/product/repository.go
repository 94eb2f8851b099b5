package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"minimart-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	GetByID(ctx context.Context, productID string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, productID string, input UpdateProduct) (*Product, error)
	Deactivate(ctx context.Context, productID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, category, images, stock_qty, is_active, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		pq.Array(&p.Images),
		&p.StockQty,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	argIndex := 1

	if opts.OnlyActive {
		query += " AND is_active = TRUE"
	}

	if opts.Search != nil && *opts.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+*opts.Search+"%")
		argIndex++
	}

	if opts.Category != nil && *opts.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, *opts.Category)
		argIndex++
	}

	if opts.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", argIndex)
		args = append(args, *opts.MinPrice)
		argIndex++
	}

	if opts.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", argIndex)
		args = append(args, *opts.MaxPrice)
		argIndex++
	}

	switch opts.Sort {
	case SortPriceLow:
		query += " ORDER BY price ASC"
	case SortPriceHigh:
		query += " ORDER BY price DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, productID string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, productID)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM products WHERE is_active = TRUE ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *repository) Create(ctx context.Context, p Product) (*Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (id, name, description, price, category, images, stock_qty, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`,
		p.ID,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		pq.Array(p.Images),
		p.StockQty,
		p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, productID string, input UpdateProduct) (*Product, error) {
	query := "UPDATE products SET updated_at = NOW()"
	args := []any{}
	argIndex := 1

	appendSet := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if input.Name != nil {
		appendSet("name", *input.Name)
	}
	if input.Description != nil {
		appendSet("description", *input.Description)
	}
	if input.Price != nil {
		appendSet("price", *input.Price)
	}
	if input.Category != nil {
		appendSet("category", *input.Category)
	}
	if input.Images != nil {
		appendSet("images", pq.Array(input.Images))
	}
	if input.StockQty != nil {
		appendSet("stock_qty", *input.StockQty)
	}
	if input.IsActive != nil {
		appendSet("is_active", *input.IsActive)
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argIndex, productColumns)
	args = append(args, productID)

	row := r.db.QueryRowContext(ctx, query, args...)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return p, nil
}

// Deactivate soft-deletes a product so historical order snapshots keep a
// valid reference.
func (r *repository) Deactivate(ctx context.Context, productID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, productID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
