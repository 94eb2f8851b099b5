package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"minimart-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrderTx runs the whole placement as one unit of work: product
	// rows are read under lock, stock is decremented, and the order with
	// its item snapshots is inserted. Any failure rolls everything back.
	CreateOrderTx(ctx context.Context, input PlaceOrderInput, deliveryCharge int64) (*Order, error)

	GetByID(ctx context.Context, orderID string) (*Order, error)
	ListAll(ctx context.Context, filter ListFilter) ([]*Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, status PaymentStatus) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, update StatusUpdate) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrderTx(ctx context.Context, input PlaceOrderInput, deliveryCharge int64) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Int("item_count", len(input.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	o := &Order{
		ID:            uuid.New().String(),
		Customer:      input.Customer,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: PaymentStatusUnpaid,
		OrderStatus:   StatusPending,
	}

	var subtotal int64

	for _, item := range input.Items {
		var (
			name   string
			price  int64
			stock  int
			active bool
		)

		// FOR UPDATE serializes concurrent placements on the same
		// product: the loser of a race reads the post-decrement stock.
		err := tx.QueryRowContext(ctx, `
			SELECT name, price, stock_qty, is_active
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, item.ProductID).Scan(&name, &price, &stock, &active)

		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ProductNotFoundError{ProductID: item.ProductID}
		}
		if err != nil {
			return nil, fmt.Errorf("fetch product %s: %w", item.ProductID, err)
		}

		if !active {
			return nil, &ProductUnavailableError{Name: name}
		}

		if stock < item.Qty {
			return nil, &InsufficientStockError{Name: name, Available: stock}
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock_qty = stock_qty - $1, updated_at = NOW()
			WHERE id = $2 AND stock_qty >= $1
		`, item.Qty, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("decrement stock for %s: %w", item.ProductID, err)
		}

		// Second barrier behind the locked read: stock can never go
		// negative even if the isolation assumption breaks.
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return nil, &InsufficientStockError{Name: name, Available: stock}
		}

		o.Items = append(o.Items, OrderItem{
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      name,
			Price:     price,
			Qty:       item.Qty,
		})
		subtotal += price * int64(item.Qty)
	}

	o.TotalAmount = subtotal + deliveryCharge

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, customer_name, customer_phone, customer_address,
			customer_city, customer_pincode, total_amount,
			payment_method, payment_status, order_status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at, updated_at
	`,
		o.ID,
		o.Customer.Name,
		o.Customer.Phone,
		o.Customer.Address,
		o.Customer.City,
		o.Customer.Pincode,
		o.TotalAmount,
		o.PaymentMethod,
		o.PaymentStatus,
		o.OrderStatus,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
			VALUES ($1,$2,$3,$4,$5)
		`,
			item.OrderID,
			item.ProductID,
			item.Name,
			item.Price,
			item.Qty,
		)
		if err != nil {
			return nil, fmt.Errorf("insert order item %s: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}
	committed = true

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int64("total_amount", o.TotalAmount),
	)

	return o, nil
}

const orderColumns = `id, customer_name, customer_phone, customer_address,
		customer_city, customer_pincode, total_amount,
		payment_method, payment_status, order_status, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.Customer.Name,
		&o.Customer.Phone,
		&o.Customer.Address,
		&o.Customer.City,
		&o.Customer.Pincode,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.OrderStatus,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.fetchItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]

	return o, nil
}

func (r *repository) ListAll(ctx context.Context, filter ListFilter) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListAll"),
	)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	argIndex := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND order_status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.PaymentStatus != nil {
		query += fmt.Sprintf(" AND payment_status = $%d", argIndex)
		args = append(args, *filter.PaymentStatus)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	var orderIDs []string
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
		orderIDs = append(orderIDs, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.fetchItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = items[o.ID]
	}

	return orders, nil
}

func (r *repository) fetchItems(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, product_id, product_name, unit_price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("fetch order items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]OrderItem)
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.Name, &item.Price, &item.Qty); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}

	return items, rows.Err()
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, orderID string, status PaymentStatus) (*Order, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET payment_status = $1, updated_at = NOW() WHERE id = $2`,
		status, orderID)
	if err != nil {
		return nil, err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	return r.GetByID(ctx, orderID)
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, update StatusUpdate) (*Order, error) {
	query := "UPDATE orders SET updated_at = NOW()"
	args := []any{}
	argIndex := 1

	if update.OrderStatus != nil {
		query += fmt.Sprintf(", order_status = $%d", argIndex)
		args = append(args, *update.OrderStatus)
		argIndex++
	}

	if update.PaymentStatus != nil {
		query += fmt.Sprintf(", payment_status = $%d", argIndex)
		args = append(args, *update.PaymentStatus)
		argIndex++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, orderID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	return r.GetByID(ctx, orderID)
}
