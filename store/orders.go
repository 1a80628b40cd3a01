package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
)

const orderColumns = "id, user_id, total_amount, status, created_at"
const orderItemColumns = "id, order_id, product_id, quantity, price_at_time"

// OrderItemInput is one requested order line. The unit price is snapshotted
// from the product at creation time, not taken from the client.
type OrderItemInput struct {
	ProductID int
	Quantity  int
}

// OrderPatch carries a partial update; nil fields are left untouched.
type OrderPatch struct {
	Status      *string
	TotalAmount *models.Money
}

type Orders struct {
	db *sql.DB
}

func NewOrders(db *sql.DB) *Orders {
	return &Orders{db: db}
}

func scanOrder(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts an order without line items. Status defaults to pending.
func (s *Orders) Create(ctx context.Context, userID int, totalAmount models.Money) (*models.Order, error) {
	query := `
		INSERT INTO orders (user_id, total_amount)
		VALUES ($1, $2)
		RETURNING ` + orderColumns

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, userID, totalAmount))
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("store: failed to insert order: %w", err)
	}
	return o, nil
}

// CreateWithItems inserts an order and its line items in one transaction.
// Each line snapshots the product's current price into price_at_time, and
// the order total is computed as the sum of line subtotals.
func (s *Orders) CreateWithItems(ctx context.Context, userID int, items []OrderItemInput) (*models.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Snapshot prices and compute the total before touching the orders table.
	prices := make([]decimal.Decimal, len(items))
	total := decimal.Zero
	for i, item := range items {
		var price decimal.Decimal
		err := tx.QueryRowContext(ctx, `SELECT price FROM products WHERE id = $1`, item.ProductID).Scan(&price)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("store: product %d: %w", item.ProductID, ErrNotFound)
			}
			return nil, fmt.Errorf("store: failed to select price for product %d: %w", item.ProductID, err)
		}
		prices[i] = price
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	orderQuery := `
		INSERT INTO orders (user_id, total_amount)
		VALUES ($1, $2)
		RETURNING ` + orderColumns

	o, err := scanOrder(tx.QueryRowContext(ctx, orderQuery, userID, total))
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("store: failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price_at_time)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + orderItemColumns

	o.Items = make([]models.OrderItem, 0, len(items))
	for i, item := range items {
		var line models.OrderItem
		err := tx.QueryRowContext(ctx, itemQuery, o.ID, item.ProductID, item.Quantity, prices[i]).Scan(
			&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.PriceAtTime,
		)
		if err != nil {
			if cerr := constraintError(err); cerr != nil {
				return nil, cerr
			}
			return nil, fmt.Errorf("store: failed to insert order item for order %d: %w", o.ID, err)
		}
		o.Items = append(o.Items, line)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("store: failed to commit order %d: %w", o.ID, err)
	}
	return o, nil
}

// GetByID returns the order with its line items attached.
func (s *Orders) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to select order %d: %w", id, err)
	}

	items, err := s.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (s *Orders) ListItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query order items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	items := make([]models.OrderItem, 0)
	for rows.Next() {
		var line models.OrderItem
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.PriceAtTime); err != nil {
			return nil, fmt.Errorf("store: failed to scan order item: %w", err)
		}
		items = append(items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: error iterating order items: %w", err)
	}
	return items, nil
}

func (s *Orders) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("store: failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: error iterating orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the status field only. No transition table is enforced.
func (s *Orders) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2 RETURNING ` + orderColumns

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to update status for order %d: %w", id, err)
	}
	return o, nil
}

func (s *Orders) Update(ctx context.Context, id int, patch OrderPatch) (*models.Order, error) {
	query := "UPDATE orders SET "
	args := []interface{}{}
	argIndex := 1

	if patch.Status != nil {
		query += "status = $" + strconv.Itoa(argIndex) + ", "
		args = append(args, *patch.Status)
		argIndex++
	}
	if patch.TotalAmount != nil {
		query += "total_amount = $" + strconv.Itoa(argIndex) + ", "
		args = append(args, *patch.TotalAmount)
		argIndex++
	}

	if len(args) == 0 {
		return s.GetByID(ctx, id)
	}

	query = query[:len(query)-2] + " WHERE id = $" + strconv.Itoa(argIndex) + " RETURNING " + orderColumns
	args = append(args, id)

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to update order %d: %w", id, err)
	}
	return o, nil
}

func (s *Orders) Delete(ctx context.Context, id int) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return false, cerr
		}
		return false, fmt.Errorf("store: failed to delete order %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
