package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
)

const cartItemColumns = "id, user_id, product_id, quantity"

type Cart struct {
	db *sql.DB
}

func NewCart(db *sql.DB) *Cart {
	return &Cart{db: db}
}

func (s *Cart) Add(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING ` + cartItemColumns

	var item models.CartItem
	err := s.db.QueryRowContext(ctx, query, userID, productID, quantity).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("store: failed to insert cart item: %w", err)
	}
	return &item, nil
}

func (s *Cart) GetByID(ctx context.Context, id int) (*models.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE id = $1`

	var item models.CartItem
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to select cart item %d: %w", id, err)
	}
	return &item, nil
}

func (s *Cart) ListByUser(ctx context.Context, userID int) ([]models.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE user_id = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query cart items for user %d: %w", userID, err)
	}
	defer rows.Close()

	items := make([]models.CartItem, 0)
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("store: failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: error iterating cart items: %w", err)
	}
	return items, nil
}

func (s *Cart) UpdateQuantity(ctx context.Context, id, quantity int) (*models.CartItem, error) {
	query := `UPDATE cart_items SET quantity = $1 WHERE id = $2 RETURNING ` + cartItemColumns

	var item models.CartItem
	err := s.db.QueryRowContext(ctx, query, quantity, id).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to update cart item %d: %w", id, err)
	}
	return &item, nil
}

func (s *Cart) Remove(ctx context.Context, id int) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("store: failed to delete cart item %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear removes every cart item for the user. Matching zero rows is still
// a success.
func (s *Cart) Clear(ctx context.Context, userID int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("store: failed to clear cart for user %d: %w", userID, err)
	}
	return nil
}
