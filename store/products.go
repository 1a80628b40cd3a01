package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
)

const productColumns = "id, name, description, price, stock, category, image_url, sizes, colors, created_at, is_active"

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *models.Money
	Stock       *int
	Category    *string
	ImageURL    *string
	Sizes       *string
	Colors      *string
	IsActive    *bool
}

type Products struct {
	db *sql.DB
}

func NewProducts(db *sql.DB) *Products {
	return &Products{db: db}
}

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.Category, &p.ImageURL, &p.Sizes, &p.Colors, &p.CreatedAt, &p.IsActive,
	)
	if err != nil {
		return nil, err
	}
	p.Image = p.ImageURL
	return &p, nil
}

func (s *Products) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	query := `
		INSERT INTO products (name, description, price, stock, category, image_url, sizes, colors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns

	created, err := scanProduct(s.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, p.Stock,
		p.Category, p.ImageURL, p.Sizes, p.Colors,
	))
	if err != nil {
		return nil, fmt.Errorf("store: failed to insert product: %w", err)
	}
	return created, nil
}

func (s *Products) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to select product %d: %w", id, err)
	}
	return p, nil
}

func (s *Products) List(ctx context.Context, offset, limit int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC LIMIT $1 OFFSET $2`
	return s.queryProducts(ctx, query, limit, offset)
}

func (s *Products) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id ASC`
	return s.queryProducts(ctx, query, category)
}

func (s *Products) queryProducts(ctx context.Context, query string, args ...interface{}) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("store: failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: error iterating products: %w", err)
	}
	return products, nil
}

func (s *Products) Update(ctx context.Context, id int, patch ProductPatch) (*models.Product, error) {
	query := "UPDATE products SET "
	args := []interface{}{}
	argIndex := 1

	addField := func(column string, value interface{}) {
		query += column + " = $" + strconv.Itoa(argIndex) + ", "
		args = append(args, value)
		argIndex++
	}

	if patch.Name != nil {
		addField("name", *patch.Name)
	}
	if patch.Description != nil {
		addField("description", *patch.Description)
	}
	if patch.Price != nil {
		addField("price", *patch.Price)
	}
	if patch.Stock != nil {
		addField("stock", *patch.Stock)
	}
	if patch.Category != nil {
		addField("category", *patch.Category)
	}
	if patch.ImageURL != nil {
		addField("image_url", *patch.ImageURL)
	}
	if patch.Sizes != nil {
		addField("sizes", *patch.Sizes)
	}
	if patch.Colors != nil {
		addField("colors", *patch.Colors)
	}
	if patch.IsActive != nil {
		addField("is_active", *patch.IsActive)
	}

	if len(args) == 0 {
		return s.GetByID(ctx, id)
	}

	query = query[:len(query)-2] + " WHERE id = $" + strconv.Itoa(argIndex) + " RETURNING " + productColumns
	args = append(args, id)

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to update product %d: %w", id, err)
	}
	return p, nil
}

func (s *Products) Delete(ctx context.Context, id int) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return false, cerr
		}
		return false, fmt.Errorf("store: failed to delete product %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
