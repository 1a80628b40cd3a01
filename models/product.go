package models

import (
	"time"
)

type Product struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Price       Money   `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	Category    string  `json:"category" db:"category"`
	ImageURL    *string `json:"image_url" db:"image_url"`
	// Image mirrors ImageURL for frontend compatibility.
	Image     *string   `json:"image" db:"-"`
	Sizes     string    `json:"sizes" db:"sizes"`
	Colors    string    `json:"colors" db:"colors"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`
}

func (Product) TableName() string {
	return "products"
}

func (Product) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description VARCHAR(500),
		price NUMERIC(10,2) NOT NULL,
		stock INT NOT NULL,
		category VARCHAR(50),
		image_url VARCHAR(200),
		sizes VARCHAR(100),
		colors VARCHAR(100),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		is_active BOOLEAN DEFAULT TRUE
	);`
}
