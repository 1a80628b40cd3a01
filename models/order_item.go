package models

type OrderItem struct {
	ID        int `json:"id" db:"id"`
	OrderID   int `json:"order_id" db:"order_id"`
	ProductID int `json:"product_id" db:"product_id"`
	Quantity  int `json:"quantity" db:"quantity"`
	// PriceAtTime snapshots the product price when the line was created
	// and never tracks the live product price afterwards.
	PriceAtTime Money `json:"price_at_time" db:"price_at_time"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (OrderItem) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INT REFERENCES orders(id) ON DELETE CASCADE,
		product_id INT REFERENCES products(id),
		quantity INT NOT NULL,
		price_at_time NUMERIC(10,2) NOT NULL
	);`
}
