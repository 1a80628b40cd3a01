package models

type CartItem struct {
	ID        int `json:"id" db:"id"`
	UserID    int `json:"user_id" db:"user_id"`
	ProductID int `json:"product_id" db:"product_id"`
	Quantity  int `json:"quantity" db:"quantity"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

func (CartItem) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS cart_items (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id) ON DELETE CASCADE,
		product_id INT REFERENCES products(id),
		quantity INT NOT NULL
	);`
}
