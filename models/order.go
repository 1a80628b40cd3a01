package models

import (
	"time"
)

// Order statuses are conventional, not enforced by the schema.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID          int         `json:"id" db:"id"`
	UserID      int         `json:"user_id" db:"user_id"`
	TotalAmount Money       `json:"total_amount" db:"total_amount"`
	Status      string      `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	Items       []OrderItem `json:"items,omitempty" db:"-"`
}

func (Order) TableName() string {
	return "orders"
}

func (Order) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id),
		total_amount NUMERIC(10,2) NOT NULL,
		status VARCHAR(20) DEFAULT 'pending',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
