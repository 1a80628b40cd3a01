package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"

	_ "github.com/lib/pq"
)

type DB struct {
	*sql.DB
}

// Connect establishes a connection to the PostgreSQL database.
func Connect(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

type tableModel interface {
	TableName() string
	CreateTableSQL() string
}

// InitializeTables creates all tables if they don't exist, in foreign-key
// dependency order.
func (db *DB) InitializeTables() error {
	tables := []tableModel{
		models.User{},
		models.Product{},
		models.Order{},
		models.OrderItem{},
		models.CartItem{},
	}

	for _, m := range tables {
		if _, err := db.Exec(m.CreateTableSQL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", m.TableName(), err)
		}
		log.Debug().Str("table", m.TableName()).Msg("Table ready")
	}

	return nil
}
