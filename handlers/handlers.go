// Package handlers binds the HTTP surface to the store layer: request
// parsing, validation, and status-code mapping live here, nothing else.
package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/store"
)

// Store interfaces are declared on the consumer side so handler tests can
// substitute stubs for the SQL-backed implementations.

type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]models.User, error)
	Update(ctx context.Context, id int, patch store.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ProductStore interface {
	Create(ctx context.Context, p models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	List(ctx context.Context, offset, limit int) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	Update(ctx context.Context, id int, patch store.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type OrderStore interface {
	Create(ctx context.Context, userID int, totalAmount models.Money) (*models.Order, error)
	CreateWithItems(ctx context.Context, userID int, items []store.OrderItemInput) (*models.Order, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type CartStore interface {
	Add(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error)
	GetByID(ctx context.Context, id int) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID int) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, id, quantity int) (*models.CartItem, error)
	Remove(ctx context.Context, id int) (bool, error)
	Clear(ctx context.Context, userID int) error
}

// paramID parses a numeric path parameter, responding 400 itself on failure.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// pagination reads the skip/limit query parameters with the API defaults.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return offset, limit
}
