package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/store"
)

func TestCreateOrder_FlatShape(t *testing.T) {
	stub := &stubOrderStore{
		createFn: func(ctx context.Context, userID int, totalAmount models.Money) (*models.Order, error) {
			return &models.Order{
				ID:          1,
				UserID:      userID,
				TotalAmount: totalAmount,
				Status:      models.OrderStatusPending,
				CreatedAt:   time.Now(),
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/",
		strings.NewReader(`{"user_id":1,"total_amount":150.00}`))
	orderRouter(stub).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "150.00", resp["total_amount"])
}

func TestCreateOrder_WithItems(t *testing.T) {
	var gotItems []store.OrderItemInput
	stub := &stubOrderStore{
		createWithItemsFn: func(ctx context.Context, userID int, items []store.OrderItemInput) (*models.Order, error) {
			gotItems = items
			return &models.Order{
				ID:          7,
				UserID:      userID,
				TotalAmount: models.NewMoney(decimal.RequireFromString("3499.97")),
				Status:      models.OrderStatusPending,
				Items: []models.OrderItem{
					{ID: 1, OrderID: 7, ProductID: 1, Quantity: 2, PriceAtTime: models.NewMoney(decimal.RequireFromString("999.99"))},
					{ID: 2, OrderID: 7, ProductID: 2, Quantity: 1, PriceAtTime: models.NewMoney(decimal.RequireFromString("1499.99"))},
				},
			}, nil
		},
	}

	body := `{"user_id":1,"items":[{"product_id":1,"quantity":2},{"product_id":2,"quantity":1}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(body))
	orderRouter(stub).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, gotItems, 2)
	assert.Equal(t, store.OrderItemInput{ProductID: 1, Quantity: 2}, gotItems[0])
	assert.Contains(t, w.Body.String(), `"price_at_time":"999.99"`)
}

func TestCreateOrder_NoTotalNoItems(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/",
		strings.NewReader(`{"user_id":1}`))
	orderRouter(&stubOrderStore{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "total_amount or items")
}

func TestCreateOrder_UnknownProductInItems(t *testing.T) {
	stub := &stubOrderStore{
		createWithItemsFn: func(ctx context.Context, userID int, items []store.OrderItemInput) (*models.Order, error) {
			return nil, store.ErrNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/",
		strings.NewReader(`{"user_id":1,"items":[{"product_id":99,"quantity":1}]}`))
	orderRouter(stub).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrder(t *testing.T) {
	stub := &stubOrderStore{
		getByIDFn: func(ctx context.Context, id int) (*models.Order, error) {
			return &models.Order{
				ID:          id,
				UserID:      1,
				TotalAmount: models.NewMoney(decimal.RequireFromString("150.00")),
				Status:      models.OrderStatusPending,
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	orderRouter(stub).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestGetOrder_NotFound(t *testing.T) {
	stub := &stubOrderStore{
		getByIDFn: func(ctx context.Context, id int) (*models.Order, error) {
			return nil, store.ErrNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
	orderRouter(stub).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestListUserOrders(t *testing.T) {
	stub := &stubOrderStore{
		listByUserFn: func(ctx context.Context, userID int) ([]models.Order, error) {
			return []models.Order{
				{ID: 1, UserID: userID, Status: models.OrderStatusPending},
				{ID: 2, UserID: userID, Status: models.OrderStatusShipped},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/1/orders/", nil)
	orderRouter(stub).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"shipped"`)
}

func TestUpdateOrderStatus(t *testing.T) {
	stub := &stubOrderStore{
		updateStatusFn: func(ctx context.Context, id int, status string) (*models.Order, error) {
			return &models.Order{ID: id, UserID: 1, Status: status}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/1/status",
		strings.NewReader(`{"status":"shipped"}`))
	orderRouter(stub).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"shipped"`)
}

func TestUpdateOrderStatus_MissingStatus(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/1/status",
		strings.NewReader(`{}`))
	orderRouter(&stubOrderStore{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	stub := &stubOrderStore{
		deleteFn: func(ctx context.Context, id int) (bool, error) {
			return false, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/orders/42", nil)
	orderRouter(stub).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
