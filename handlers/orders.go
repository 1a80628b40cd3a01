package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/store"
)

type OrderHandler struct {
	store OrderStore
}

func NewOrderHandler(s OrderStore) *OrderHandler {
	return &OrderHandler{store: s}
}

func (h *OrderHandler) RegisterRoutes(r gin.IRouter) {
	orders := r.Group("/orders")
	{
		orders.POST("/", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id/status", h.UpdateOrderStatus)
		orders.DELETE("/:id", h.DeleteOrder)
	}

	r.GET("/users/:id/orders/", h.ListUserOrders)
}

type orderItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type createOrderRequest struct {
	UserID      int                `json:"user_id" binding:"required"`
	TotalAmount *models.Money      `json:"total_amount,omitempty"`
	Items       []orderItemRequest `json:"items,omitempty" binding:"omitempty,dive"`
}

// CreateOrder accepts either the flat shape (user_id + total_amount) or a
// shape with line items. With items, price_at_time is snapshotted from each
// product and the total is computed server-side; a client total is ignored.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Items) > 0 {
		items := make([]store.OrderItemInput, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, store.OrderItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		order, err := h.store.CreateWithItems(c.Request.Context(), req.UserID, items)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product in order items"})
			case errors.Is(err, store.ErrForeignKey):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown user or product"})
			default:
				log.Error().Err(err).Int("user_id", req.UserID).Msg("Failed to create order with items")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
		return
	}

	if req.TotalAmount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either total_amount or items is required"})
		return
	}

	order, err := h.store.Create(c.Request.Context(), req.UserID, *req.TotalAmount)
	if err != nil {
		if errors.Is(err, store.ErrForeignKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown user"})
			return
		}
		log.Error().Err(err).Int("user_id", req.UserID).Msg("Failed to create order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Error().Err(err).Int("order_id", id).Msg("Failed to fetch order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	orders, err := h.store.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("Failed to list user orders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.store.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Error().Err(err).Int("order_id", id).Msg("Failed to update order status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("order_id", id).Msg("Failed to delete order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
