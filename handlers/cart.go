package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/store"
)

type CartHandler struct {
	store CartStore
}

func NewCartHandler(s CartStore) *CartHandler {
	return &CartHandler{store: s}
}

func (h *CartHandler) RegisterRoutes(r gin.IRouter) {
	cart := r.Group("/cart")
	{
		cart.POST("/", h.AddToCart)
		cart.GET("/:userId", h.GetUserCart)
		cart.PUT("/:id", h.UpdateCartItem)
		cart.DELETE("/:id", h.RemoveFromCart)
		cart.DELETE("/user/:userId", h.ClearUserCart)
	}
}

type addToCartRequest struct {
	UserID    int `json:"user_id" binding:"required"`
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.store.Add(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrForeignKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown user or product"})
			return
		}
		log.Error().Err(err).Int("user_id", req.UserID).Msg("Failed to add cart item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) GetUserCart(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	items, err := h.store.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("Failed to fetch cart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, items)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.store.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		log.Error().Err(err).Int("cart_item_id", id).Msg("Failed to update cart item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	removed, err := h.store.Remove(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("cart_item_id", id).Msg("Failed to remove cart item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed successfully"})
}

func (h *CartHandler) ClearUserCart(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	if err := h.store.Clear(c.Request.Context(), userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("Failed to clear cart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
