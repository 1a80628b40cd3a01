package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/store"
)

type ProductHandler struct {
	store ProductStore
}

func NewProductHandler(s ProductStore) *ProductHandler {
	return &ProductHandler{store: s}
}

func (h *ProductHandler) RegisterRoutes(r gin.IRouter) {
	products := r.Group("/products")
	{
		products.POST("/", h.CreateProduct)
		products.GET("/", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/category/:category", h.ListProductsByCategory)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

type createProductRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description *string      `json:"description"`
	Price       models.Money `json:"price" binding:"required"`
	Stock       *int         `json:"stock" binding:"required"`
	Category    string       `json:"category" binding:"required"`
	ImageURL    *string      `json:"image_url"`
	Sizes       string       `json:"sizes" binding:"required"`
	Colors      string       `json:"colors" binding:"required"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.store.Create(c.Request.Context(), models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	offset, limit := pagination(c)

	products, err := h.store.List(c.Request.Context(), offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	product, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Error().Err(err).Int("product_id", id).Msg("Failed to fetch product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListProductsByCategory(c *gin.Context) {
	category := c.Param("category")

	products, err := h.store.ListByCategory(c.Request.Context(), category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Failed to list products by category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

type updateProductRequest struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Price       *models.Money `json:"price,omitempty"`
	Stock       *int          `json:"stock,omitempty"`
	Category    *string       `json:"category,omitempty"`
	ImageURL    *string       `json:"image_url,omitempty"`
	Sizes       *string       `json:"sizes,omitempty"`
	Colors      *string       `json:"colors,omitempty"`
	IsActive    *bool         `json:"is_active,omitempty"`
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		IsActive:    req.IsActive,
	}

	product, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Error().Err(err).Int("product_id", id).Msg("Failed to update product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrForeignKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is referenced by orders or carts"})
			return
		}
		log.Error().Err(err).Int("product_id", id).Msg("Failed to delete product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
