package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yurymalaver/salon-crm/internal/models"
	"github.com/yurymalaver/salon-crm/internal/timezone"
)

type InventoryHandler struct {
	db *gorm.DB
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Stock    int     `json:"stock" binding:"min=0"`
	MinStock *int    `json:"min_stock,omitempty"`
	Price    float64 `json:"price"`
}

// --------- Handlers ---------

func (h *InventoryHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	lowOnly := strings.TrimSpace(c.Query("low")) == "true"

	q := h.db.Session(&gorm.Session{})

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if lowOnly {
		q = q.Where("stock <= min_stock")
	}

	var products []models.Product
	if err := q.
		Order("created_at ASC").
		Find(&products).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	minStock := 5
	if req.MinStock != nil {
		minStock = *req.MinStock
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    strings.ToLower(req.Category),
		Stock:       req.Stock,
		MinStock:    minStock,
		Price:       req.Price,
		LastRestock: timezone.Now(),
		CreatedAt:   timezone.Now(),
	}

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *InventoryHandler) Restock(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var product models.Product
	if err := h.db.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	product.Stock += req.Quantity
	product.LastRestock = timezone.Now()

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_restock_product"})
		return
	}

	c.JSON(http.StatusOK, product)
}
