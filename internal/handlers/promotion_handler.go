package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/httpresp"
	"github.com/yurymalaver/salon-crm/internal/media"
	"github.com/yurymalaver/salon-crm/internal/models"
	"github.com/yurymalaver/salon-crm/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type PromotionHandler struct {
	store    *store.Store
	uploader *media.Uploader
}

func NewPromotionHandler(st *store.Store, uploader *media.Uploader) *PromotionHandler {
	return &PromotionHandler{
		store:    st,
		uploader: uploader,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *PromotionHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.Promotions())
}

// ======================================================
// CREATE
// ======================================================

type CreatePromotionRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	DiscountCode string `json:"discount_code"`
	ValidUntil   string `json:"valid_until"`
	Target       string `json:"target"`

	// Imagen opcional en base64 (acepta data-URL). Se normaliza y se
	// publica antes de guardar la promoción.
	ImageBase64 string `json:"image_base64"`
	ImageURL    string `json:"image_url"`
}

func (h *PromotionHandler) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Título y descripción son obligatorios.")
		return
	}

	imageURL := req.ImageURL
	if req.ImageBase64 != "" {
		url, err := h.uploader.UploadPromotionImage(c.Request.Context(), req.ImageBase64)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "No se pudo procesar la imagen.")
			return
		}
		imageURL = url
	}

	p := models.Promotion{
		ID:           fmt.Sprintf("p_%d", time.Now().UnixMilli()),
		Title:        req.Title,
		Description:  req.Description,
		DiscountCode: req.DiscountCode,
		ValidUntil:   req.ValidUntil,
		Image:        imageURL,
		Target:       req.Target,
	}

	h.store.AddPromotion(p)

	httpresp.Created(c, p)
}

// ======================================================
// DELETE
// ======================================================

func (h *PromotionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.store.DeletePromotion(id)
	httpresp.OK(c, gin.H{"id": id})
}
