package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yurymalaver/salon-crm/internal/ai"
	"github.com/yurymalaver/salon-crm/internal/dto"
	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/httpresp"
	"github.com/yurymalaver/salon-crm/internal/models"
	"github.com/yurymalaver/salon-crm/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type MarketingHandler struct {
	marketing *ai.Marketing
	store     *store.Store
}

func NewMarketingHandler(marketing *ai.Marketing, st *store.Store) *MarketingHandler {
	return &MarketingHandler{
		marketing: marketing,
		store:     st,
	}
}

// ======================================================
// GENERATE
// ======================================================

type GenerateCampaignRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (h *MarketingHandler) GenerateCampaign(c *gin.Context) {
	var req GenerateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "La idea de campaña es obligatoria.")
		return
	}

	campaign, err := h.marketing.GenerateCampaign(c.Request.Context(), req.Prompt)
	if err != nil {
		httperr.Unavailable(c, "ai_unavailable", "El asistente de marketing no está disponible.")
		return
	}

	httpresp.OK(c, campaign)
}

// ======================================================
// PUBLISH
// ======================================================

type PublishCampaignRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	ImageURL     string `json:"image_url"`
	DiscountCode string `json:"discount_code"`
	ValidUntil   string `json:"valid_until"`
}

// PublishCampaign convierte la campaña aprobada en una promoción
// visible en la página pública.
func (h *MarketingHandler) PublishCampaign(c *gin.Context) {
	var req PublishCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Título y descripción son obligatorios.")
		return
	}

	p := models.Promotion{
		ID:           fmt.Sprintf("p_%d", time.Now().UnixMilli()),
		Title:        req.Title,
		Description:  req.Description,
		DiscountCode: req.DiscountCode,
		ValidUntil:   req.ValidUntil,
		Image:        req.ImageURL,
		Target:       "vip",
	}

	h.store.AddPromotion(p)

	httpresp.Created(c, p)
}

// ======================================================
// VIP AUDIENCE
// ======================================================

func (h *MarketingHandler) ListVIPClients(c *gin.Context) {
	var vips []models.Client
	for _, cl := range h.store.Clients() {
		if cl.Type == models.ClientVIP {
			vips = append(vips, cl)
		}
	}

	httpresp.List(c, dto.NewClientEntries(vips))
}
