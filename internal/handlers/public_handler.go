package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yurymalaver/salon-crm/internal/availability"
	"github.com/yurymalaver/salon-crm/internal/catalog"
	"github.com/yurymalaver/salon-crm/internal/domain/reservation"
	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/httpresp"
	"github.com/yurymalaver/salon-crm/internal/models"
	"github.com/yurymalaver/salon-crm/internal/store"
	"github.com/yurymalaver/salon-crm/internal/timezone"
	ucReservation "github.com/yurymalaver/salon-crm/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler atiende la página pública: formulario de citas,
// sugerencias de horario, promociones activas y el camino de demo
// respaldado por el store local.
type PublicHandler struct {
	intake     *ucReservation.Intake
	checker    availability.Checker
	localStore *store.Store
}

func NewPublicHandler(
	intake *ucReservation.Intake,
	checker availability.Checker,
	localStore *store.Store,
) *PublicHandler {
	return &PublicHandler{
		intake:     intake,
		checker:    checker,
		localStore: localStore,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email"`
	Service    string `json:"service" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
}

// ======================================================
// INTAKE
// ======================================================

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	created, err := h.intake.Execute(c.Request.Context(), ucReservation.IntakeInput{
		ClientName: req.ClientName,
		Phone:      req.Phone,
		Email:      req.Email,
		Service:    req.Service,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Datos de la reserva inválidos.")
			return
		}
		// El formulario conserva sus valores; el reintento es manual.
		httperr.Unavailable(c, "connection_error",
			"Hubo un problema de conexión. Por favor intenta contactarnos por WhatsApp.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation": created,
		"message":     "¡Reserva solicitada con éxito! Te contactaremos por WhatsApp para confirmar.",
	})
}

// ======================================================
// DISPONIBILIDAD (heurística de demo)
// ======================================================

func (h *PublicHandler) CheckAvailability(c *gin.Context) {
	timeStr := c.Query("time")
	if timeStr == "" {
		httperr.BadRequest(c, "missing_time", "Hora obligatoria.")
		return
	}

	suggestion := h.checker.Check(c.Query("date"), timeStr)
	httpresp.OK(c, suggestion)
}

// ======================================================
// PROMOCIONES Y CARTA
// ======================================================

func (h *PublicHandler) ListPromotions(c *gin.Context) {
	httpresp.List(c, h.localStore.Promotions())
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"app_name": catalog.AppName,
		"services": catalog.Services,
		"palette":  catalog.PaletteColors,
	})
}

// ======================================================
// CAMINO DE DEMO (store local, nunca la colección remota)
// ======================================================

func (h *PublicHandler) CreateDemoReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	r := models.Reservation{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Phone:      req.Phone,
		Email:      req.Email,
		Service:    req.Service,
		Date:       req.Date,
		Time:       req.Time,
		Status:     "pending",
		CreatedAt:  timezone.Now(),
	}

	h.localStore.AddReservation(r)
	httpresp.Created(c, r)
}

func (h *PublicHandler) ListDemoReservations(c *gin.Context) {
	httpresp.List(c, h.localStore.Reservations())
}

func (h *PublicHandler) UpdateDemoReservationStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Estado obligatorio.")
		return
	}

	if !reservation.Status(req.Status).IsValid() {
		httperr.BadRequest(c, "invalid_status", "Estado inválido.")
		return
	}

	h.localStore.UpdateReservationStatus(id, req.Status)
	httpresp.OK(c, gin.H{"id": id, "status": req.Status})
}
