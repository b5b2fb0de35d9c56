package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yurymalaver/salon-crm/internal/dto"
	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/httpresp"
	"github.com/yurymalaver/salon-crm/internal/middleware"
	"github.com/yurymalaver/salon-crm/internal/models"
	"github.com/yurymalaver/salon-crm/internal/store"
	"github.com/yurymalaver/salon-crm/internal/sync"
	ucReservation "github.com/yurymalaver/salon-crm/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	feed       *sync.Feed
	register   *ucReservation.RegisterClient
	localStore *store.Store
}

func NewClientHandler(
	feed *sync.Feed,
	register *ucReservation.RegisterClient,
	localStore *store.Store,
) *ClientHandler {
	return &ClientHandler{
		feed:       feed,
		register:   register,
		localStore: localStore,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	if !requireConnected(c, h.feed) {
		return
	}

	_, clients := h.feed.Snapshot()

	httpresp.List(c, dto.NewClientEntries(clients))
}

// ======================================================
// REGISTER
// ======================================================

type RegisterClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

func (h *ClientHandler) Register(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nombre y teléfono son obligatorios.")
		return
	}

	reservation, err := h.register.Execute(c.Request.Context(), userID, ucReservation.RegisterClientInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Datos del cliente inválidos.")
			return
		}
		httperr.Internal(c, "failed_to_register_client", "Error registrando el cliente.")
		return
	}

	httpresp.Created(c, reservation)
}

// ======================================================
// LOCAL (demo)
// ======================================================

func (h *ClientHandler) ListLocal(c *gin.Context) {
	httpresp.List(c, dto.NewClientEntries(h.localStore.Clients()))
}

type UpdateClientTypeRequest struct {
	Type string `json:"type" binding:"required"`
}

func (h *ClientHandler) UpdateType(c *gin.Context) {
	id := c.Param("id")

	var req UpdateClientTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Tipo de clienta obligatorio.")
		return
	}

	newType := models.ClientType(req.Type)
	switch newType {
	case models.ClientNuevo, models.ClientFrecuente, models.ClientVIP, models.ClientInactivo:
	default:
		httperr.BadRequest(c, "invalid_client_type", "Tipo de clienta inválido.")
		return
	}

	h.localStore.UpdateClientType(id, newType)

	httpresp.OK(c, gin.H{"id": id, "type": newType})
}
