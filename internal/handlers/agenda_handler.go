package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/yurymalaver/salon-crm/internal/domain/reservation"
	"github.com/yurymalaver/salon-crm/internal/dto"
	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/httpresp"
	"github.com/yurymalaver/salon-crm/internal/middleware"
	"github.com/yurymalaver/salon-crm/internal/sync"
	ucReservation "github.com/yurymalaver/salon-crm/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaHandler struct {
	feed         *sync.Feed
	updateStatus *ucReservation.UpdateStatus
}

func NewAgendaHandler(feed *sync.Feed, updateStatus *ucReservation.UpdateStatus) *AgendaHandler {
	return &AgendaHandler{
		feed:         feed,
		updateStatus: updateStatus,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AgendaHandler) List(c *gin.Context) {
	if !requireConnected(c, h.feed) {
		return
	}

	criteria := domain.ParseSortCriteria(c.Query("sort"))

	reservations, _ := h.feed.Snapshot()
	sorted := domain.SortAgenda(reservations, criteria)

	httpresp.List(c, dto.NewAgendaEntries(sorted))
}

// ======================================================
// STATUS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AgendaHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Estado obligatorio.")
		return
	}

	err := h.updateStatus.Execute(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Estado inválido.")
		case httperr.IsBusiness(err, "reservation_not_found"):
			httperr.NotFound(c, "reservation_not_found", "Reserva no encontrada.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Error actualizando estado.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// requireConnected corta con el estado del feed cuando la suscripción
// no está establecida; el CRM exige un reintento manual.
func requireConnected(c *gin.Context, feed *sync.Feed) bool {
	state, lastErr := feed.Status()
	if state == sync.StateConnected {
		return true
	}

	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":   "feed_not_connected",
		"state":   state,
		"details": lastErr,
	})
	return false
}
