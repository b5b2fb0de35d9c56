package dto

import (
	"github.com/yurymalaver/salon-crm/internal/links"
	"github.com/yurymalaver/salon-crm/internal/models"
)

// AgendaEntry es la fila de la lista de agenda del CRM: la reserva más
// el enlace de chat ya construido.
type AgendaEntry struct {
	models.Reservation
	WhatsAppLink string `json:"whatsapp_link"`
}

func NewAgendaEntries(reservations []models.Reservation) []AgendaEntry {
	entries := make([]AgendaEntry, 0, len(reservations))
	for _, r := range reservations {
		entries = append(entries, AgendaEntry{
			Reservation:  r,
			WhatsAppLink: links.WhatsApp(r.Phone),
		})
	}
	return entries
}
