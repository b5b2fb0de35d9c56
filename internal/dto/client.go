package dto

import (
	"github.com/yurymalaver/salon-crm/internal/links"
	"github.com/yurymalaver/salon-crm/internal/models"
)

// ClientEntry es la fila del directorio de clientas: la ficha derivada
// más el enlace de chat listo para abrir.
type ClientEntry struct {
	models.Client
	WhatsAppLink string `json:"whatsapp_link"`
}

func NewClientEntries(clients []models.Client) []ClientEntry {
	entries := make([]ClientEntry, 0, len(clients))
	for _, cl := range clients {
		entries = append(entries, ClientEntry{
			Client:       cl,
			WhatsAppLink: links.WhatsApp(cl.Phone),
		})
	}
	return entries
}
