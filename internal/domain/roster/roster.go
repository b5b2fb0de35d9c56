package roster

import (
	"github.com/yurymalaver/salon-crm/internal/catalog"
	"github.com/yurymalaver/salon-crm/internal/models"
)

// Umbrales de lealtad sobre el número de visitas acumuladas.
const (
	vipThreshold       = 5
	frecuenteThreshold = 2
)

// Derive reconstruye el directorio de clientas a partir del historial
// crudo de reservas. Es una proyección pura: mismo input, mismo roster.
//
// El snapshot llega ordenado por created_at descendente, así que se
// recorre invertido (cronológico) antes de plegar. La clave es el
// teléfono: el primer nombre visto gana y las variantes posteriores se
// descartan en silencio. El tier se recalcula tras cada visita y solo
// puede subir dentro de una misma pasada.
func Derive(reservations []models.Reservation) []models.Client {
	byPhone := make(map[string]*models.Client)
	order := make([]string, 0, len(reservations))

	for i := len(reservations) - 1; i >= 0; i-- {
		r := reservations[i]

		c, ok := byPhone[r.Phone]
		if !ok {
			c = &models.Client{
				ID:               r.Phone,
				Name:             r.ClientName,
				Phone:            r.Phone,
				Email:            r.Email,
				Type:             models.ClientNuevo,
				RegistrationDate: r.Date,
			}
			byPhone[r.Phone] = c
			order = append(order, r.Phone)
		}

		c.History = append(c.History, models.ServiceRecord{
			ID:       r.ID,
			ClientID: r.Phone,
			Date:     r.Date,
			Service:  r.Service,
			Price:    catalog.EstimatedServicePrice,
		})

		if len(c.History) > vipThreshold {
			c.Type = models.ClientVIP
		} else if len(c.History) > frecuenteThreshold {
			c.Type = models.ClientFrecuente
		}
	}

	clients := make([]models.Client, 0, len(order))
	for _, phone := range order {
		clients = append(clients, *byPhone[phone])
	}
	return clients
}
