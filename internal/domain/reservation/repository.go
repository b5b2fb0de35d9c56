package reservation

import (
	"context"

	"github.com/yurymalaver/salon-crm/internal/models"
)

type Repository interface {
	// Probe verifica conectividad con la colección antes de habilitar
	// la suscripción del CRM.
	Probe(ctx context.Context) error

	// ListAll devuelve el conjunto completo ordenado por fecha de
	// creación descendente (el snapshot que consume el CRM).
	ListAll(ctx context.Context) ([]models.Reservation, error)

	Create(ctx context.Context, r *models.Reservation) error

	GetByID(ctx context.Context, id string) (*models.Reservation, error)

	// UpdateStatus actualiza únicamente el campo status.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
