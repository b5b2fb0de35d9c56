package reservation

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yurymalaver/salon-crm/internal/audit"
	domain "github.com/yurymalaver/salon-crm/internal/domain/reservation"
	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/sync"
)

// UpdateStatus cambia el estado de una reserva con una actualización de
// campo único. No hay máquina de estados: cualquier transición entre
// estados válidos se acepta.
type UpdateStatus struct {
	repo  domain.Repository
	bus   sync.Bus
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewUpdateStatus(
	repo domain.Repository,
	bus sync.Bus,
	auditDispatcher *audit.Dispatcher,
	log *logrus.Logger,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		bus:   bus,
		audit: auditDispatcher,
		log:   log,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	userID uint,
	reservationID string,
	status string,
) error {

	newStatus := domain.Status(status)
	if !newStatus.IsValid() {
		return httperr.ErrBusiness("invalid_status")
	}

	if err := uc.repo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		return err
	}

	if err := uc.bus.Publish(ctx); err != nil {
		uc.log.WithError(err).Warn("no se pudo publicar el cambio de reservas")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_status_changed",
		Entity:   "reservation",
		EntityID: reservationID,
		Metadata: map[string]string{"status": status},
	})

	return nil
}
