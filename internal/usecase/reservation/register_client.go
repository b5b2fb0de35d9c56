package reservation

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yurymalaver/salon-crm/internal/audit"
	"github.com/yurymalaver/salon-crm/internal/catalog"
	domain "github.com/yurymalaver/salon-crm/internal/domain/reservation"
	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/models"
	"github.com/yurymalaver/salon-crm/internal/sync"
	"github.com/yurymalaver/salon-crm/internal/timezone"
)

type RegisterClientInput struct {
	Name  string
	Phone string
	Email string
}

// RegisterClient da de alta una clienta desde el CRM. No hay colección
// de clientas: se inserta una reserva completada de "Registro Manual"
// con fecha de hoy para que la derivación del roster la recoja.
type RegisterClient struct {
	repo  domain.Repository
	bus   sync.Bus
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewRegisterClient(
	repo domain.Repository,
	bus sync.Bus,
	auditDispatcher *audit.Dispatcher,
	log *logrus.Logger,
) *RegisterClient {
	return &RegisterClient{
		repo:  repo,
		bus:   bus,
		audit: auditDispatcher,
		log:   log,
	}
}

func (uc *RegisterClient) Execute(
	ctx context.Context,
	userID uint,
	in RegisterClientInput,
) (*models.Reservation, error) {

	if in.Name == "" || in.Phone == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	r := &models.Reservation{
		ID:         uuid.NewString(),
		ClientName: in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		Service:    catalog.ManualRegistrationService,
		Date:       timezone.Today(),
		Time:       "00:00",
		Status:     string(domain.StatusCompleted),
		CreatedAt:  timezone.Now(),
	}

	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	if err := uc.bus.Publish(ctx); err != nil {
		uc.log.WithError(err).Warn("no se pudo publicar el cambio de reservas")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_registered",
		Entity:   "reservation",
		EntityID: r.ID,
	})

	return r, nil
}
