package reservation

import (
	"context"
	"time"

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

// ======================================================
// INPUT
// ======================================================

type IntakeInput struct {
	ClientName string
	Phone      string
	Email      string
	Service    string
	Date       string
	Time       string
}

// ======================================================
// USE CASE
// ======================================================

// Intake registra una reserva del formulario público: valida contra la
// carta fija, crea el documento con estado pending y publica el cambio
// para que el feed del CRM recargue.
type Intake struct {
	repo  domain.Repository
	bus   sync.Bus
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewIntake(
	repo domain.Repository,
	bus sync.Bus,
	auditDispatcher *audit.Dispatcher,
	log *logrus.Logger,
) *Intake {
	return &Intake{
		repo:  repo,
		bus:   bus,
		audit: auditDispatcher,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Intake) Execute(ctx context.Context, in IntakeInput) (*models.Reservation, error) {

	if in.ClientName == "" || in.Phone == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	if !catalog.IsService(in.Service) {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if !validWallClock(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	r := &models.Reservation{
		ID:         uuid.NewString(),
		ClientName: in.ClientName,
		Phone:      in.Phone,
		Email:      in.Email,
		Service:    in.Service,
		Date:       in.Date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
		CreatedAt:  timezone.Now(),
	}

	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	// El despertar es mejor esfuerzo: si falla, el snapshot se pondrá
	// al día con el siguiente cambio.
	if err := uc.bus.Publish(ctx); err != nil {
		uc.log.WithError(err).Warn("no se pudo publicar el cambio de reservas")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: r.ID,
	})

	return r, nil
}

// validWallClock acepta HH:MM y también las horas sin cero inicial que
// produce la heurística de alternativas ("9:30").
func validWallClock(t string) bool {
	for _, layout := range []string{"15:04", "3:04"} {
		if _, err := time.Parse(layout, t); err == nil {
			return true
		}
	}
	return false
}
