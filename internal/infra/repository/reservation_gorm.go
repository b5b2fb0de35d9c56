package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/yurymalaver/salon-crm/internal/domain/reservation"
	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Conectividad
// --------------------------------------------------

func (r *ReservationGormRepository) Probe(ctx context.Context) error {
	var probe []models.Reservation
	return r.db.WithContext(ctx).Limit(1).Find(&probe).Error
}

// --------------------------------------------------
// Snapshot
// --------------------------------------------------

// ListAll ordena por created_at descendente con el id como desempate
// para que recargas sucesivas sean deterministas.
func (r *ReservationGormRepository) ListAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// --------------------------------------------------
// Escrituras
// --------------------------------------------------

func (r *ReservationGormRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *ReservationGormRepository) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationGormRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", string(status))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("reservation_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
