package models

import "time"

// Reserva creada desde el formulario público o por registro manual del admin.
// Date y Time se guardan como texto plano (YYYY-MM-DD / HH:MM), igual que
// llegan del formulario.
type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Phone      string `gorm:"size:20;not null" json:"phone"`
	Email      string `gorm:"size:100" json:"email,omitempty"`

	Service string `gorm:"size:100;not null" json:"service"`
	Date    string `gorm:"size:10;not null" json:"date"`
	Time    string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
