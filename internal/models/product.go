package models

import "time"

// Producto de inventario. En este diseño solo existe alta y lectura:
// no hay ruta de actualización ni de borrado.
type Product struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Category string  `gorm:"size:50" json:"category"`
	Stock    int     `json:"stock"`
	MinStock int     `gorm:"default:5" json:"min_stock"`
	Price    float64 `json:"price"`

	LastRestock time.Time `json:"last_restock"`
	CreatedAt   time.Time `json:"created_at"`
}
