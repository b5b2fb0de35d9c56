package reservation

import (
	"sort"
	"time"

	"github.com/yurymalaver/salon-crm/internal/models"
)

type SortCriteria string

const (
	SortDateAsc  SortCriteria = "date_asc"
	SortDateDesc SortCriteria = "date_desc"
	SortStatus   SortCriteria = "status"
)

func ParseSortCriteria(raw string) SortCriteria {
	switch SortCriteria(raw) {
	case SortDateDesc:
		return SortDateDesc
	case SortStatus:
		return SortStatus
	}
	return SortDateAsc
}

// SortAgenda ordena una copia de la lista según el criterio. El orden es
// estable: entradas con clave igual conservan su orden de llegada.
func SortAgenda(list []models.Reservation, criteria SortCriteria) []models.Reservation {
	sorted := make([]models.Reservation, len(list))
	copy(sorted, list)

	switch criteria {
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return startOf(sorted[i]).Before(startOf(sorted[j]))
		})
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return startOf(sorted[j]).Before(startOf(sorted[i]))
		})
	case SortStatus:
		sort.SliceStable(sorted, func(i, j int) bool {
			return Status(sorted[i].Status).Priority() < Status(sorted[j].Status).Priority()
		})
	}

	return sorted
}

// startOf combina fecha y hora de la reserva. Las horas sugeridas por la
// heurística pueden venir sin cero inicial ("9:30"), así que se intentan
// ambos formatos.
func startOf(r models.Reservation) time.Time {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 3:04"} {
		if t, err := time.Parse(layout, r.Date+" "+r.Time); err == nil {
			return t
		}
	}
	if t, err := time.Parse("2006-01-02", r.Date); err == nil {
		return t
	}
	return time.Time{}
}
