package metrics

import (
	"time"

	"github.com/yurymalaver/salon-crm/internal/catalog"
	"github.com/yurymalaver/salon-crm/internal/domain/reservation"
	"github.com/yurymalaver/salon-crm/internal/models"
)

// Agregados de solo lectura para el dashboard. Son KPIs aproximados,
// no cifras contables.

// Días de la semana en el orden del gráfico (lunes a domingo).
var WeekDays = []string{"lun", "mar", "mié", "jue", "vie", "sáb", "dom"}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "lun",
	time.Tuesday:   "mar",
	time.Wednesday: "mié",
	time.Thursday:  "jue",
	time.Friday:    "vie",
	time.Saturday:  "sáb",
	time.Sunday:    "dom",
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// WeekdayHistogram cuenta visitas por día de la semana. Fechas que no
// parsean se omiten.
func WeekdayHistogram(reservations []models.Reservation) []DayCount {
	counts := make(map[string]int)
	for _, r := range reservations {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		counts[weekdayNames[d.Weekday()]]++
	}

	out := make([]DayCount, 0, len(WeekDays))
	for _, day := range WeekDays {
		out = append(out, DayCount{Day: day, Count: counts[day]})
	}
	return out
}

// EstimatedRevenue multiplica reservas por el precio fijo estimado.
func EstimatedRevenue(reservations []models.Reservation) float64 {
	return float64(len(reservations)) * catalog.EstimatedServicePrice
}

func CountByStatus(reservations []models.Reservation, status reservation.Status) int {
	n := 0
	for _, r := range reservations {
		if reservation.Status(r.Status) == status {
			n++
		}
	}
	return n
}
