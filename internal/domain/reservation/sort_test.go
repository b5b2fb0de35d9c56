package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurymalaver/salon-crm/internal/models"
)

func entry(id, date, timeStr, status string) models.Reservation {
	return models.Reservation{ID: id, Date: date, Time: timeStr, Status: status}
}

func idsOf(list []models.Reservation) []string {
	ids := make([]string, len(list))
	for i, r := range list {
		ids[i] = r.ID
	}
	return ids
}

func TestParseSortCriteria(t *testing.T) {
	assert.Equal(t, SortDateAsc, ParseSortCriteria("date_asc"))
	assert.Equal(t, SortDateDesc, ParseSortCriteria("date_desc"))
	assert.Equal(t, SortStatus, ParseSortCriteria("status"))

	// cualquier otra cosa cae al orden por defecto
	assert.Equal(t, SortDateAsc, ParseSortCriteria(""))
	assert.Equal(t, SortDateAsc, ParseSortCriteria("algo"))
}

func TestSortAgendaByDate(t *testing.T) {
	list := []models.Reservation{
		entry("r2", "2025-03-11", "10:00", "pending"),
		entry("r1", "2025-03-10", "16:00", "pending"),
		entry("r3", "2025-03-11", "14:00", "pending"),
	}

	asc := SortAgenda(list, SortDateAsc)
	assert.Equal(t, []string{"r1", "r2", "r3"}, idsOf(asc))

	desc := SortAgenda(list, SortDateDesc)
	assert.Equal(t, []string{"r3", "r2", "r1"}, idsOf(desc))

	// el original no se toca
	assert.Equal(t, []string{"r2", "r1", "r3"}, idsOf(list))
}

func TestSortAgendaByStatusPriority(t *testing.T) {
	list := []models.Reservation{
		entry("r1", "2025-03-10", "10:00", "cancelled"),
		entry("r2", "2025-03-10", "11:00", "completed"),
		entry("r3", "2025-03-10", "12:00", "pending"),
		entry("r4", "2025-03-10", "13:00", "confirmed"),
	}

	sorted := SortAgenda(list, SortStatus)
	assert.Equal(t, []string{"r3", "r4", "r2", "r1"}, idsOf(sorted))
}

func TestSortAgendaIsStable(t *testing.T) {
	list := []models.Reservation{
		entry("r1", "2025-03-10", "10:00", "pending"),
		entry("r2", "2025-03-10", "10:00", "pending"),
		entry("r3", "2025-03-10", "10:00", "pending"),
	}

	sorted := SortAgenda(list, SortDateAsc)
	assert.Equal(t, []string{"r1", "r2", "r3"}, idsOf(sorted))
}

func TestSortAgendaUnpaddedHours(t *testing.T) {
	// "9:30" viene de las sugerencias de horario y no trae cero inicial
	list := []models.Reservation{
		entry("r2", "2025-03-10", "10:45", "pending"),
		entry("r1", "2025-03-10", "9:30", "pending"),
	}

	sorted := SortAgenda(list, SortDateAsc)
	assert.Equal(t, []string{"r1", "r2"}, idsOf(sorted))
}

func TestSortAgendaUnparseableTimeFallsBackToDate(t *testing.T) {
	list := []models.Reservation{
		entry("r2", "2025-03-11", "??", "pending"),
		entry("r1", "2025-03-10", "10:00", "pending"),
	}

	sorted := SortAgenda(list, SortDateAsc)
	require.Len(t, sorted, 2)
	assert.Equal(t, []string{"r1", "r2"}, idsOf(sorted))
}
