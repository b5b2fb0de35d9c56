package roster

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurymalaver/salon-crm/internal/catalog"
	"github.com/yurymalaver/salon-crm/internal/models"
)

// snapshot construye reservas en el orden del feed: created_at
// descendente, es decir, la más reciente primero.
func snapshot(rs ...models.Reservation) []models.Reservation {
	return rs
}

func reservation(id, name, phone, date string) models.Reservation {
	return models.Reservation{
		ID:         id,
		ClientName: name,
		Phone:      phone,
		Email:      name + "@ejemplo.com",
		Service:    "Corte & Diseño Capilar",
		Date:       date,
		Time:       "10:00",
		Status:     "pending",
	}
}

func TestDeriveEmptySnapshot(t *testing.T) {
	assert.Empty(t, Derive(nil))
	assert.Empty(t, Derive([]models.Reservation{}))
}

func TestDeriveSingleReservation(t *testing.T) {
	clients := Derive(snapshot(
		reservation("r1", "Ana", "3001234567", "2025-03-10"),
	))

	require.Len(t, clients, 1)

	c := clients[0]
	assert.Equal(t, "3001234567", c.ID)
	assert.Equal(t, "3001234567", c.Phone)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, models.ClientNuevo, c.Type)
	assert.Equal(t, "2025-03-10", c.RegistrationDate)

	require.Len(t, c.History, 1)
	assert.Equal(t, "r1", c.History[0].ID)
	assert.Equal(t, float64(catalog.EstimatedServicePrice), c.History[0].Price)
}

func TestDeriveTierThresholds(t *testing.T) {
	build := func(visits int) []models.Reservation {
		rs := make([]models.Reservation, 0, visits)
		// más reciente primero, como llega el snapshot
		for i := visits; i >= 1; i-- {
			rs = append(rs, reservation(
				fmt.Sprintf("r%d", i),
				"Ana",
				"3001234567",
				fmt.Sprintf("2025-03-%02d", i),
			))
		}
		return rs
	}

	cases := []struct {
		visits int
		want   models.ClientType
	}{
		{1, models.ClientNuevo},
		{2, models.ClientNuevo},
		{3, models.ClientFrecuente},
		{5, models.ClientFrecuente},
		{6, models.ClientVIP},
		{9, models.ClientVIP},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d visitas", tc.visits), func(t *testing.T) {
			clients := Derive(build(tc.visits))
			require.Len(t, clients, 1)
			assert.Equal(t, tc.want, clients[0].Type)
			assert.Len(t, clients[0].History, tc.visits)
		})
	}
}

func TestDeriveFirstSeenNameWins(t *testing.T) {
	// Cronológicamente la primera es "Ana María" (la última del
	// snapshot); las variantes posteriores no renombran la ficha.
	clients := Derive(snapshot(
		reservation("r3", "Ana M.", "3001234567", "2025-03-12"),
		reservation("r2", "Ana", "3001234567", "2025-03-11"),
		reservation("r1", "Ana María", "3001234567", "2025-03-10"),
	))

	require.Len(t, clients, 1)
	assert.Equal(t, "Ana María", clients[0].Name)
	assert.Len(t, clients[0].History, 3)
}

func TestDeriveMultipleClientsKeepFirstSeenOrder(t *testing.T) {
	clients := Derive(snapshot(
		reservation("r4", "Carla", "3020000000", "2025-03-13"),
		reservation("r3", "Beatriz", "3010000000", "2025-03-12"),
		reservation("r2", "Ana", "3001234567", "2025-03-11"),
		reservation("r1", "Ana", "3001234567", "2025-03-10"),
	))

	require.Len(t, clients, 3)
	assert.Equal(t, "Ana", clients[0].Name)
	assert.Equal(t, "Beatriz", clients[1].Name)
	assert.Equal(t, "Carla", clients[2].Name)
}

func TestDeriveHistoryIsChronological(t *testing.T) {
	clients := Derive(snapshot(
		reservation("r3", "Ana", "3001234567", "2025-03-12"),
		reservation("r2", "Ana", "3001234567", "2025-03-11"),
		reservation("r1", "Ana", "3001234567", "2025-03-10"),
	))

	require.Len(t, clients, 1)
	history := clients[0].History
	require.Len(t, history, 3)
	assert.Equal(t, "r1", history[0].ID)
	assert.Equal(t, "r2", history[1].ID)
	assert.Equal(t, "r3", history[2].ID)
}

func TestDeriveIsDeterministic(t *testing.T) {
	input := snapshot(
		reservation("r3", "Beatriz", "3010000000", "2025-03-12"),
		reservation("r2", "Ana", "3001234567", "2025-03-11"),
		reservation("r1", "Ana", "3001234567", "2025-03-10"),
	)

	first := Derive(input)
	second := Derive(input)

	assert.Equal(t, first, second)
}

func TestDeriveCountsAllStatuses(t *testing.T) {
	// El conteo de visitas no distingue estados: una reserva cancelada
	// también aporta al tier.
	rs := snapshot(
		reservation("r3", "Ana", "3001234567", "2025-03-12"),
		reservation("r2", "Ana", "3001234567", "2025-03-11"),
		reservation("r1", "Ana", "3001234567", "2025-03-10"),
	)
	rs[0].Status = "cancelled"

	clients := Derive(rs)
	require.Len(t, clients, 1)
	assert.Equal(t, models.ClientFrecuente, clients[0].Type)
}
