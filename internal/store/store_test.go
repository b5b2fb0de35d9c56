package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurymalaver/salon-crm/internal/models"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewSeedsWelcomePromotion(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())

	promos := s.Promotions()
	require.Len(t, promos, 1)
	assert.Equal(t, "p1", promos[0].ID)
	assert.Equal(t, "Bienvenida de Lujo", promos[0].Title)
	assert.Equal(t, "NEWGLOW20", promos[0].DiscountCode)
}

func TestAddReservationPrependsAndCreatesClient(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())

	s.AddReservation(models.Reservation{
		ID: "r1", ClientName: "Ana", Phone: "3001234567",
		Service: "Corte & Diseño Capilar", Date: "2025-03-10", Time: "10:00",
		Status: "pending",
	})
	s.AddReservation(models.Reservation{
		ID: "r2", ClientName: "Beatriz", Phone: "3010000000",
		Service: "Manicure Spa", Date: "2025-03-11", Time: "11:00",
		Status: "pending",
	})

	rs := s.Reservations()
	require.Len(t, rs, 2)
	// la más nueva primero
	assert.Equal(t, "r2", rs[0].ID)
	assert.Equal(t, "r1", rs[1].ID)

	clients := s.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, "Beatriz", clients[0].Name)
	assert.Equal(t, "Ana", clients[1].Name)
	assert.Equal(t, models.ClientNuevo, clients[0].Type)
	require.NotNil(t, clients[0].Preferences)
	assert.Equal(t, "Por definir", clients[0].Preferences.HairType)
	assert.Equal(t, "cliente@ejemplo.com", clients[0].Email)
}

func TestAddReservationKnownNameDoesNotDuplicateClient(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())

	s.AddReservation(models.Reservation{ID: "r1", ClientName: "Ana", Phone: "3001234567"})
	s.AddReservation(models.Reservation{ID: "r2", ClientName: "Ana", Phone: "3009999999"})

	assert.Len(t, s.Reservations(), 2)
	assert.Len(t, s.Clients(), 1)
}

func TestUpdateReservationStatus(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())
	s.AddReservation(models.Reservation{ID: "r1", ClientName: "Ana", Status: "pending"})

	s.UpdateReservationStatus("r1", "confirmed")

	rs := s.Reservations()
	require.Len(t, rs, 1)
	assert.Equal(t, "confirmed", rs[0].Status)

	// un id desconocido no toca nada
	s.UpdateReservationStatus("nope", "cancelled")
	assert.Equal(t, "confirmed", s.Reservations()[0].Status)
}

func TestUpdateClientType(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())
	s.AddReservation(models.Reservation{ID: "r1", ClientName: "Ana"})

	id := s.Clients()[0].ID
	s.UpdateClientType(id, models.ClientVIP)

	assert.Equal(t, models.ClientVIP, s.Clients()[0].Type)
}

func TestAddAndDeletePromotion(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())

	s.AddPromotion(models.Promotion{ID: "p2", Title: "Noche de Spa"})

	promos := s.Promotions()
	require.Len(t, promos, 2)
	assert.Equal(t, "p2", promos[0].ID)

	s.DeletePromotion("p1")

	promos = s.Promotions()
	require.Len(t, promos, 1)
	assert.Equal(t, "p2", promos[0].ID)

	// borrar un id inexistente es un no-op
	s.DeletePromotion("ghost")
	assert.Len(t, s.Promotions(), 1)
}

func TestStateSurvivesReload(t *testing.T) {
	p := NewMemoryPersister()
	log := quietLogger()

	s := New(p, log)
	s.AddReservation(models.Reservation{ID: "r1", ClientName: "Ana", Phone: "3001234567"})
	s.AddPromotion(models.Promotion{ID: "p2", Title: "Noche de Spa"})

	reloaded := New(p, log)

	assert.Equal(t, s.Reservations(), reloaded.Reservations())
	assert.Equal(t, s.Clients(), reloaded.Clients())
	assert.Equal(t, s.Promotions(), reloaded.Promotions())
}

func TestReloadedStateRepersistsByteIdentical(t *testing.T) {
	p := NewMemoryPersister()
	log := quietLogger()
	ctx := context.Background()

	s := New(p, log)
	s.AddReservation(models.Reservation{
		ID: "r1", ClientName: "Ana", Phone: "3001234567",
		Service: "Corte & Diseño Capilar", Date: "2025-03-10", Time: "10:00",
		Status: "pending",
	})
	s.AddPromotion(models.Promotion{ID: "p2", Title: "Noche de Spa"})

	slots := []string{SlotReservations, SlotClients, SlotPromotions}
	before := make(map[string][]byte, len(slots))
	for _, slot := range slots {
		data, err := p.Load(ctx, slot)
		require.NoError(t, err)
		require.NotNil(t, data, slot)
		before[slot] = data
	}

	reloaded := New(p, log)
	// una mutación sobre un id desconocido no cambia el estado pero vuelve
	// a escribir los tres slots
	reloaded.UpdateReservationStatus("fantasma", "confirmed")

	for _, slot := range slots {
		data, err := p.Load(ctx, slot)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(before[slot], data), slot)
	}
}

func TestListenersFireOnEveryMutation(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.AddReservation(models.Reservation{ID: "r1", ClientName: "Ana"})
	s.UpdateReservationStatus("r1", "confirmed")
	s.AddPromotion(models.Promotion{ID: "p2"})
	s.DeletePromotion("p2")

	assert.Equal(t, 4, calls)

	unsubscribe()
	s.AddPromotion(models.Promotion{ID: "p3"})
	assert.Equal(t, 4, calls)
}

func TestListenerCanReadStoreBack(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())

	var seen int
	s.Subscribe(func() {
		seen = len(s.Reservations())
	})

	s.AddReservation(models.Reservation{ID: "r1", ClientName: "Ana"})
	assert.Equal(t, 1, seen)
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	p := NewMemoryPersister()
	p.SaveErr = errors.New("disco lleno")
	s := New(p, quietLogger())

	notified := false
	s.Subscribe(func() { notified = true })

	// la mutación no entrega error y el estado en memoria avanza
	s.AddReservation(models.Reservation{ID: "r1", ClientName: "Ana"})

	assert.True(t, notified)
	assert.Len(t, s.Reservations(), 1)
}

func TestReadsReturnCopies(t *testing.T) {
	s := New(NewMemoryPersister(), quietLogger())
	s.AddReservation(models.Reservation{ID: "r1", ClientName: "Ana", Status: "pending"})

	rs := s.Reservations()
	rs[0].Status = "cancelled"

	assert.Equal(t, "pending", s.Reservations()[0].Status)
}

func TestCorruptSlotIsIgnored(t *testing.T) {
	p := NewMemoryPersister()
	require.NoError(t, p.Save(context.Background(), SlotPromotions, []byte("{no es un arreglo")))

	s := New(p, quietLogger())

	// el slot corrupto se descarta y queda la promoción sembrada
	promos := s.Promotions()
	require.Len(t, promos, 1)
	assert.Equal(t, "p1", promos[0].ID)
}
