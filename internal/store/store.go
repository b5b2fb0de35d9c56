package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yurymalaver/salon-crm/internal/models"
)

// Store es la copia local persistida que alimenta la página pública:
// reservas de demo, perfiles de clientas y promociones activas. Es un
// subsistema independiente de la colección remota del CRM y nunca se
// reconcilia con ella.
//
// Cada mutación persiste los tres slots completos y notifica a todos
// los suscriptores de forma síncrona. Si la persistencia falla, el
// fallo solo se registra: el estado en memoria avanza igual.
type Store struct {
	mu sync.Mutex

	reservations []models.Reservation
	clients      []models.Client
	promotions   []models.Promotion

	listeners  map[int]func()
	nextHandle int

	persister Persister
	log       *logrus.Logger
}

type Listener func()

func New(persister Persister, log *logrus.Logger) *Store {
	s := &Store{
		promotions: seedPromotions(),
		listeners:  make(map[int]func()),
		persister:  persister,
		log:        log,
	}
	s.loadFromStorage()
	return s
}

func seedPromotions() []models.Promotion {
	return []models.Promotion{
		{
			ID:           "p1",
			Title:        "Bienvenida de Lujo",
			Description:  "20% de descuento en tu primer Balayage o Diseño de Color.",
			DiscountCode: "NEWGLOW20",
		},
	}
}

func (s *Store) loadFromStorage() {
	ctx := context.Background()

	loadSlot(s, ctx, SlotReservations, &s.reservations)
	loadSlot(s, ctx, SlotClients, &s.clients)
	loadSlot(s, ctx, SlotPromotions, &s.promotions)
}

// loadSlot deja el valor previo intacto cuando el slot no existe o no
// parsea.
func loadSlot[T any](s *Store, ctx context.Context, slot string, dst *[]T) {
	data, err := s.persister.Load(ctx, slot)
	if err != nil {
		s.log.WithError(err).WithField("slot", slot).Warn("no se pudo leer el slot persistido")
		return
	}
	if data == nil {
		return
	}

	var parsed []T
	if err := json.Unmarshal(data, &parsed); err != nil {
		s.log.WithError(err).WithField("slot", slot).Error("slot persistido corrupto, se ignora")
		return
	}
	*dst = parsed
}

// notify persiste y avisa. Se llama con el lock tomado; los listeners
// se invocan fuera de él para que puedan volver a leer el store.
func (s *Store) notify() {
	s.saveToStorage()

	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}

	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	s.mu.Lock()
}

func (s *Store) saveToStorage() {
	ctx := context.Background()

	saveSlot(s, ctx, SlotReservations, s.reservations)
	saveSlot(s, ctx, SlotClients, s.clients)
	saveSlot(s, ctx, SlotPromotions, s.promotions)
}

func saveSlot[T any](s *Store, ctx context.Context, slot string, src []T) {
	data, err := json.Marshal(src)
	if err != nil {
		s.log.WithError(err).WithField("slot", slot).Warn("no se pudo serializar el slot")
		return
	}
	if err := s.persister.Save(ctx, slot, data); err != nil {
		// Brecha deliberada: el fallo se traga y el estado en memoria
		// sigue adelante.
		s.log.WithError(err).WithField("slot", slot).Warn("persistencia local falló")
	}
}

// Subscribe registra un listener y devuelve la función para darse de
// baja. La baja debe ejecutarse en todo camino de salida de la vista.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := s.nextHandle
	s.nextHandle++
	s.listeners[handle] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, handle)
	}
}

// ------------------------------
// Lecturas (copias, no vistas vivas)
// ------------------------------

func (s *Store) Reservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

func (s *Store) Clients() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) Promotions() []models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Promotion, len(s.promotions))
	copy(out, s.promotions)
	return out
}

// ------------------------------
// Mutaciones
// ------------------------------

// AddReservation antepone la reserva y, si el nombre no corresponde a
// ninguna clienta conocida, crea un perfil de demo para ella.
func (s *Store) AddReservation(r models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = append([]models.Reservation{r}, s.reservations...)

	known := false
	for _, c := range s.clients {
		if c.Name == r.ClientName {
			known = true
			break
		}
	}
	if !known {
		newClient := models.Client{
			ID:               fmt.Sprintf("c_%d", time.Now().UnixMilli()),
			Name:             r.ClientName,
			Phone:            r.Phone,
			Email:            "cliente@ejemplo.com",
			DOB:              "1990-01-01",
			Type:             models.ClientNuevo,
			RegistrationDate: time.Now().Format("2006-01-02"),
			History:          []models.ServiceRecord{},
			Preferences: &models.ClientPreferences{
				HairType:     "Por definir",
				ColorPrefs:   []string{},
				ProductsUsed: []string{},
				Notes:        "Cliente registrado desde la web.",
			},
		}
		s.clients = append([]models.Client{newClient}, s.clients...)
	}

	s.notify()
}

func (s *Store) UpdateReservationStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations[i].Status = status
		}
	}
	s.notify()
}

func (s *Store) UpdateClientType(clientID string, newType models.ClientType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == clientID {
			s.clients[i].Type = newType
		}
	}
	s.notify()
}

func (s *Store) AddPromotion(p models.Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.promotions = append([]models.Promotion{p}, s.promotions...)
	s.notify()
}

func (s *Store) DeletePromotion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.promotions[:0]
	for _, p := range s.promotions {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.promotions = kept
	s.notify()
}
