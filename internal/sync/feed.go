package sync

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	domain "github.com/yurymalaver/salon-crm/internal/domain/reservation"
	"github.com/yurymalaver/salon-crm/internal/domain/roster"
	"github.com/yurymalaver/salon-crm/internal/models"
)

type State string

const (
	StateChecking  State = "checking"
	StateConnected State = "connected"
	StateError     State = "error"
)

// Feed mantiene la vista del CRM sobre la colección de reservas: un
// sondeo inicial de conectividad, una suscripción viva que entrega el
// conjunto completo (no diffs) en cada cambio, y el roster de clientas
// re-derivado sobre ese conjunto.
//
// Si el sondeo falla, el feed queda en estado de error y la suscripción
// nunca se establece; el reintento es siempre una acción manual.
type Feed struct {
	repo domain.Repository
	bus  Bus
	log  *logrus.Logger

	mu           sync.Mutex
	state        State
	lastError    string
	reservations []models.Reservation
	clients      []models.Client

	subscribers map[int]chan struct{}
	nextHandle  int

	cancel context.CancelFunc
	closer func() error
}

func NewFeed(repo domain.Repository, bus Bus, log *logrus.Logger) *Feed {
	return &Feed{
		repo:        repo,
		bus:         bus,
		log:         log,
		state:       StateChecking,
		subscribers: make(map[int]chan struct{}),
	}
}

// Start sondea la conexión y, si responde, carga el snapshot inicial y
// deja corriendo la suscripción. Un fallo del sondeo deja el feed en
// estado de error hasta que alguien llame a Retry.
func (f *Feed) Start(ctx context.Context) error {
	f.mu.Lock()
	f.state = StateChecking
	f.lastError = ""
	f.mu.Unlock()

	if err := f.repo.Probe(ctx); err != nil {
		f.mu.Lock()
		f.state = StateError
		f.lastError = err.Error()
		f.mu.Unlock()
		f.log.WithError(err).Error("sondeo de conectividad falló")
		return err
	}

	wake, closer, err := f.bus.Listen(ctx)
	if err != nil {
		f.mu.Lock()
		f.state = StateError
		f.lastError = err.Error()
		f.mu.Unlock()
		f.log.WithError(err).Error("no se pudo establecer la suscripción")
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	f.state = StateConnected
	f.cancel = cancel
	f.closer = closer
	f.mu.Unlock()

	f.reload(runCtx)

	go func() {
		for {
			select {
			case <-runCtx.Done():
				return
			case _, ok := <-wake:
				if !ok {
					return
				}
				f.reload(runCtx)
			}
		}
	}()

	return nil
}

// Retry re-ejecuta el sondeo tras un estado de error.
func (f *Feed) Retry(ctx context.Context) error {
	f.Stop()
	return f.Start(ctx)
}

func (f *Feed) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	closer := f.closer
	f.cancel = nil
	f.closer = nil
	f.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if closer != nil {
		_ = closer()
	}
}

// reload trae el conjunto completo, lo reemplaza al por mayor y
// re-deriva el roster. Un fallo de recarga se registra pero no tumba la
// suscripción: el siguiente cambio vuelve a intentar.
func (f *Feed) reload(ctx context.Context) {
	reservations, err := f.repo.ListAll(ctx)
	if err != nil {
		f.log.WithError(err).Error("recarga del snapshot falló")
		return
	}

	clients := roster.Derive(reservations)

	f.mu.Lock()
	f.reservations = reservations
	f.clients = clients
	subs := make([]chan struct{}, 0, len(f.subscribers))
	for _, ch := range f.subscribers {
		subs = append(subs, ch)
	}
	f.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (f *Feed) Status() (State, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.lastError
}

// Snapshot devuelve copias de la lista de reservas y del roster derivado.
func (f *Feed) Snapshot() ([]models.Reservation, []models.Client) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reservations := make([]models.Reservation, len(f.reservations))
	copy(reservations, f.reservations)
	clients := make([]models.Client, len(f.clients))
	copy(clients, f.clients)
	return reservations, clients
}

// Subscribe entrega un canal que recibe una señal tras cada snapshot
// aplicado. La baja debe ejecutarse en todo camino de salida, incluido
// el de error.
func (f *Feed) Subscribe() (<-chan struct{}, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	handle := f.nextHandle
	f.nextHandle++
	ch := make(chan struct{}, 1)
	f.subscribers[handle] = ch

	return ch, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subscribers, handle)
	}
}
