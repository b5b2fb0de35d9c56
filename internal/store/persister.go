package store

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"
)

// Slots de almacenamiento duradero. Cada uno guarda un arreglo JSON
// serializado completo.
const (
	SlotReservations = "ym:reservations"
	SlotClients      = "ym:clients"
	SlotPromotions   = "ym:promotions"
)

// Persister es el respaldo duradero del store local. Load devuelve
// (nil, nil) cuando el slot no existe todavía.
type Persister interface {
	Save(ctx context.Context, slot string, data []byte) error
	Load(ctx context.Context, slot string) ([]byte, error)
}

// ------------------------------
// Redis
// ------------------------------

type RedisPersister struct {
	rdb *redis.Client
}

func NewRedisPersister(rdb *redis.Client) *RedisPersister {
	return &RedisPersister{rdb: rdb}
}

func (p *RedisPersister) Save(ctx context.Context, slot string, data []byte) error {
	return p.rdb.Set(ctx, slot, data, 0).Err()
}

func (p *RedisPersister) Load(ctx context.Context, slot string) ([]byte, error) {
	data, err := p.rdb.Get(ctx, slot).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

var _ Persister = (*RedisPersister)(nil)

// ------------------------------
// Memoria (tests)
// ------------------------------

type MemoryPersister struct {
	mu    sync.Mutex
	slots map[string][]byte

	// SaveErr fuerza fallos de persistencia en tests.
	SaveErr error
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{slots: make(map[string][]byte)}
}

func (p *MemoryPersister) Save(_ context.Context, slot string, data []byte) error {
	if p.SaveErr != nil {
		return p.SaveErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	p.slots[slot] = cp
	return nil
}

func (p *MemoryPersister) Load(_ context.Context, slot string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.slots[slot]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

var _ Persister = (*MemoryPersister)(nil)
