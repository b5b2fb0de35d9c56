package sync

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Canal de pub/sub que despierta al feed tras cada escritura de reservas.
const appointmentsChannel = "salon:appointments:changed"

// Bus transporta señales de "algo cambió". No lleva datos: el feed
// siempre recarga el snapshot completo.
type Bus interface {
	Publish(ctx context.Context) error

	// Listen devuelve un canal de despertares y un cierre que debe
	// ejecutarse en todo camino de salida.
	Listen(ctx context.Context) (<-chan struct{}, func() error, error)
}

type RedisBus struct {
	rdb *redis.Client
}

func NewRedisBus(rdb *redis.Client) *RedisBus {
	return &RedisBus{rdb: rdb}
}

func (b *RedisBus) Publish(ctx context.Context) error {
	return b.rdb.Publish(ctx, appointmentsChannel, "1").Err()
}

func (b *RedisBus) Listen(ctx context.Context) (<-chan struct{}, func() error, error) {
	pubsub := b.rdb.Subscribe(ctx, appointmentsChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, err
	}

	wake := make(chan struct{}, 1)
	go func() {
		defer close(wake)
		for range pubsub.Channel() {
			select {
			case wake <- struct{}{}:
			default:
				// ya hay un despertar pendiente, coalescemos
			}
		}
	}()

	return wake, pubsub.Close, nil
}

var _ Bus = (*RedisBus)(nil)
