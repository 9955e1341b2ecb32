package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	appevents "github.com/AllanBico/POS-sub000/internal/application/events"
	"github.com/AllanBico/POS-sub000/pkg/config"
)

var _ appevents.Publisher = (*RedisPublisher)(nil)

// RedisPublisher publica eventos de dominio por Redis pub/sub, un canal por
// tipo de evento. Entrega best-effort: los suscriptores ausentes no bloquean
// ni fallan la publicación.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisClient construye el cliente Redis desde la configuración.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisPublisher construye el publicador sobre un cliente existente.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Publish serializa el evento a JSON y lo publica en el canal de su tipo.
func (p *RedisPublisher) Publish(ctx context.Context, event appevents.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, event.Type, payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Close cierra el cliente subyacente.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
