package websocket

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultRelayChannel — канал Redis для событий ленты
const DefaultRelayChannel = "quiz:leaderboard:events"

// RedisRelay передаёт события ленты между инстансами через Redis Pub/Sub.
// Инстанс публикует событие и получает его обратно через свою же подписку,
// поэтому локальная рассылка не дублируется.
type RedisRelay struct {
	client  redis.UniversalClient
	channel string
	hub     *Hub
}

// NewRedisRelay создает relay для хаба
func NewRedisRelay(client redis.UniversalClient, channel string, hub *Hub) *RedisRelay {
	if channel == "" {
		channel = DefaultRelayChannel
	}
	return &RedisRelay{client: client, channel: channel, hub: hub}
}

// Publish публикует сообщение в канал
func (r *RedisRelay) Publish(ctx context.Context, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Subscribe подписывается на канал и дожидается подтверждения подписки.
// Возвращённую функцию нужно запустить, чтобы пересылать сообщения в хаб до отмены ctx.
func (r *RedisRelay) Subscribe(ctx context.Context) (func(), error) {
	sub := r.client.Subscribe(ctx, r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}

	return func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					log.Printf("[WebSocket] Подписка на %s закрыта", r.channel)
					return
				}
				r.hub.BroadcastLocal([]byte(msg.Payload))
			}
		}
	}, nil
}
