package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const guestNameKeyPattern = "session:%s:guest_name"

// GuestSessionRepo реализует repository.GuestSessionRepository поверх Redis
type GuestSessionRepo struct {
	client redis.UniversalClient
}

// NewGuestSessionRepo создает новое хранилище гостевых имён и возвращает ошибку при проблемах
func NewGuestSessionRepo(client redis.UniversalClient) (*GuestSessionRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for GuestSessionRepo")
	}
	return &GuestSessionRepo{client: client}, nil
}

func guestNameKey(sessionID string) string {
	return fmt.Sprintf(guestNameKeyPattern, sessionID)
}

// SetGuestName сохраняет гостевое имя для сессии, перезаписывая предыдущее
func (r *GuestSessionRepo) SetGuestName(ctx context.Context, sessionID, name string, ttl time.Duration) error {
	return r.client.Set(ctx, guestNameKey(sessionID), name, ttl).Err()
}

// ConsumeGuestName атомарно читает и удаляет гостевое имя (GETDEL)
func (r *GuestSessionRepo) ConsumeGuestName(ctx context.Context, sessionID string) (string, error) {
	name, err := r.client.GetDel(ctx, guestNameKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}
