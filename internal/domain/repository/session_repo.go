package repository

import (
	"context"
	"time"
)

// GuestSessionRepository хранит ожидающее гостевое имя в рамках сессии браузера
type GuestSessionRepository interface {
	SetGuestName(ctx context.Context, sessionID, name string, ttl time.Duration) error
	// ConsumeGuestName атомарно возвращает и удаляет гостевое имя.
	// Если имени нет, возвращает пустую строку без ошибки.
	ConsumeGuestName(ctx context.Context, sessionID string) (string, error)
}
