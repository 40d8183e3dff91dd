// Package memory содержит in-process реализации хранилищ для запуска без Redis
package memory

import (
	"context"
	"sync"
	"time"
)

// sweepInterval — как часто SetGuestName удаляет просроченные записи
const sweepInterval = time.Minute

type guestEntry struct {
	name      string
	expiresAt time.Time
}

// GuestSessionRepo хранит гостевые имена в памяти процесса
type GuestSessionRepo struct {
	mu        sync.Mutex
	entries   map[string]guestEntry
	now       func() time.Time
	lastSweep time.Time
}

// NewGuestSessionRepo создает пустое in-memory хранилище
func NewGuestSessionRepo() *GuestSessionRepo {
	return &GuestSessionRepo{
		entries: make(map[string]guestEntry),
		now:     time.Now,
	}
}

// SetGuestName сохраняет имя для сессии. ttl <= 0 означает хранение без срока.
func (r *GuestSessionRepo) SetGuestName(_ context.Context, sessionID, name string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := guestEntry{name: name}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.entries[sessionID] = entry
	r.sweepLocked()
	return nil
}

// ConsumeGuestName возвращает и удаляет имя под одним мьютексом
func (r *GuestSessionRepo) ConsumeGuestName(_ context.Context, sessionID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		return "", nil
	}
	delete(r.entries, sessionID)
	if r.expired(entry) {
		return "", nil
	}
	return entry.name, nil
}

func (r *GuestSessionRepo) expired(e guestEntry) bool {
	return !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt)
}

// sweepLocked удаляет просроченные записи не чаще раза в sweepInterval.
// Между проходами просроченные записи отсекает ConsumeGuestName.
func (r *GuestSessionRepo) sweepLocked() {
	now := r.now()
	if now.Sub(r.lastSweep) < sweepInterval {
		return
	}
	r.lastSweep = now
	for id, e := range r.entries {
		if r.expired(e) {
			delete(r.entries, id)
		}
	}
}
