package mem

import (
	"sync"
	"time"
)

// StandingsCache holds a computed leaderboard for a short TTL so the
// ranking query is not re-run on every request. Standings are stored
// per limit so /leaderboard?limit=10 and ?limit=50 do not collide.
type StandingsCache[T any] struct {
	mu   sync.RWMutex
	data map[int]standingsEntry[T]
	ttl  time.Duration
}

type standingsEntry[T any] struct {
	rows      []T
	expiresAt time.Time
}

func NewStandingsCache[T any](ttl time.Duration) *StandingsCache[T] {
	return &StandingsCache[T]{
		data: make(map[int]standingsEntry[T]),
		ttl:  ttl,
	}
}

func (c *StandingsCache[T]) Get(limit int) ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[limit]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.rows, true
}

func (c *StandingsCache[T]) Set(limit int, rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[limit] = standingsEntry[T]{
		rows:      rows,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *StandingsCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[int]standingsEntry[T])
}
