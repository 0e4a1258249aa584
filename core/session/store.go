package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// OpenFunc opens a session for player.
type OpenFunc func(ctx context.Context, player string) (*Session, error)

type cached struct {
	session *Session
	built   time.Time
}

// Store keeps opened sessions per player for a TTL and collapses concurrent
// opens of the same player into one.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]cached
	sf       singleflight.Group

	ttl  time.Duration
	open OpenFunc
	now  func() time.Time
}

// NewStore creates a Store. A zero ttl disables reuse: every Get opens a
// fresh session the caller owns. A negative ttl keeps sessions until Close,
// which suits short-lived processes such as a single CLI command.
func NewStore(ttl time.Duration, open OpenFunc) *Store {
	return &Store{
		sessions: make(map[string]cached),
		ttl:      ttl,
		open:     open,
		now:      time.Now,
	}
}

func (s *Store) fresh(player string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.sessions[player]
	if !ok || s.ttl == 0 || (s.ttl > 0 && s.now().Sub(c.built) > s.ttl) {
		return nil, false
	}
	return c.session, true
}

// Get returns a cached session for player or opens a new one.
func (s *Store) Get(ctx context.Context, player string) (*Session, error) {
	if sess, ok := s.fresh(player); ok {
		return sess, nil
	}

	result, err, _ := s.sf.Do(player, func() (interface{}, error) {
		// Another caller may have finished opening while we waited.
		if sess, ok := s.fresh(player); ok {
			return sess, nil
		}

		sess, err := s.open(ctx, player)
		if err != nil {
			return nil, err
		}

		if s.ttl != 0 {
			s.mu.Lock()
			s.sessions[player] = cached{session: sess, built: s.now()}
			s.mu.Unlock()
		}
		return sess, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Session), nil
}

// Invalidate forgets the cached session of player. Requests still holding it
// keep working; the next Get opens a new one.
func (s *Store) Invalidate(player string) {
	s.mu.Lock()
	delete(s.sessions, player)
	s.mu.Unlock()
}

// Close closes and forgets every cached session.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for player, c := range s.sessions {
		_ = c.session.Close()
		delete(s.sessions, player)
	}
}
