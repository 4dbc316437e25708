package shared

import (
	"sync"
	"time"

	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/errs"
)

type session[V any] struct {
	owner    string
	value    V
	lastSeen time.Time
}

// SessionStore holds engines per owner. A session that belongs to another
// owner is reported as not found. Every lookup by the owner refreshes the
// session's last access time, which Expire compares against.
type SessionStore[K comparable, V any] struct {
	clock    clock.Clock
	mu       sync.Mutex
	sessions map[K]session[V]
}

func NewSessionStore[K comparable, V any](clk clock.Clock) *SessionStore[K, V] {
	return &SessionStore[K, V]{clock: clk, sessions: make(map[K]session[V])}
}

// Put stores value under key and returns the value it replaced, if any.
func (s *SessionStore[K, V]) Put(owner string, key K, value V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.sessions[key]
	s.sessions[key] = session[V]{owner: owner, value: value, lastSeen: s.clock.Now()}
	if ok && prev.owner == owner {
		return prev.value, true
	}
	var zero V
	return zero, false
}

// GetOrPut returns the owner's session under key, creating it with create
// when there is none. The bool reports whether create ran.
func (s *SessionStore[K, V]) GetOrPut(owner string, key K, create func() V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if sess, ok := s.sessions[key]; ok && sess.owner == owner {
		sess.lastSeen = now
		s.sessions[key] = sess
		return sess.value, false
	}
	value := create()
	s.sessions[key] = session[V]{owner: owner, value: value, lastSeen: now}
	return value, true
}

func (s *SessionStore[K, V]) Get(owner string, key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok || sess.owner != owner {
		var zero V
		return zero, errs.ErrSessionNotFound
	}
	sess.lastSeen = s.clock.Now()
	s.sessions[key] = sess
	return sess.value, nil
}

func (s *SessionStore[K, V]) Delete(owner string, key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok || sess.owner != owner {
		var zero V
		return zero, errs.ErrSessionNotFound
	}
	delete(s.sessions, key)
	return sess.value, nil
}

// Expire removes and returns every session not accessed for longer than ttl.
// Sessions for which inUse reports true are kept and count as accessed now.
// inUse may be nil.
func (s *SessionStore[K, V]) Expire(ttl time.Duration, inUse func(V) bool) []V {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var out []V
	for key, sess := range s.sessions {
		if now.Sub(sess.lastSeen) <= ttl {
			continue
		}
		if inUse != nil && inUse(sess.value) {
			sess.lastSeen = now
			s.sessions[key] = sess
			continue
		}
		out = append(out, sess.value)
		delete(s.sessions, key)
	}
	return out
}

// Drain removes and returns every session, for shutdown.
func (s *SessionStore[K, V]) Drain() []V {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]V, 0, len(s.sessions))
	for key, sess := range s.sessions {
		out = append(out, sess.value)
		delete(s.sessions, key)
	}
	return out
}

func (s *SessionStore[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
