// Package session holds the per-chat staleness state: the timestamp of
// the most recently dispatched request and of the most recently
// delivered reply. Timestamps come from time.Now(), so comparisons use
// the monotonic clock.
package session

import (
	"sync"
	"time"
)

// Store keeps one Session per Telegram chat for the lifetime of the
// process. Sessions are created lazily on first use and never evicted.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: map[int64]*Session{}}
}

func (s *Store) Get(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess
	}
	sess := &Session{}
	s.sessions[chatID] = sess
	return sess
}

type Session struct {
	mu            sync.Mutex
	lastRequestAt time.Time
	lastSuccessAt time.Time
}

// BeginRequest records t as the newest request for this chat. The set
// is unconditional: ordering is enforced by comparison in
// SupersededSince, not by clamping here.
func (s *Session) BeginRequest(t time.Time) {
	s.mu.Lock()
	s.lastRequestAt = t
	s.mu.Unlock()
}

// SupersededSince reports whether a newer request or a newer success
// was recorded after t. Strictly after: equal timestamps are not
// considered stale.
func (s *Session) SupersededSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequestAt.After(t) || s.lastSuccessAt.After(t)
}

// MarkSuccess records that the request started at t produced a
// delivered reply. Callers pass the original request timestamp, not
// the completion time.
func (s *Session) MarkSuccess(t time.Time) {
	s.mu.Lock()
	s.lastSuccessAt = t
	s.mu.Unlock()
}
