package history

import (
	"sync"
	"time"
)

// DefaultSession is the session key used when a request names none,
// matching the default chat of the original interface.
const DefaultSession = "DefaultChat"

// Record is one completed translation. Immutable once created.
type Record struct {
	Original       string    `json:"original"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	Translated     string    `json:"translation"`
	CreatedAt      time.Time `json:"created_at"`
}

// Store maps session identifiers to ordered translation records. It lives
// for the lifetime of the process; entries are never removed. Appends are
// serialized per key so concurrent sessions stay isolated.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]Record
}

func NewStore() *Store {
	return &Store{sessions: make(map[string][]Record)}
}

// Append adds a record to the session's history, creating the session on
// first use.
func (s *Store) Append(session string, r Record) {
	if session == "" {
		session = DefaultSession
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session] = append(s.sessions[session], r)
}

// Records returns a copy of the session's history in append order.
func (s *Store) Records(session string) []Record {
	if session == "" {
		session = DefaultSession
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.sessions[session]
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Sessions lists the known session identifiers.
func (s *Store) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.sessions))
	for name := range s.sessions {
		names = append(names, name)
	}
	return names
}
