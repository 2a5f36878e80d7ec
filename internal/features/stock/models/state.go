package models

import "sync"

// State holds the latest accepted snapshot and its fingerprint.
// The zero value is the idle state: no snapshot yet.
type State struct {
	mu          sync.RWMutex
	snapshot    *Snapshot
	fingerprint string
}

func NewState() *State {
	return &State{}
}

// Snapshot returns the latest accepted snapshot, if any.
func (s *State) Snapshot() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.snapshot != nil
}

// Accept stores snap unless fingerprint equals the stored one.
// It reports whether snap replaced the previous snapshot.
func (s *State) Accept(snap *Snapshot, fingerprint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot != nil && fingerprint == s.fingerprint {
		return false
	}
	s.snapshot = snap
	s.fingerprint = fingerprint
	return true
}
