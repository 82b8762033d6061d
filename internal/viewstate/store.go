// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewstate

import "sync"

// Listener receives a snapshot of the state after every update.
type Listener func(ViewState)

// Store is a mutex guarded [ViewState] with change subscriptions.
type Store struct {
	mu        sync.RWMutex
	state     ViewState
	listeners map[int]Listener
	nextID    int
}

// NewStore returns a store for recordID. The record id never changes for the
// lifetime of the store.
func NewStore(recordID string) *Store {
	return &Store{
		state:     ViewState{RecordID: recordID},
		listeners: make(map[int]Listener),
	}
}

// Get returns a snapshot of the current state.
func (s *Store) Get() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies fn to the state and notifies listeners with the result.
// Listeners run after the lock is released.
func (s *Store) Update(fn func(*ViewState)) ViewState {
	s.mu.Lock()
	recordID := s.state.RecordID
	fn(&s.state)
	s.state.RecordID = recordID
	snapshot := s.state

	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}

	return snapshot
}

// Subscribe registers l and returns a func that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}
