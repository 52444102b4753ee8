// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package store models the transport collaborator's result cache: a
// bounded, thread-safe map from an opaque result identifier to the raw
// binary phi bytes produced by wire.EncodePhi (spec section 6 and 9). The
// solver and wire packages have no knowledge of this type; it exists purely
// so a transport layer has somewhere explicit to keep results instead of
// reaching for an ambient singleton.
package store

import (
	"fmt"
	"sync"
)

// Store is a bounded, thread-safe map from result id to raw phi bytes.
// Insertion beyond Capacity evicts the oldest surviving entry (FIFO), the
// simplest eviction policy that satisfies "evicts beyond a bounded number
// of retained results" without pulling in a cache library (no cache library
// appears anywhere in the retrieved pack; see DESIGN.md).
type Store struct {
	mu       sync.Mutex
	capacity int
	seq      uint64
	order    []string
	data     map[string][]byte
}

// New returns a Store retaining at most capacity results. capacity <= 0 is
// clamped to 1.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = 1
	}
	return &Store{
		capacity: capacity,
		data:     make(map[string][]byte),
	}
}

// Put stores bytes under a freshly minted id and returns it, evicting the
// oldest entry if the store is at capacity.
func (s *Store) Put(bytes []byte) (id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id = fmt.Sprintf("r%d", s.seq)
	s.data[id] = bytes
	s.order = append(s.order, id)

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.data, oldest)
	}
	return id
}

// Get returns the bytes stored under id, and whether id was found.
func (s *Store) Get(id string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[id]
	return b, ok
}

// Len returns the number of results currently retained.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
