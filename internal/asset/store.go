package asset

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store keeps recorded assets in memory for the lifetime of the process.
type Store struct {
	mu    sync.Mutex
	blobs map[Locator][]byte
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{blobs: make(map[Locator][]byte)}
}

// Put registers data and returns its ephemeral locator.
func (s *Store) Put(data []byte) Locator {
	loc := Locator(MemoryScheme + uuid.NewString())

	s.mu.Lock()
	s.blobs[loc] = data
	s.mu.Unlock()
	return loc
}

// Fetch implements Fetcher.
func (s *Store) Fetch(ctx context.Context, loc Locator) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Locator: loc, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[loc]
	if !ok {
		return nil, &FetchError{Locator: loc, Err: ErrNotFound}
	}
	return data, nil
}

// Release drops the backing memory of loc. A second release of the same
// locator returns ErrReleased.
func (s *Store) Release(loc Locator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[loc]; !ok {
		return ErrReleased
	}
	delete(s.blobs, loc)
	return nil
}

// Len returns the number of live assets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
