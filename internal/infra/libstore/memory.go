package libstore

import (
	"sync"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
)

// MemoryStore keeps the library in process. It backs the TUI when no
// workspace exists.
type MemoryStore struct {
	mu    sync.Mutex
	lib   domain.Library
	saved bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ ports.LibraryStore = (*MemoryStore)(nil)

func (s *MemoryStore) Load() (domain.Library, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return domain.Library{}, &domain.OpError{Op: "libstore.memory.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return s.lib.Clone(), nil
}

func (s *MemoryStore) Save(lib domain.Library) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lib = lib.Clone()
	s.saved = true
	return nil
}
