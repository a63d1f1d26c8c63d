package service

import (
	"sync"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

// Collection owns the session-scoped in-memory contract collection. It is
// mutated only by whole-collection replacement (fetch/refresh) or by a
// single-record field patch after a confirmed store write.
type Collection struct {
	mu        sync.RWMutex
	contracts []model.Contract
	fallback  bool
}

func NewCollection() *Collection {
	return &Collection{}
}

// ReplaceAll swaps in a freshly fetched collection. fallback marks the
// built-in sample set standing in for an unreachable store.
func (s *Collection) ReplaceAll(contracts []model.Contract, fallback bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = contracts
	s.fallback = fallback
}

// All returns a copy of the held collection in stable order.
func (s *Collection) All() []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

func (s *Collection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contracts)
}

// Fallback reports whether the held collection is the built-in sample set.
func (s *Collection) Fallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// Get looks a record up by synthetic ID, falling back to the natural
// contract number as a secondary key.
func (s *Collection) Get(id string) (model.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.contracts[i], true
	}
	return model.Contract{}, false
}

// Patch merges field values into the one record matching id. Returns the
// updated record. A miss leaves the collection untouched.
func (s *Collection) Patch(id string, fields map[model.EditableField]string) (model.Contract, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.Contract{}, false
	}
	for f, v := range fields {
		// callers validate fields up front; an invalid one is skipped
		_ = s.contracts[i].SetField(f, v)
	}
	return s.contracts[i], true
}

// indexOf must be called with the lock held.
func (s *Collection) indexOf(id string) int {
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			return i
		}
	}
	for i := range s.contracts {
		if s.contracts[i].NumContrato == id {
			return i
		}
	}
	return -1
}
