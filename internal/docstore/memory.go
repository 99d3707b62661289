package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process Store used for tests and local development.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, collection, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *MemoryStore) Exists(_ context.Context, collection, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.collections[collection][key]
	return ok, nil
}

func (s *MemoryStore) Insert(_ context.Context, collection, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string][]byte)
		s.collections[collection] = coll
	}
	if _, taken := coll[key]; taken {
		return ErrKeyExists
	}
	coll[key] = cloneDoc(doc)
	return nil
}

func (s *MemoryStore) Save(_ context.Context, collection, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string][]byte)
		s.collections[collection] = coll
	}
	coll[key] = cloneDoc(doc)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.collections[collection]
	if _, ok := coll[key]; !ok {
		return ErrKeyNotFound
	}
	delete(coll, key)
	return nil
}

func (s *MemoryStore) FindByField(_ context.Context, collection, field, value string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([][]byte, 0)
	for _, doc := range s.collections[collection] {
		if fieldEquals(doc, field, value) {
			results = append(results, cloneDoc(doc))
		}
	}
	return results, nil
}

func cloneDoc(doc []byte) []byte {
	out := make([]byte, len(doc))
	copy(out, doc)
	return out
}

// fieldEquals reports whether the document's top-level field equals the
// given value after string conversion.
func fieldEquals(doc []byte, field, value string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return false
	}
	raw, ok := fields[field]
	if !ok {
		return false
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str == value
	}
	return string(raw) == value
}
