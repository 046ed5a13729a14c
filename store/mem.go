package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store used in tests and when Mongo is unavailable
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func memKey(userID, key string) string {
	return userID + "/" + key
}

func (s *MemStore) Get(ctx context.Context, userID, key string, out interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[memKey(userID, key)]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal([]byte(raw), out)
}

func (s *MemStore) Set(ctx context.Context, userID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[memKey(userID, key)] = string(raw)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Delete(ctx context.Context, userID, key string) error {
	s.mu.Lock()
	delete(s.data, memKey(userID, key))
	s.mu.Unlock()
	return nil
}
