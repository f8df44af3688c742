package memory

import (
	"context"
	"sync"
)

// KVStore - хранилище ключ-значение в памяти. Используется, когда postgres выключен, и в тестах.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// Read - значение по ключу; ok=false, если ключа нет.
func (s *KVStore) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

// Write - записать значение (перезаписывает целиком).
func (s *KVStore) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete - удалить ключ; отсутствие ключа не ошибка.
func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
