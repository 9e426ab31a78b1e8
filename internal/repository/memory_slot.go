package repository

import (
	"context"
	"sync"

	"catalog_service/internal/domain"
)

type memorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySlot returns a process-local slot. Nothing survives a restart.
func NewMemorySlot() domain.Slot {
	return &memorySlot{values: make(map[string]string)}
}

func (s *memorySlot) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memorySlot) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memorySlot) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
