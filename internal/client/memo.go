package client

import (
	"context"
	"sync"
)

// memo keeps the first successful result of a lookup. The lock is not held
// while fetching, so concurrent first calls may fetch more than once.
type memo[T any] struct {
	mu    sync.Mutex
	value T
	ok    bool
}

func (m *memo[T]) get(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	m.mu.Lock()
	if m.ok {
		value := m.value
		m.mu.Unlock()

		return value, nil
	}
	m.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		var zero T

		return zero, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ok {
		m.value = value
		m.ok = true
	}

	return m.value, nil
}
