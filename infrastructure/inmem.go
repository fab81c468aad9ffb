package infrastructure

import (
	"sync"

	"handling/domain"
)

type inmemRepository[K comparable, V any] struct {
	mtx  sync.RWMutex
	data map[K]V
}

// NewInmemRepository returns an in-memory implementation of
// domain.Repository. The backing map is guarded by a RW mutex, so a single
// instance may be shared between the RPC handlers and the event consumers.
func NewInmemRepository[K comparable, V any]() domain.Repository[K, V] {
	return &inmemRepository[K, V]{
		data: make(map[K]V),
	}
}

func (r *inmemRepository[K, V]) Store(key K, value V) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.data[key] = value
	return nil
}

func (r *inmemRepository[K, V]) Find(key K) (V, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if v, ok := r.data[key]; ok {
		return v, nil
	}
	var zero V
	return zero, domain.ErrNotFound
}

func (r *inmemRepository[K, V]) FindAll() ([]V, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	vs := make([]V, 0, len(r.data))
	for _, v := range r.data {
		vs = append(vs, v)
	}
	return vs, nil
}
