package memory

import (
	"fmt"
	"sync"

	"fooddelivery/internal/pkg/errs"
)

type cloner[V any] interface {
	Clone() V
}

// entry guards one aggregate. Writers replace value under mu, so holding mu
// for one key never blocks work on another key.
type entry[V any] struct {
	mu      sync.Mutex
	value   V
	removed bool
}

// store is a keyed collection with a map-level RWMutex for membership and a
// mutex per entry for mutation. Values are cloned on the way in and out.
type store[K comparable, V cloner[V]] struct {
	name string

	mu      sync.RWMutex
	entries map[K]*entry[V]
	keys    []K
}

func newStore[K comparable, V cloner[V]](name string) *store[K, V] {
	return &store[K, V]{name: name, entries: make(map[K]*entry[V])}
}

func (s *store[K, V]) add(key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		return errs.NewValueIsInvalidErrorWithCause(s.name, fmt.Errorf("%v already exists", key))
	}
	s.entries[key] = &entry[V]{value: value.Clone()}
	s.keys = append(s.keys, key)
	return nil
}

func (s *store[K, V]) lookup(key K) (*entry[V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

func (s *store[K, V]) get(key K) (V, error) {
	for {
		var zero V
		e, ok := s.lookup(key)
		if !ok {
			return zero, errs.NewObjectNotFoundError(s.name, key)
		}

		e.mu.Lock()
		if e.removed {
			// Replaced or removed since the lookup; look again.
			e.mu.Unlock()
			continue
		}
		v := e.value.Clone()
		e.mu.Unlock()
		return v, nil
	}
}

// update runs fn on a working copy under the entry lock and publishes the copy
// only when fn succeeds, so a failed fn leaves no partial change behind.
// fn must not call back into the same store.
func (s *store[K, V]) update(key K, fn func(V) error) error {
	for {
		e, ok := s.lookup(key)
		if !ok {
			return errs.NewObjectNotFoundError(s.name, key)
		}

		e.mu.Lock()
		if e.removed {
			e.mu.Unlock()
			continue
		}
		working := e.value.Clone()
		err := fn(working)
		if err == nil {
			e.value = working
		}
		e.mu.Unlock()
		return err
	}
}

// upsert is update that first creates the entry with create() when missing.
func (s *store[K, V]) upsert(key K, create func() (V, error), fn func(V) error) error {
	for {
		e, ok := s.lookup(key)
		if !ok {
			v, err := create()
			if err != nil {
				return err
			}
			s.mu.Lock()
			if _, exists := s.entries[key]; !exists {
				s.entries[key] = &entry[V]{value: v}
				s.keys = append(s.keys, key)
			}
			s.mu.Unlock()
			continue
		}

		e.mu.Lock()
		if e.removed {
			e.mu.Unlock()
			continue
		}
		working := e.value.Clone()
		err := fn(working)
		if err == nil {
			e.value = working
		}
		e.mu.Unlock()
		return err
	}
}

func (s *store[K, V]) remove(key K) error {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
		for i, k := range s.keys {
			if k == key {
				s.keys = append(s.keys[:i], s.keys[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return errs.NewObjectNotFoundError(s.name, key)
	}

	e.mu.Lock()
	e.removed = true
	e.mu.Unlock()
	return nil
}

// list returns clones in insertion order.
func (s *store[K, V]) list() []V {
	s.mu.RLock()
	entries := make([]*entry[V], 0, len(s.keys))
	for _, k := range s.keys {
		entries = append(entries, s.entries[k])
	}
	s.mu.RUnlock()

	out := make([]V, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if !e.removed {
			out = append(out, e.value.Clone())
		}
		e.mu.Unlock()
	}
	return out
}

// replace swaps the whole collection. Every old entry is retired under its
// own lock before the swap: an update holding that lock commits first and is
// then superseded, and one arriving later finds the entry retired and looks
// the key up again in the new collection.
func (s *store[K, V]) replace(keyOf func(V) K, values []V) error {
	entries := make(map[K]*entry[V], len(values))
	keys := make([]K, 0, len(values))
	for _, v := range values {
		k := keyOf(v)
		if _, dup := entries[k]; dup {
			return errs.NewValueIsInvalidErrorWithCause(s.name, fmt.Errorf("%v appears twice", k))
		}
		entries[k] = &entry[V]{value: v.Clone()}
		keys = append(keys, k)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		e.mu.Lock()
		e.removed = true
		e.mu.Unlock()
	}
	s.entries, s.keys = entries, keys
	return nil
}
