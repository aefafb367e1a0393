package cache

import (
	"container/list"
	"sync"
	"time"
)

// Store is a keyed cache with optional TTL and size-based LRU
// eviction. A TTL of zero means entries never expire, which is how
// the dataset cache runs: load once per source, keep for the process
// lifetime, drop only on explicit invalidation.
type Store[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
}

type entry[T any] struct {
	key       string
	data      T
	expiresAt time.Time // zero when the store has no TTL
}

// New creates a Store holding at most maxSize entries. ttl <= 0
// disables expiry.
func New[T any](maxSize int, ttl time.Duration) *Store[T] {
	return &Store[T]{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get retrieves a value, refreshing its recency.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	elem, ok := s.items[key]
	if !ok {
		return zero, false
	}
	e := elem.Value.(*entry[T])
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		s.removeElement(elem)
		return zero, false
	}
	s.lru.MoveToFront(elem)
	return e.data, true
}

// Set stores a value, evicting the least recently used entry when the
// store is over capacity.
func (s *Store[T]) Set(key string, data T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry[T]{key: key, data: data}
	if s.ttl > 0 {
		e.expiresAt = time.Now().Add(s.ttl)
	}
	if elem, ok := s.items[key]; ok {
		elem.Value = e
		s.lru.MoveToFront(elem)
		return
	}
	s.items[key] = s.lru.PushFront(e)
	if s.lru.Len() > s.maxSize {
		if oldest := s.lru.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}
}

// Delete removes a key.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[key]; ok {
		s.removeElement(elem)
	}
}

func (s *Store[T]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[T])
	delete(s.items, e.key)
	s.lru.Remove(elem)
}

// CleanExpired removes expired entries and returns how many were
// dropped. A no-TTL store never has anything to clean.
func (s *Store[T]) CleanExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl <= 0 {
		return 0
	}
	now := time.Now()
	var stale []*list.Element
	for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
		if e := elem.Value.(*entry[T]); now.After(e.expiresAt) {
			stale = append(stale, elem)
		}
	}
	for _, elem := range stale {
		s.removeElement(elem)
	}
	return len(stale)
}

// Size returns the current number of entries.
func (s *Store[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
