package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/monitoring"
	"github.com/electron-shaders/sc2002-proj/pkg/observer"
)

// Record is any entity a store can own. Stores stamp the generated ID onto
// the entity on insertion so lookups through the entity match the store key.
type Record interface {
	RecordID() string
	SetRecordID(id string)
}

// Hook builds the notification a store publishes after an addition or
// removal. Returning false suppresses the notification.
type Hook[T Record] func(id string, rec T) (observer.Notification, bool)

// Store is an in-memory keyed collection of one entity type with monotonic,
// prefix-formatted ID generation. IDs are never reused: removing a record
// does not decrement the counter. The store holds the canonical instance of
// each entity, so repeated lookups return the same pointer and per-entity
// subscriber sets survive re-fetching.
type Store[T Record] struct {
	observer.Publisher
	mu       sync.RWMutex
	name     string
	prefix   func(rec T) string
	width    int
	nextID   int
	records  map[string]T
	log      *logger.Logger
	onAdd    Hook[T]
	onRemove Hook[T]
}

// New creates a store whose IDs are prefix + a zero-padded counter of the
// given width. The hooks may be nil for silent stores.
func New[T Record](name, prefix string, width int, log *logger.Logger, onAdd, onRemove Hook[T]) *Store[T] {
	return NewWithPrefixFunc[T](name, func(T) string { return prefix }, width, log, onAdd, onRemove)
}

// NewWithPrefixFunc creates a store whose ID prefix depends on the record,
// for collections mixing roles with distinct prefixes.
func NewWithPrefixFunc[T Record](name string, prefix func(rec T) string, width int, log *logger.Logger, onAdd, onRemove Hook[T]) *Store[T] {
	return &Store[T]{
		name:     name,
		prefix:   prefix,
		width:    width,
		records:  make(map[string]T),
		log:      log,
		onAdd:    onAdd,
		onRemove: onRemove,
	}
}

// Add assigns a fresh ID, stores the record under it, stamps the ID onto the
// record, and notifies store subscribers. Returns the assigned ID.
func (s *Store[T]) Add(rec T) string {
	s.mu.Lock()
	s.nextID++
	id := fmt.Sprintf("%s%0*d", s.prefix(rec), s.width, s.nextID)
	s.records[id] = rec
	s.mu.Unlock()

	rec.SetRecordID(id)
	if s.log != nil {
		s.log.StoreOperation(s.name, "add", id)
	}
	if s.onAdd != nil {
		if n, ok := s.onAdd(id, rec); ok {
			monitoring.RecordNotificationPublished(s.name)
			s.Publish(n)
		}
	}
	return id
}

// Remove deletes the record with the given ID and notifies store subscribers.
// No-op if the ID is absent. The counter is not decremented.
func (s *Store[T]) Remove(id string) {
	s.mu.Lock()
	rec, ok := s.records[id]
	if ok {
		delete(s.records, id)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	if s.log != nil {
		s.log.StoreOperation(s.name, "remove", id)
	}
	if s.onRemove != nil {
		if n, ok := s.onRemove(id, rec); ok {
			monitoring.RecordNotificationPublished(s.name)
			s.Publish(n)
		}
	}
}

// Get returns the record with the given ID. The boolean is false when the ID
// is unknown; callers translate that into their own domain error.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	return rec, ok
}

// Update applies a partial update to the stored record. Returns false when
// the ID is unknown. The record's own locking serializes the mutation.
func (s *Store[T]) Update(id string, apply func(rec T)) bool {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	apply(rec)
	if s.log != nil {
		s.log.StoreOperation(s.name, "update", id)
	}
	return true
}

// List returns a snapshot of all records in arbitrary order. Callers needing
// a stable order sort explicitly.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Put inserts a record under a caller-supplied ID, advancing the counter past
// the ID's numeric suffix so generated IDs never collide with loaded ones.
// Used by the seed loader only.
func (s *Store[T]) Put(id string, rec T) {
	s.mu.Lock()
	s.records[id] = rec
	if n, err := strconv.Atoi(strings.TrimPrefix(id, s.prefix(rec))); err == nil && n > s.nextID {
		s.nextID = n
	}
	s.mu.Unlock()
	rec.SetRecordID(id)
}
