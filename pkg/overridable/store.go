package overridable

import (
	"log/slog"
	"sync"

	"github.com/vango-go/overridable/pkg/vdom"
)

// Store is a mutable override table shared by a whole process.
//
// Construct it at startup, fill it from configuration or init code, and bind
// it to a render tree with Provider. Clear exists for test isolation; in
// production a store accumulates for the life of the process.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used to report store mutations at debug level.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		entries: make(map[string]Entry),
		logger:  slog.Default().With("component", "overridable_store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultStore is the process-wide store for applications that do not wire
// their own.
var DefaultStore = NewStore()

// Add sets the single replacement for id, replacing any previous entry.
func (s *Store) Add(id string, r vdom.Component) {
	s.mu.Lock()
	s.entries[id] = One(r)
	s.mu.Unlock()

	s.logger.Debug("override added", "id", id, "replacement", vdom.DisplayName(r))
}

// Append adds r to the list of replacements for id. If the current entry is
// a single replacement it is dropped and the list starts empty.
func (s *Store) Append(id string, r vdom.Component) {
	s.mu.Lock()
	e := s.entries[id].with(r)
	s.entries[id] = e
	s.mu.Unlock()

	s.logger.Debug("override appended", "id", id, "replacement", vdom.DisplayName(r), "count", e.Len())
}

// Get returns the entry for id.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

// GetAll returns a snapshot of the store. Later mutations of the store do
// not affect the returned registry.
func (s *Store) GetAll() Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Registry(s.entries).Clone()
}

// Len returns the number of identifiers in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	n := len(s.entries)
	s.entries = make(map[string]Entry)
	s.mu.Unlock()

	s.logger.Debug("overrides cleared", "removed", n)
}

// Provider returns a node that renders children with a snapshot of the
// store as the ambient registry. The snapshot is taken each time the node is
// rendered, so store changes apply from the next render pass.
func (s *Store) Provider(children ...*vdom.VNode) *vdom.VNode {
	return vdom.C(&provider{registry: s.GetAll}, nil, children...)
}
