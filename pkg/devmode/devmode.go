package devmode

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/vango-go/overridable/pkg/vdom"
)

// Class names emitted by Overlay.
const (
	OverlayClass = "overridable-dev"
	TagClass     = "overridable-dev-tag"
)

// Mode is a one-way dev-mode switch. Once activated it stays active for the
// life of the process; there is no deactivation.
type Mode struct {
	active atomic.Bool
	logger *slog.Logger

	mu        sync.Mutex
	listeners map[uint64]func()
	nextID    uint64
}

// Option configures a Mode.
type Option func(*Mode)

// WithLogger sets the logger used to report activation.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mode) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates an inactive Mode.
func New(opts ...Option) *Mode {
	m := &Mode{
		logger:    slog.Default().With("component", "devmode"),
		listeners: make(map[uint64]func()),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// std is the process-wide mode used when no Mode is bound to a context.
var std = New()

// Default returns the process-wide Mode.
func Default() *Mode { return std }

// Activate turns on the process-wide dev mode. See Mode.Activate.
func Activate() bool { return std.Activate() }

// Active reports whether the process-wide dev mode is on.
func Active() bool { return std.Active() }

// Subscribe registers fn with the process-wide Mode. See Mode.Subscribe.
func Subscribe(fn func()) (unsubscribe func()) { return std.Subscribe(fn) }

// Active reports whether dev mode is on.
func (m *Mode) Active() bool {
	return m.active.Load()
}

// Activate turns dev mode on and notifies every subscriber exactly once.
// It returns false if dev mode was already active.
func (m *Mode) Activate() bool {
	if !m.active.CompareAndSwap(false, true) {
		return false
	}
	m.logger.Info("dev mode activated")

	m.mu.Lock()
	listeners := make([]func(), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return true
}

// Subscribe registers fn to be called when dev mode is activated. If dev
// mode is already active fn is not called. The returned function removes
// the subscription and is safe to call more than once.
func (m *Mode) Subscribe(fn func()) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

// Subscribers returns the number of registered listeners.
func (m *Mode) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

// Overlay tags node with the region identifier when dev mode is active and
// returns node unchanged otherwise. An empty region still gets a tag so that
// extension points without content can be found on the page.
func (m *Mode) Overlay(id string, node *vdom.VNode) *vdom.VNode {
	if m == nil || !m.Active() {
		return node
	}
	return vdom.Div(
		vdom.Class(OverlayClass),
		vdom.Data("overridable-id", id),
		vdom.Span(vdom.Class(TagClass), vdom.Text(id)),
		node,
	)
}

type modeKey struct{}

// WithMode binds m to ctx. Overlays rendered under ctx consult m instead of
// the process-wide Mode.
func WithMode(ctx context.Context, m *Mode) context.Context {
	return context.WithValue(ctx, modeKey{}, m)
}

// FromContext returns the Mode bound to ctx, or the process-wide Mode.
func FromContext(ctx context.Context) *Mode {
	if ctx != nil {
		if m, ok := ctx.Value(modeKey{}).(*Mode); ok && m != nil {
			return m
		}
	}
	return std
}
