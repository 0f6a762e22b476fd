package overridable

import (
	"context"
	"fmt"

	"github.com/vango-go/overridable/pkg/vdom"
)

// Defaulter is implemented by wrappers that keep a reference to the
// implementation they wrap. Parametrize uses it to target the original
// implementation instead of the wrapper's own lookup.
type Defaulter interface {
	TrueDefault() vdom.Component
}

// Wrapped is a component-level override point created by Component.
type Wrapped struct {
	id  string
	def vdom.Component
}

// Component makes a whole component overridable under id. The returned
// wrapper renders the registry's replacement for id when there is one, and
// def otherwise, passing parameters and children through unchanged.
//
//	var Card = overridable.Component("Card", vdom.ComponentFunc(renderCard))
func Component(id string, def vdom.Component) *Wrapped {
	return &Wrapped{id: id, def: def}
}

// ID returns the identifier the wrapper resolves.
func (w *Wrapped) ID() string { return w.id }

// TrueDefault implements Defaulter.
func (w *Wrapped) TrueDefault() vdom.Component { return w.def }

// Render implements vdom.Component.
func (w *Wrapped) Render(ctx context.Context, props vdom.Props, children []*vdom.VNode) (*vdom.VNode, error) {
	if entry, ok := FromContext(ctx).Lookup(w.id); ok {
		return substitute(ctx, siteComponent, w.id, entry, props.Clone(), children), nil
	}
	if w.def == nil {
		observe(ctx, siteComponent, w.id, outcomeError)
		return nil, fmt.Errorf("component %q: %w", w.id, ErrNilComponent)
	}
	observe(ctx, siteComponent, w.id, outcomeDefault)
	return vdom.C(w.def, props.Clone(), children...), nil
}

// Name implements vdom.Named. It is used for diagnostics only.
func (w *Wrapped) Name() string {
	return "overridable.Component(" + w.id + ":" + vdom.DisplayName(w.def) + ")"
}
