package overridable

import (
	"context"

	"github.com/vango-go/overridable/pkg/vdom"
)

type registryKey struct{}

// WithRegistry binds reg to ctx. Regions and wrappers rendered under the
// returned context resolve against reg only; an outer registry is hidden,
// not merged.
func WithRegistry(ctx context.Context, reg Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, reg)
}

// FromContext returns the registry bound to ctx, or nil.
func FromContext(ctx context.Context) Registry {
	if ctx == nil {
		return nil
	}
	reg, _ := ctx.Value(registryKey{}).(Registry)
	return reg
}

// provider is a vdom.ScopeProvider that binds a registry for its children.
type provider struct {
	registry func() Registry
}

// Provider returns a node that renders children with reg as the ambient
// registry.
func Provider(reg Registry, children ...*vdom.VNode) *vdom.VNode {
	return vdom.C(&provider{registry: func() Registry { return reg }}, nil, children...)
}

// Scope implements vdom.ScopeProvider.
func (p *provider) Scope(ctx context.Context) context.Context {
	return WithRegistry(ctx, p.registry())
}

// Render implements vdom.Component.
func (p *provider) Render(_ context.Context, _ vdom.Props, children []*vdom.VNode) (*vdom.VNode, error) {
	return vdom.Fragment(children), nil
}

// Name implements vdom.Named.
func (p *provider) Name() string { return "overridable.Provider" }
