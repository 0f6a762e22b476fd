package overridable

import (
	"context"

	"github.com/vango-go/overridable/pkg/vdom"
)

// Extra supplies the parameters Parametrize injects.
type Extra interface {
	params(incoming vdom.Props) vdom.Props
}

// Params is a fixed set of injected parameters.
type Params vdom.Props

func (p Params) params(vdom.Props) vdom.Props { return vdom.Props(p) }

// ParamsFunc computes injected parameters from the incoming ones. It is
// called on every render with a copy of the incoming parameters.
type ParamsFunc func(incoming vdom.Props) vdom.Props

func (f ParamsFunc) params(incoming vdom.Props) vdom.Props { return f(incoming) }

// Parametrized renders a target component with injected parameters.
type Parametrized struct {
	target vdom.Component
	extra  Extra
}

// Parametrize returns a component that renders target with extra merged
// over the incoming parameters; extra wins on key collision. If extra holds
// vdom.ChildrenProp its value replaces the children, otherwise children pass
// through.
//
// If target is a Defaulter, such as a wrapper from Component, the original
// implementation is rendered directly and the wrapper's lookup is skipped.
// This makes it safe to register a parametrized wrapper under the wrapper's
// own identifier.
func Parametrize(target vdom.Component, extra Extra) *Parametrized {
	if d, ok := target.(Defaulter); ok {
		target = d.TrueDefault()
	}
	return &Parametrized{target: target, extra: extra}
}

// Target returns the component that is rendered.
func (p *Parametrized) Target() vdom.Component { return p.target }

// Render implements vdom.Component.
func (p *Parametrized) Render(_ context.Context, props vdom.Props, children []*vdom.VNode) (*vdom.VNode, error) {
	if p.target == nil {
		return nil, ErrNilComponent
	}

	var extra vdom.Props
	if p.extra != nil {
		extra = p.extra.params(props.Clone())
	}

	merged := props.Merge(extra)
	if _, ok := extra[vdom.ChildrenProp]; ok {
		children, _ = merged.TakeChildren()
	}
	return vdom.C(p.target, merged, children...), nil
}

// Name implements vdom.Named.
func (p *Parametrized) Name() string {
	return "overridable.Parametrize(" + vdom.DisplayName(p.target) + ")"
}
