package vdom

import (
	"context"
	"fmt"
	"reflect"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
//
// For KindComponent nodes, Props are the component's input parameters and
// Children are passed to the component as its children value.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes, or component input parameters
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Component is anything that can render to a VNode.
//
// ctx carries ambient values for the subtree being rendered. Render must not
// retain props or children beyond the call.
type Component interface {
	Render(ctx context.Context, props Props, children []*VNode) (*VNode, error)
}

// ScopeProvider is implemented by components that establish ambient values
// for their subtree. Renderers call Scope before rendering the component's
// output and use the returned context for every descendant.
type ScopeProvider interface {
	Component
	Scope(ctx context.Context) context.Context
}

// Named is implemented by components that report a diagnostic name.
type Named interface {
	Name() string
}

// ComponentFunc adapts a render function to the Component interface.
type ComponentFunc func(ctx context.Context, props Props, children []*VNode) (*VNode, error)

// Render implements Component.
func (f ComponentFunc) Render(ctx context.Context, props Props, children []*VNode) (*VNode, error) {
	return f(ctx, props, children)
}

// Func creates a component from a render function that needs neither
// ambient values nor error reporting.
func Func(render func(props Props, children []*VNode) *VNode) Component {
	return ComponentFunc(func(_ context.Context, props Props, children []*VNode) (*VNode, error) {
		return render(props, children), nil
	})
}

// C creates a component node rendering comp with the given input parameters
// and children. A nil props map is replaced with an empty one.
func C(comp Component, props Props, children ...*VNode) *VNode {
	if props == nil {
		props = Props{}
	}
	node := &VNode{
		Kind:     KindComponent,
		Comp:     comp,
		Props:    props,
		Children: compact(children),
	}
	if k, ok := props[KeyProp].(string); ok {
		node.Key = k
	}
	return node
}

// DisplayName returns a human readable name for a component, used only in
// diagnostics and dev-mode output.
func DisplayName(c Component) string {
	if c == nil {
		return "<nil>"
	}
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return fmt.Sprintf("%T", c)
	}
	return t.Name()
}

// Clone returns a shallow structural copy of node: a new VNode with its own
// Props map and Children slice. Child nodes themselves are shared.
func Clone(node *VNode) *VNode {
	if node == nil {
		return nil
	}
	out := *node
	out.Props = node.Props.Clone()
	if node.Children != nil {
		out.Children = make([]*VNode, len(node.Children))
		copy(out.Children, node.Children)
	}
	return &out
}

// compact drops nil entries without allocating when there are none.
func compact(nodes []*VNode) []*VNode {
	for i, n := range nodes {
		if n == nil {
			out := make([]*VNode, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			for _, m := range nodes[i+1:] {
				if m != nil {
					out = append(out, m)
				}
			}
			return out
		}
	}
	return nodes
}
