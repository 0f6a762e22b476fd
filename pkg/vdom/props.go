package vdom

const (
	// KeyProp is the prop that sets a node's reconciliation key.
	KeyProp = "key"

	// ChildrenProp lets a parameter set carry a children override.
	// Its value is a *VNode or []*VNode.
	ChildrenProp = "children"
)

// Props holds attributes and component input parameters.
type Props map[string]any

// Clone returns a shallow copy of p. The copy of a nil map is an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a new Props containing p overlaid with each of the given
// sets in order. On key collision the later set wins. p is not modified.
func (p Props) Merge(overlays ...Props) Props {
	out := p.Clone()
	for _, o := range overlays {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// Get returns the value for key, or nil.
func (p Props) Get(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// String returns the value for key when it is a string.
func (p Props) String(key string) (string, bool) {
	s, ok := p.Get(key).(string)
	return s, ok
}

// TakeChildren removes ChildrenProp from p and returns its value as a node
// slice. ok is false when p has no ChildrenProp entry.
func (p Props) TakeChildren() (children []*VNode, ok bool) {
	v, ok := p[ChildrenProp]
	if !ok {
		return nil, false
	}
	delete(p, ChildrenProp)
	switch c := v.(type) {
	case *VNode:
		if c == nil {
			return nil, true
		}
		return []*VNode{c}, true
	case []*VNode:
		return compact(c), true
	}
	return nil, true
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
