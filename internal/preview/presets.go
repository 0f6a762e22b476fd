package preview

import (
	"context"
	"fmt"
	"sort"

	"github.com/vango-go/overridable/internal/config"
	"github.com/vango-go/overridable/pkg/vdom"
)

// PresetFunc builds a replacement from manifest params.
type PresetFunc func(params map[string]any) (vdom.Component, error)

// Catalog maps preset names to builders. It implements
// config.PresetResolver.
type Catalog map[string]PresetFunc

// DefaultCatalog returns the built-in presets:
//
//   - hidden: renders nothing, hiding the extension point
//   - text: renders params.text in place of the default
//   - wrap: wraps the incoming children in a div with params.class
//   - badge: renders params.label (or the incoming label) as a badge
func DefaultCatalog() Catalog {
	return Catalog{
		"hidden": hiddenPreset,
		"text":   textPreset,
		"wrap":   wrapPreset,
		"badge":  badgePreset,
	}
}

// Resolve implements config.PresetResolver.
func (c Catalog) Resolve(preset string, params map[string]any) (vdom.Component, error) {
	build, ok := c[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownPreset, preset)
	}
	return build(params)
}

// Names returns the preset names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hiddenPreset(map[string]any) (vdom.Component, error) {
	return nil, nil
}

func textPreset(params map[string]any) (vdom.Component, error) {
	text, err := stringParam(params, "text", true)
	if err != nil {
		return nil, err
	}
	return &preset{name: "text", render: func(vdom.Props, []*vdom.VNode) *vdom.VNode {
		return vdom.Span(vdom.Class("override-text"), vdom.Text(text))
	}}, nil
}

func wrapPreset(params map[string]any) (vdom.Component, error) {
	class, err := stringParam(params, "class", false)
	if err != nil {
		return nil, err
	}
	if class == "" {
		class = "override-wrap"
	}
	return &preset{name: "wrap", render: func(_ vdom.Props, children []*vdom.VNode) *vdom.VNode {
		return vdom.Div(vdom.Class(class), children)
	}}, nil
}

func badgePreset(params map[string]any) (vdom.Component, error) {
	label, err := stringParam(params, "label", false)
	if err != nil {
		return nil, err
	}
	return &preset{name: "badge", render: func(props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
		text := label
		if incoming, ok := props.String("label"); ok && text == "" {
			text = incoming
		}
		if text == "" {
			text = "override"
		}
		return vdom.Span(vdom.Class("badge"), vdom.Text(text))
	}}, nil
}

func stringParam(params map[string]any, key string, required bool) (string, error) {
	v, ok := params[key]
	if !ok {
		if required {
			return "", fmt.Errorf("missing %q param", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("param %q must be a string, got %T", key, v)
	}
	return s, nil
}

// preset is a named replacement built from the catalog.
type preset struct {
	name   string
	render func(props vdom.Props, children []*vdom.VNode) *vdom.VNode
}

func (p *preset) Render(_ context.Context, props vdom.Props, children []*vdom.VNode) (*vdom.VNode, error) {
	return p.render(props, children), nil
}

func (p *preset) Name() string { return "preset." + p.name }
