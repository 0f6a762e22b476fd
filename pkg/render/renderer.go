package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-go/overridable/pkg/vdom"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for render spans.
const defaultTracerName = "overridable/render"

// MaxDepth bounds component nesting to catch components that render themselves.
const MaxDepth = 512

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// TracerName is the OpenTelemetry tracer used for render spans.
	// Defaults to "overridable/render".
	TracerName string
}

// Renderer handles server-side rendering of VNode trees to HTML.
//
// A Renderer is not safe for concurrent use; create one per render pass.
type Renderer struct {
	config     RendererConfig
	tracer     trace.Tracer
	components int
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}
	return &Renderer{
		config: config,
		tracer: otel.Tracer(config.TracerName),
	}
}

// RenderToString renders a VNode tree to a complete HTML string.
func (r *Renderer) RenderToString(ctx context.Context, node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(ctx, &buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
//
// Component nodes are expanded with ctx, or with the context returned by the
// nearest enclosing vdom.ScopeProvider. The first component error aborts the
// pass; output already written to w is not rolled back.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, node *vdom.VNode) error {
	ctx, span := r.tracer.Start(ctx, "render.RenderToWriter")
	defer span.End()

	r.components = 0
	err := r.renderNode(ctx, w, node, 0, 0)
	span.SetAttributes(attribute.Int("render.components", r.components))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Expand renders every component node in the tree and returns the resulting
// tree of elements, text, raw and fragment nodes. Useful for inspecting what
// a tree resolves to without producing HTML.
func (r *Renderer) Expand(ctx context.Context, node *vdom.VNode) (*vdom.VNode, error) {
	return r.expand(ctx, node, 0)
}

func (r *Renderer) expand(ctx context.Context, node *vdom.VNode, nesting int) (*vdom.VNode, error) {
	if node == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if node.Kind == vdom.KindComponent {
		out, childCtx, err := r.renderComponentOutput(ctx, node, nesting)
		if err != nil {
			return nil, err
		}
		return r.expand(childCtx, out, nesting+1)
	}
	out := vdom.Clone(node)
	for i, child := range node.Children {
		expanded, err := r.expand(ctx, child, nesting)
		if err != nil {
			return nil, err
		}
		out.Children[i] = expanded
	}
	out.Children = dropNil(out.Children)
	return out, nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(ctx context.Context, w io.Writer, node *vdom.VNode, depth, nesting int) error {
	if node == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(ctx, w, node, depth, nesting)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderFragment(ctx, w, node, depth, nesting)
	case vdom.KindComponent:
		return r.renderComponent(ctx, w, node, depth, nesting)
	case vdom.KindRaw:
		return r.renderRaw(w, node)
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(ctx context.Context, w io.Writer, node *vdom.VNode, depth, nesting int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	// Self-closing check for void elements
	if isVoidElement(tag) {
		return r.newline(w)
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if hasBlockChildren {
		if err := r.newline(w); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := r.renderNode(ctx, w, child, depth+1, nesting); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	return r.newline(w)
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, escapeHTML(node.Text))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(ctx context.Context, w io.Writer, node *vdom.VNode, depth, nesting int) error {
	for _, child := range node.Children {
		if err := r.renderNode(ctx, w, child, depth, nesting); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent renders a component by rendering its output VNode.
func (r *Renderer) renderComponent(ctx context.Context, w io.Writer, node *vdom.VNode, depth, nesting int) error {
	out, childCtx, err := r.renderComponentOutput(ctx, node, nesting)
	if err != nil {
		return err
	}
	return r.renderNode(childCtx, w, out, depth, nesting+1)
}

// renderComponentOutput invokes the node's component and returns its output
// along with the context its output must be rendered in.
func (r *Renderer) renderComponentOutput(ctx context.Context, node *vdom.VNode, nesting int) (*vdom.VNode, context.Context, error) {
	if node.Comp == nil {
		return nil, ctx, nil
	}
	if nesting >= MaxDepth {
		return nil, ctx, fmt.Errorf("render: component nesting exceeds %d at %s", MaxDepth, vdom.DisplayName(node.Comp))
	}
	r.components++

	if sp, ok := node.Comp.(vdom.ScopeProvider); ok {
		ctx = sp.Scope(ctx)
	}

	out, err := node.Comp.Render(ctx, node.Props, node.Children)
	if err != nil {
		return nil, ctx, fmt.Errorf("render %s: %w", vdom.DisplayName(node.Comp), err)
	}
	// Component output may be shared between renders; key a copy.
	if out != nil && out.Key == "" && node.Key != "" {
		out = vdom.Clone(out)
		out.Key = node.Key
	}
	return out, ctx, nil
}

// renderRaw renders raw HTML without escaping.
func (r *Renderer) renderRaw(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, node.Text)
	return err
}

// renderAttributes renders all attributes for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if node.Props == nil {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Skip internal props
		if strings.HasPrefix(key, "_") || key == vdom.KeyProp || key == vdom.ChildrenProp {
			continue
		}

		if key == "className" {
			key = "class"
		}

		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue != "" {
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
				return err
			}
		}
	}

	return nil
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case fmt.Stringer:
		return v.String()
	default:
		// Functions, nodes and other structured values are not attributes.
		return ""
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	if depth == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	return err
}

// newline ends a line in pretty mode.
func (r *Renderer) newline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

func dropNil(nodes []*vdom.VNode) []*vdom.VNode {
	out := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
