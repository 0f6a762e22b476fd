package overridable

import (
	"context"
	"testing"

	"github.com/vango-go/overridable/pkg/render"
	"github.com/vango-go/overridable/pkg/vdom"
)

// recorder is a replacement that remembers what it was rendered with and
// renders <div data-by="name">children</div>.
type recorder struct {
	name     string
	calls    int
	props    vdom.Props
	children []*vdom.VNode
}

func newRecorder(name string) *recorder { return &recorder{name: name} }

func (r *recorder) Render(_ context.Context, props vdom.Props, children []*vdom.VNode) (*vdom.VNode, error) {
	r.calls++
	r.props = props
	r.children = children
	return vdom.Div(vdom.Data("by", r.name), children), nil
}

func (r *recorder) Name() string { return r.name }

func renderHTML(t *testing.T, ctx context.Context, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(ctx, node)
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	return html
}

func expandTree(t *testing.T, ctx context.Context, node *vdom.VNode) *vdom.VNode {
	t.Helper()
	out, err := render.NewRenderer(render.RendererConfig{}).Expand(ctx, node)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	return out
}

func assertProps(t *testing.T, got, want vdom.Props) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("props = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("props[%q] = %v, want %v (props %v)", k, got[k], v, got)
		}
	}
}

func tryRender(ctx context.Context, node *vdom.VNode) (string, error) {
	return render.NewRenderer(render.RendererConfig{}).RenderToString(ctx, node)
}
