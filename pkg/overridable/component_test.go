package overridable

import (
	"context"
	"errors"
	"testing"

	"github.com/vango-go/overridable/pkg/vdom"
)

// card renders <section><h2>title</h2>children</section> and fails without a title.
var card = vdom.ComponentFunc(func(_ context.Context, props vdom.Props, children []*vdom.VNode) (*vdom.VNode, error) {
	title, ok := props.String("title")
	if !ok {
		return nil, errors.New("card: title is required")
	}
	return vdom.Section(vdom.H2(vdom.Text(title)), children), nil
})

func TestComponentRendersDefaultOutsideScope(t *testing.T) {
	wrapped := Component("Card", card)

	html := renderHTML(t, context.Background(), vdom.C(wrapped, vdom.Props{"title": "Hi"}, vdom.P(vdom.Text("body"))))
	if html != "<section><h2>Hi</h2><p>body</p></section>" {
		t.Errorf("html = %q", html)
	}
}

func TestComponentRendersReplacementInScope(t *testing.T) {
	wrapped := Component("Card", card)
	replacement := newRecorder("new-card")
	ctx := WithRegistry(context.Background(), Registry{"Card": One(replacement)})

	body := vdom.P(vdom.Text("body"))
	html := renderHTML(t, ctx, vdom.C(wrapped, vdom.Props{"title": "Hi"}, body))

	if html != `<div data-by="new-card"><p>body</p></div>` {
		t.Errorf("html = %q", html)
	}
	assertProps(t, replacement.props, vdom.Props{"title": "Hi"})
	if len(replacement.children) != 1 || replacement.children[0] != body {
		t.Errorf("children = %v, want passed-through body", replacement.children)
	}
}

func TestComponentExpandsList(t *testing.T) {
	wrapped := Component("Card", card)
	ctx := WithRegistry(context.Background(), Registry{"Card": Many(newRecorder("a"), newRecorder("b"))})

	html := renderHTML(t, ctx, vdom.C(wrapped, nil))
	if html != `<div data-by="a"></div><div data-by="b"></div>` {
		t.Errorf("html = %q", html)
	}
}

func TestComponentDefaultErrorsSurface(t *testing.T) {
	wrapped := Component("Card", card)
	_, err := tryRender(context.Background(), vdom.C(wrapped, nil))
	if err == nil || err.Error() == "" {
		t.Fatal("missing title should surface the default's own validation error")
	}
}

func TestComponentNilDefault(t *testing.T) {
	wrapped := Component("Card", nil)

	_, err := tryRender(context.Background(), vdom.C(wrapped, nil))
	if !errors.Is(err, ErrNilComponent) {
		t.Fatalf("err = %v, want ErrNilComponent", err)
	}

	ctx := WithRegistry(context.Background(), Registry{"Card": One(newRecorder("r"))})
	if html := renderHTML(t, ctx, vdom.C(wrapped, nil)); html != `<div data-by="r"></div>` {
		t.Errorf("an override should render even without a default, got %q", html)
	}
}

func TestComponentDoesNotMutateIncomingProps(t *testing.T) {
	wrapped := Component("Card", card)
	props := vdom.Props{"title": "Hi"}

	out, err := wrapped.Render(context.Background(), props, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out.Props["title"] = "changed"
	if props["title"] != "Hi" {
		t.Error("wrapper output shares the caller's props map")
	}
}

func TestComponentMetadata(t *testing.T) {
	wrapped := Component("Card", card)
	if wrapped.ID() != "Card" {
		t.Errorf("ID() = %q", wrapped.ID())
	}
	if wrapped.TrueDefault() == nil {
		t.Error("TrueDefault() should return the wrapped implementation")
	}
	if got := wrapped.Name(); got != "overridable.Component(Card:ComponentFunc)" {
		t.Errorf("Name() = %q", got)
	}
}
