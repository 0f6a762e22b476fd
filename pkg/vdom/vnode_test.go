package vdom

import (
	"context"
	"testing"
)

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttrIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		want bool
	}{
		{"empty attr", Attr{}, true},
		{"attr with key", Attr{Key: "class", Value: "test"}, false},
		{"attr with empty value", Attr{Key: "disabled", Value: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.IsEmpty(); got != tt.want {
				t.Errorf("Attr.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFuncComponent(t *testing.T) {
	var gotProps Props
	var gotChildren []*VNode
	comp := Func(func(props Props, children []*VNode) *VNode {
		gotProps = props
		gotChildren = children
		return Div(Class("test"))
	})

	child := Text("x")
	node, err := comp.Render(context.Background(), Props{"a": 1}, []*VNode{child})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if node == nil || node.Tag != "div" {
		t.Fatalf("Render() = %+v, want div", node)
	}
	if gotProps["a"] != 1 {
		t.Errorf("props[a] = %v, want 1", gotProps["a"])
	}
	if len(gotChildren) != 1 || gotChildren[0] != child {
		t.Errorf("children = %v, want [child]", gotChildren)
	}
}

func TestC(t *testing.T) {
	comp := Func(func(Props, []*VNode) *VNode { return nil })

	t.Run("nil props become empty", func(t *testing.T) {
		node := C(comp, nil)
		if node.Kind != KindComponent {
			t.Fatalf("Kind = %v, want Component", node.Kind)
		}
		if node.Props == nil {
			t.Fatal("Props should not be nil")
		}
	})

	t.Run("key prop sets node key", func(t *testing.T) {
		node := C(comp, Props{KeyProp: "k1"})
		if node.Key != "k1" {
			t.Errorf("Key = %q, want k1", node.Key)
		}
	})

	t.Run("nil children dropped", func(t *testing.T) {
		node := C(comp, nil, nil, Text("a"), nil)
		if len(node.Children) != 1 {
			t.Errorf("Children len = %d, want 1", len(node.Children))
		}
	})
}

type namedComp struct{}

func (namedComp) Render(context.Context, Props, []*VNode) (*VNode, error) { return nil, nil }
func (namedComp) Name() string { return "Fancy" }

type plainComp struct{}

func (*plainComp) Render(context.Context, Props, []*VNode) (*VNode, error) { return nil, nil }

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		comp Component
		want string
	}{
		{"nil", nil, "<nil>"},
		{"named", namedComp{}, "Fancy"},
		{"pointer type", &plainComp{}, "plainComp"},
		{"func", ComponentFunc(nil), "ComponentFunc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.comp); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	if Clone(nil) != nil {
		t.Fatal("Clone(nil) should be nil")
	}

	inner := Span(Text("x"))
	orig := Div(Class("a"), Key("k"), inner)
	cp := Clone(orig)

	if cp == orig {
		t.Fatal("Clone returned the same pointer")
	}
	if cp.Tag != "div" || cp.Key != "k" || cp.Props["class"] != "a" {
		t.Fatalf("Clone lost fields: %+v", cp)
	}
	if cp.Children[0] != inner {
		t.Error("Clone should share child nodes")
	}

	cp.Props["class"] = "b"
	cp.Children[0] = Text("replaced")
	if orig.Props["class"] != "a" {
		t.Error("mutating clone props changed original")
	}
	if orig.Children[0] != inner {
		t.Error("mutating clone children changed original")
	}
}
