package vdom

import "testing"

func TestPropsMerge(t *testing.T) {
	base := Props{"a": 1, "b": 2}
	got := base.Merge(Props{"a": 10}, Props{"c": 3}, nil)

	want := Props{"a": 10, "b": 2, "c": 3}
	if len(got) != len(want) {
		t.Fatalf("Merge() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Merge()[%q] = %v, want %v", k, got[k], v)
		}
	}
	if base["a"] != 1 || len(base) != 2 {
		t.Errorf("Merge() modified receiver: %v", base)
	}
}

func TestPropsMergeNilReceiver(t *testing.T) {
	var p Props
	got := p.Merge(Props{"x": "y"})
	if got["x"] != "y" {
		t.Fatalf("Merge() on nil = %v", got)
	}
}

func TestPropsString(t *testing.T) {
	p := Props{"title": "hi", "n": 3}
	if s, ok := p.String("title"); !ok || s != "hi" {
		t.Errorf("String(title) = %q, %v", s, ok)
	}
	if _, ok := p.String("n"); ok {
		t.Error("String(n) should not be ok for int")
	}
	var nilProps Props
	if nilProps.Get("x") != nil {
		t.Error("Get on nil Props should be nil")
	}
}

func TestPropsTakeChildren(t *testing.T) {
	one := Text("one")
	two := Text("two")

	tests := []struct {
		name    string
		props   Props
		wantOK  bool
		wantLen int
	}{
		{"absent", Props{"a": 1}, false, 0},
		{"single node", Props{ChildrenProp: one}, true, 1},
		{"slice", Props{ChildrenProp: []*VNode{one, nil, two}}, true, 2},
		{"explicit nil", Props{ChildrenProp: nil}, true, 0},
		{"wrong type", Props{ChildrenProp: "text"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children, ok := tt.props.TakeChildren()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if len(children) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(children), tt.wantLen)
			}
			if _, still := tt.props[ChildrenProp]; still {
				t.Error("ChildrenProp should be removed")
			}
		})
	}
}
