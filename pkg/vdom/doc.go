// Package vdom provides the render-tree node model used by overridable.
//
// A render tree is built from VNode values: elements, text, fragments, raw
// HTML and component nodes. Component nodes carry a Component together with
// its input parameters (Props) and children; renderers expand them lazily,
// passing a context.Context that holds ambient values for the subtree.
//
// # Core Types
//
// VNode is the fundamental building block. Props holds attributes for
// elements and input parameters for components. Component is anything that
// renders to a VNode; ComponentFunc adapts a function.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Component nodes are created with C:
//
//	C(Card, Props{"title": "Hello"}, P(Text("body")))
//
// # Scopes
//
// A component that also implements ScopeProvider establishes ambient values
// for everything it renders. This is how override registries are bound to a
// subtree without threading them through intermediate components.
package vdom
