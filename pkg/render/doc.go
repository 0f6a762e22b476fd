// Package render provides server-side rendering of vdom trees to HTML.
//
// The renderer expands component nodes as it walks the tree, passing each
// component a context.Context. Components that implement vdom.ScopeProvider
// replace that context for their subtree, which is how ambient values such
// as override registries reach deeply nested components.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(ctx, node)
//
// To stream HTML to a writer:
//
//	err := renderer.RenderToWriter(ctx, w, node)
//
// # Full Page Rendering
//
//	page := render.PageData{Body: bodyNode, Title: "My Page"}
//	err := renderer.RenderPage(ctx, w, page)
//
// # Errors
//
// The first error returned by a component aborts the render pass and is
// returned wrapped with the component's display name.
//
// # Tracing
//
// Every RenderToWriter call is recorded as an OpenTelemetry span using the
// global tracer provider.
//
// # Security
//
// All text content is escaped by default to prevent XSS attacks.
// Raw HTML can be inserted using KindRaw nodes, but should only be
// used with trusted content.
package render
