// Package preview serves a demo page whose extension points are resolved
// against an override store, so that a manifest can be tried out in a
// browser.
//
// The page is rendered on every request, so overrides added to the store
// while the server runs show up on the next reload. Activating dev mode
// (POST /_overridable/devmode) tags every region with its identifier and
// tells connected pages to reload.
//
// Routes:
//
//	GET  /                     demo page
//	GET  /overrides            store contents as JSON
//	GET  /healthz              liveness probe
//	GET  /metrics              Prometheus metrics (when enabled)
//	POST /_overridable/devmode activate dev mode
//	GET  /_overridable/ws      dev-mode WebSocket
package preview
