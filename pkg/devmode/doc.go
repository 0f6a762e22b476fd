// Package devmode implements the developer overlay for overridable regions.
//
// Dev mode is a process-wide, one-way switch. While it is off, Overlay
// returns nodes unchanged; once Activate is called every region rendered
// afterwards is wrapped in a tagged container showing its identifier, and
// every subscriber is notified once. There is no way to switch it off again
// short of restarting the process.
//
// Hub pushes activation to connected browsers over WebSocket so pages that
// are already open re-render with tags. HandleTrigger exposes activation
// over HTTP, and ClientScript binds it to window.__overridableDevMode().
//
// Tests and embedders that need isolation create their own Mode with New and
// bind it to a render context with WithMode.
package devmode
