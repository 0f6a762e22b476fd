package devmode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vango-go/overridable/pkg/vdom"
)

func TestActivateIsOneWayAndNotifiesOnce(t *testing.T) {
	m := New()
	calls := 0
	m.Subscribe(func() { calls++ })

	if m.Active() {
		t.Fatal("new mode should be inactive")
	}
	if !m.Activate() {
		t.Fatal("first Activate() should report a transition")
	}
	if m.Activate() {
		t.Fatal("second Activate() should be a no-op")
	}
	if !m.Active() {
		t.Fatal("mode should stay active")
	}
	if calls != 1 {
		t.Fatalf("listener calls = %d, want 1", calls)
	}
}

func TestUnsubscribe(t *testing.T) {
	m := New()
	called := false
	stop := m.Subscribe(func() { called = true })
	if m.Subscribers() != 1 {
		t.Fatalf("Subscribers() = %d, want 1", m.Subscribers())
	}
	stop()
	stop()
	if m.Subscribers() != 0 {
		t.Fatalf("Subscribers() = %d, want 0", m.Subscribers())
	}
	m.Activate()
	if called {
		t.Fatal("unsubscribed listener was called")
	}
}

func TestOverlay(t *testing.T) {
	m := New()
	node := vdom.P(vdom.Text("x"))

	if got := m.Overlay("Card.body", node); got != node {
		t.Fatal("inactive overlay should return node unchanged")
	}

	m.Activate()
	got := m.Overlay("Card.body", node)
	if got == node || got.Tag != "div" {
		t.Fatalf("active overlay should wrap node, got %+v", got)
	}
	if got.Props["data-overridable-id"] != "Card.body" {
		t.Errorf("data-overridable-id = %v", got.Props["data-overridable-id"])
	}
	if got.Props["class"] != OverlayClass {
		t.Errorf("class = %v", got.Props["class"])
	}
	if len(got.Children) != 2 || got.Children[1] != node {
		t.Fatalf("children = %v, want [tag, node]", got.Children)
	}
	if tag := got.Children[0]; tag.Children[0].Text != "Card.body" {
		t.Errorf("tag text = %q", tag.Children[0].Text)
	}

	empty := m.Overlay("Empty", nil)
	if empty == nil || len(empty.Children) != 1 {
		t.Fatalf("empty region should still be tagged, got %+v", empty)
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("unbound context should use the process-wide mode")
	}
	m := New()
	if FromContext(WithMode(context.Background(), m)) != m {
		t.Error("bound mode not returned")
	}
	var nilMode *Mode
	if FromContext(WithMode(context.Background(), nilMode)) != Default() {
		t.Error("nil bound mode should fall back to the process-wide mode")
	}
}

func TestHandleTrigger(t *testing.T) {
	m := New()
	h := NewHub(m, nil)
	defer h.Close()

	rec := httptest.NewRecorder()
	h.HandleTrigger(rec, httptest.NewRequest(http.MethodGet, TriggerPath, nil))
	var msg Message
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Active {
		t.Fatal("GET should not activate")
	}

	rec = httptest.NewRecorder()
	h.HandleTrigger(rec, httptest.NewRequest(http.MethodPost, TriggerPath, nil))
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !msg.Active || !m.Active() {
		t.Fatal("POST should activate")
	}

	rec = httptest.NewRecorder()
	h.HandleTrigger(rec, httptest.NewRequest(http.MethodDelete, TriggerPath, nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE status = %d, want 405", rec.Code)
	}
}

func TestHubBroadcastsActivation(t *testing.T) {
	m := New()
	h := NewHub(m, nil)
	defer h.Close()

	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	m.Activate()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != MessageActivated || !msg.Active {
		t.Fatalf("msg = %+v", msg)
	}
}

func TestHubSendsStateToLateClients(t *testing.T) {
	m := New()
	m.Activate()
	h := NewHub(m, nil)
	defer h.Close()

	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !msg.Active {
		t.Fatal("late client should be told dev mode is active")
	}
}

func TestClientScript(t *testing.T) {
	if s := ClientScript(true); !strings.Contains(s, "__overridableRendered = true") {
		t.Error("rendered flag missing")
	}
	s := ClientScript(false)
	for _, want := range []string{"__overridableRendered = false", TriggerPath, WebSocketPath, "window.__overridableDevMode"} {
		if !strings.Contains(s, want) {
			t.Errorf("script missing %q", want)
		}
	}
}
