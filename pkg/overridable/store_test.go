package overridable

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/vango-go/overridable/pkg/vdom"
)

func TestStoreAddGet(t *testing.T) {
	s := NewStore()
	rec := newRecorder("a")

	if _, ok := s.Get("Card.header"); ok {
		t.Fatal("Get() on empty store reported an entry")
	}

	s.Add("Card.header", rec)
	e, ok := s.Get("Card.header")
	if !ok || e.IsList() {
		t.Fatalf("Get() = %+v, %v; want single entry", e, ok)
	}
	if r, _ := e.Replacement(); r != vdom.Component(rec) {
		t.Errorf("Replacement() = %v, want recorder", r)
	}

	other := newRecorder("b")
	s.Add("Card.header", other)
	e, _ = s.Get("Card.header")
	if r, _ := e.Replacement(); r != vdom.Component(other) {
		t.Error("Add() should replace the previous entry")
	}
}

func TestStoreAppendBuildsList(t *testing.T) {
	s := NewStore()
	a, b := newRecorder("a"), newRecorder("b")

	s.Append("Card.footer", a)
	e, _ := s.Get("Card.footer")
	if !e.IsList() || e.Len() != 1 {
		t.Fatalf("after one Append: list=%v len=%d, want list of 1", e.IsList(), e.Len())
	}

	s.Append("Card.footer", b)
	e, _ = s.Get("Card.footer")
	if !e.IsList() || e.Len() != 2 {
		t.Fatalf("after two Appends: list=%v len=%d, want list of 2", e.IsList(), e.Len())
	}

	html := renderHTML(t, context.Background(), s.Provider(Region("Card.footer", nil, vdom.Footer())))
	if html != `<div data-by="a"></div><div data-by="b"></div>` {
		t.Errorf("html = %q", html)
	}
}

func TestStoreAppendAfterAddDropsSingle(t *testing.T) {
	s := NewStore()
	s.Add("Card.footer", newRecorder("single"))
	s.Append("Card.footer", newRecorder("listed"))

	e, _ := s.Get("Card.footer")
	if !e.IsList() || e.Len() != 1 {
		t.Fatalf("list=%v len=%d, want list of 1", e.IsList(), e.Len())
	}
	if got := vdom.DisplayName(e.Replacements()[0]); got != "listed" {
		t.Errorf("replacement = %q, want listed", got)
	}
}

func TestStoreGetAllIsSnapshot(t *testing.T) {
	s := NewStore()
	s.Append("Card.footer", newRecorder("a"))

	snap := s.GetAll()
	s.Append("Card.footer", newRecorder("b"))
	s.Add("Card.header", newRecorder("h"))

	if len(snap) != 1 {
		t.Fatalf("snapshot ids = %v, want only Card.footer", snap.IDs())
	}
	if n := snap["Card.footer"].Len(); n != 1 {
		t.Errorf("snapshot list len = %d, want 1", n)
	}

	snap["Card.header"] = One(nil)
	if _, ok := s.Get("Card.header"); !ok {
		t.Error("store lost an entry after snapshot mutation")
	}
	if e, _ := s.Get("Card.header"); vdom.DisplayName(mustReplacement(t, e)) != "h" {
		t.Error("snapshot mutation leaked into the store")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Add("a", newRecorder("a"))
	s.Append("b", newRecorder("b"))

	s.Clear()

	if all := s.GetAll(); len(all) != 0 {
		t.Errorf("GetAll() after Clear = %v, want empty", all.IDs())
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Append(fmt.Sprintf("id-%d", i%4), newRecorder("r"))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.GetAll()
				_, _ = s.Get("id-0")
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, e := range s.GetAll() {
		total += e.Len()
	}
	if total != 400 {
		t.Errorf("total replacements = %d, want 400", total)
	}
}

func TestStoreLogsMutations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewStore(WithLogger(logger))

	s.Add("Card.header", newRecorder("h"))
	s.Append("Card.footer", newRecorder("f"))
	s.Clear()

	out := buf.String()
	for _, want := range []string{
		`msg="override added" id=Card.header replacement=h`,
		`msg="override appended" id=Card.footer replacement=f count=1`,
		`msg="overrides cleared" removed=2`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func mustReplacement(t *testing.T, e Entry) vdom.Component {
	t.Helper()
	r, ok := e.Replacement()
	if !ok {
		t.Fatalf("entry %+v has no single replacement", e)
	}
	return r
}
