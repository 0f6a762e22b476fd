package overridable

import (
	"sort"

	"github.com/vango-go/overridable/pkg/vdom"
)

// Entry is the registry value for one identifier: either a single
// replacement, or an ordered list of replacements rendered side by side.
// The zero Entry is a list with no replacements.
type Entry struct {
	replacements []vdom.Component
	single       bool
}

// One returns an entry that substitutes r for the default. A nil r renders
// nothing, which hides the extension point.
func One(r vdom.Component) Entry {
	return Entry{replacements: []vdom.Component{r}, single: true}
}

// Many returns a list entry. Every replacement is rendered, in order.
func Many(rs ...vdom.Component) Entry {
	out := make([]vdom.Component, len(rs))
	copy(out, rs)
	return Entry{replacements: out}
}

// IsList reports whether e holds expand semantics.
func (e Entry) IsList() bool { return !e.single }

// Len returns the number of replacements in e.
func (e Entry) Len() int { return len(e.replacements) }

// Replacements returns a copy of e's replacements.
func (e Entry) Replacements() []vdom.Component {
	out := make([]vdom.Component, len(e.replacements))
	copy(out, e.replacements)
	return out
}

// Replacement returns the replacement of a single entry.
func (e Entry) Replacement() (vdom.Component, bool) {
	if !e.single {
		return nil, false
	}
	return e.replacements[0], true
}

// with returns a list entry with r appended. A single entry is discarded
// first, matching Store.Append.
func (e Entry) with(r vdom.Component) Entry {
	if e.single {
		e = Entry{}
	}
	out := make([]vdom.Component, len(e.replacements), len(e.replacements)+1)
	copy(out, e.replacements)
	return Entry{replacements: append(out, r)}
}

// Registry maps identifiers to override entries.
type Registry map[string]Entry

// Lookup returns the entry for id. Lookups on a nil Registry report absent.
func (r Registry) Lookup(id string) (Entry, bool) {
	e, ok := r[id]
	return e, ok
}

// Clone returns a shallow copy of r.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IDs returns the registered identifiers in sorted order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
