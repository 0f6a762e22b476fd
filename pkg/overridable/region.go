package overridable

import (
	"context"
	"strconv"

	"github.com/vango-go/overridable/pkg/devmode"
	"github.com/vango-go/overridable/pkg/vdom"
)

type region struct {
	id string
}

// Region marks a sub-region of a component as overridable under id.
//
// props are pass-through parameters handed to a replacement. At most one
// child may be given (nil children are ignored); more than one makes the
// region fail to render with a *RegionError.
//
// When id has no override the child is rendered as-is, without the
// pass-through parameters. When id maps to a single replacement it renders
// in place of the child, receiving the child's parameters overlaid with
// props, and the child's children. A list entry renders every replacement
// that way, keyed id-0, id-1, and so on.
func Region(id string, props vdom.Props, children ...*vdom.VNode) *vdom.VNode {
	return vdom.C(&region{id: id}, props, children...)
}

// Expandable is Region under the name used for extension points that are
// expected to receive a list of replacements from Store.Append.
func Expandable(id string, props vdom.Props, children ...*vdom.VNode) *vdom.VNode {
	return Region(id, props, children...)
}

// Render implements vdom.Component.
func (r *region) Render(ctx context.Context, pass vdom.Props, children []*vdom.VNode) (*vdom.VNode, error) {
	if len(children) > 1 {
		observe(ctx, siteRegion, r.id, outcomeError)
		return nil, &RegionError{ID: r.id, Children: len(children)}
	}

	var child *vdom.VNode
	if len(children) == 1 {
		child = children[0]
	}

	var out *vdom.VNode
	if entry, ok := FromContext(ctx).Lookup(r.id); ok {
		var params vdom.Props
		var grandchildren []*vdom.VNode
		if child != nil {
			params = child.Props
			grandchildren = child.Children
		}
		out = substitute(ctx, siteRegion, r.id, entry, params.Merge(pass), grandchildren)
	} else if child != nil {
		observe(ctx, siteRegion, r.id, outcomeDefault)
		out = vdom.Clone(child)
	} else {
		observe(ctx, siteRegion, r.id, outcomeEmpty)
	}

	return devmode.FromContext(ctx).Overlay(r.id, out), nil
}

// Name implements vdom.Named.
func (r *region) Name() string { return "overridable.Region(" + r.id + ")" }

// substitute builds the nodes rendering entry with params and children.
func substitute(ctx context.Context, site, id string, entry Entry, params vdom.Props, children []*vdom.VNode) *vdom.VNode {
	if rep, ok := entry.Replacement(); ok {
		observe(ctx, site, id, outcomeOverride)
		if rep == nil {
			return nil
		}
		return vdom.C(rep, params, children...)
	}

	observe(ctx, site, id, outcomeExpand)
	reps := entry.Replacements()
	nodes := make([]*vdom.VNode, 0, len(reps))
	for i, rep := range reps {
		if rep == nil {
			continue
		}
		node := vdom.C(rep, params.Clone(), children...)
		node.Key = id + "-" + strconv.Itoa(i)
		nodes = append(nodes, node)
	}
	return vdom.Fragment(nodes)
}
