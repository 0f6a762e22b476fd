// Package overridable lets a component tree mark extension points that a
// consuming application can replace without touching the original source.
//
// There are three ways to make something overridable:
//
//   - Region marks a sub-region of a component. With no override it renders
//     its single child unchanged; with an override it renders the
//     replacement, handing it the child's parameters merged with the
//     region's pass-through parameters.
//   - Component wraps a whole component. With no override it renders the
//     default implementation; with an override it renders the replacement
//     with the same parameters and children.
//   - Parametrize injects extra parameters into an existing component.
//
// Overrides are looked up by string identifier in a Registry bound to the
// render context:
//
//	reg := overridable.Registry{
//	    "Card.header": overridable.One(MyHeader),
//	    "Card":        overridable.One(overridable.Parametrize(Card, overridable.Params{"title": "Hi"})),
//	}
//	tree := overridable.Provider(reg, App())
//
// Lookups are live: every region and wrapper re-reads the registry on every
// render, so changes take effect on the next render pass. A nested Provider
// replaces the outer registry for its subtree; registries are never merged.
//
// Store is a mutable, process-wide alternative. Its GetAll snapshot is what
// Store.Provider binds to the subtree.
//
// There is no conflict detection between overrides: the last writer into a
// registry or store wins.
package overridable
