package preview

import (
	"context"
	"errors"

	"github.com/vango-go/overridable/pkg/overridable"
	. "github.com/vango-go/overridable/pkg/vdom"
)

// Identifiers of the extension points on the demo page.
const (
	IDCard       = "Card"
	IDCardHeader = "Card.header"
	IDCardBody   = "Card.body"
	IDCardFooter = "Card.footer"
	IDPageBanner = "Page.banner"
)

// DemoIDs lists every identifier the demo page resolves.
func DemoIDs() []string {
	return []string{IDCard, IDCardBody, IDCardFooter, IDCardHeader, IDPageBanner}
}

// errMissingTitle is returned by the default card when rendered without a
// title.
var errMissingTitle = errors.New("card: title is required")

// Card is the demo card: a component-level override point whose default
// implementation itself carries region markers.
var Card = overridable.Component(IDCard, ComponentFunc(renderCard))

// FeaturedCard renders the default card with a fixed tone, bypassing any
// override of Card.
var FeaturedCard = overridable.Parametrize(Card, overridable.Params{"tone": "featured"})

func renderCard(_ context.Context, props Props, children []*VNode) (*VNode, error) {
	title, ok := props.String("title")
	if !ok || title == "" {
		return nil, errMissingTitle
	}
	tone, _ := props.String("tone")
	if tone == "" {
		tone = "plain"
	}

	return Article(Class("card card-"+tone),
		overridable.Region(IDCardHeader, Props{"tone": tone},
			H2(Class("card-title"), Text(title)),
		),
		overridable.Region(IDCardBody, nil,
			Div(Class("card-body"), children),
		),
		overridable.Expandable(IDCardFooter, Props{"label": tone},
			Footer(Class("card-footer"), Small(Text("Default footer"))),
		),
	), nil
}

// DemoPage returns the body of the demo page.
func DemoPage() *VNode {
	return Main(Class("preview"),
		overridable.Region(IDPageBanner, Props{"tone": "info"}),
		H1(Text("Overridable preview")),
		C(Card, Props{"title": "Welcome"},
			P(Text("Regions on this card can be replaced from the override manifest.")),
		),
		C(FeaturedCard, Props{"title": "Featured"},
			P(Text("This card always renders the default implementation.")),
		),
	)
}

// demoStyles outline tagged regions when dev mode is active.
const demoStyles = `
.overridable-dev { outline: 1px dashed #d33; position: relative; }
.overridable-dev-tag { position: absolute; top: -0.8em; left: 0; font: 10px monospace; background: #d33; color: #fff; padding: 0 2px; }
.card { border: 1px solid #ccc; border-radius: 4px; margin: 1em 0; padding: 1em; }
.card-featured { border-color: #36c; }
.badge { background: #36c; color: #fff; border-radius: 8px; padding: 0 6px; margin-right: 4px; }
`
