package render

import "strings"

// Tag tables cover the elements pkg/vdom builds. Unknown tags render as
// ordinary block elements with a closing tag.
var (
	voidElements = map[string]bool{
		"br": true, "hr": true, "img": true, "link": true, "meta": true,
	}

	// inlineElements stay on one line in pretty output.
	inlineElements = map[string]bool{
		"a": true, "br": true, "code": true, "em": true, "label": true,
		"small": true, "span": true, "strong": true,
	}

	// booleanAttrs render as a bare name when true and are omitted when false.
	booleanAttrs = map[string]bool{
		"async": true, "defer": true, "disabled": true, "hidden": true,
	}
)

func isVoidElement(tag string) bool   { return voidElements[tag] }
func isInlineElement(tag string) bool { return inlineElements[tag] }
func isBooleanAttr(name string) bool  { return booleanAttrs[name] }

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;",
	)

	// Attribute values additionally encode whitespace control characters.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;",
		"\n", "&#10;", "\r", "&#13;", "\t", "&#9;",
	)
)

func escapeHTML(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
