package dom

import "strings"

// knownElements lists the element names CreateElement accepts without a
// prior Define call.
var knownElements = map[string]struct{}{}

func init() {
	for _, name := range []string{
		"a", "abbr", "address", "area", "article", "aside", "audio",
		"b", "base", "bdi", "bdo", "blockquote", "body", "br", "button",
		"canvas", "caption", "cite", "code", "col", "colgroup",
		"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div", "dl", "dt",
		"em", "embed",
		"fieldset", "figcaption", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr", "html",
		"i", "iframe", "img", "input", "ins",
		"kbd",
		"label", "legend", "li", "link",
		"main", "map", "mark", "math", "menu", "meta", "meter",
		"nav", "noscript",
		"object", "ol", "optgroup", "option", "output",
		"p", "param", "picture", "pre", "progress",
		"q",
		"rp", "rt", "ruby",
		"s", "samp", "script", "search", "section", "select", "slot", "small",
		"source", "span", "strong", "style", "sub", "summary", "sup", "svg",
		"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
		"time", "title", "tr", "track",
		"u", "ul",
		"var", "video",
		"wbr",
	} {
		knownElements[name] = struct{}{}
	}
}

// Names reserved by SVG and MathML that can never be custom elements.
var reservedCustomNames = map[string]struct{}{
	"annotation-xml":   {},
	"color-profile":    {},
	"font-face":        {},
	"font-face-src":    {},
	"font-face-uri":    {},
	"font-face-format": {},
	"font-face-name":   {},
	"missing-glyph":    {},
}

// IsKnownElement reports whether tag names a built-in HTML element.
func IsKnownElement(tag string) bool {
	_, ok := knownElements[normalizeTag(tag)]
	return ok
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func validCustomElementName(name string) bool {
	if name == "" || !strings.Contains(name, "-") {
		return false
	}
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	if _, reserved := reservedCustomNames[name]; reserved {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '.' || r == '_':
		case r >= 0xB7:
		default:
			return false
		}
	}
	return true
}
