package dom

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// SetStyle sets a single inline style property. Properties may be given in
// the scripting form (backgroundColor, cssFloat) or as CSS names
// (background-color). An empty value removes the declaration.
//
// A value that is not exactly one declaration value, such as "x;y" or an
// unterminated string, is rejected with ErrInvalidStyle and the existing
// declarations are left as they are. The same applies when the current
// style attribute does not parse.
func (d *Document) SetStyle(n *Node, property, value string) error {
	if n == nil {
		return ErrNilNode
	}
	name := CSSPropertyName(property)
	if name == "" {
		return fmt.Errorf("%w: empty property name", ErrInvalidStyle)
	}
	value = strings.TrimSpace(value)
	if value != "" {
		if err := checkDeclaration(name, value); err != nil {
			return err
		}
	}

	declarations, err := d.styleDeclarations(n)
	if err != nil {
		return err
	}
	out := make([]*css.Declaration, 0, len(declarations)+1)
	replaced := false
	for _, decl := range declarations {
		if decl.Property != name {
			out = append(out, decl)
			continue
		}
		if replaced || value == "" {
			continue
		}
		out = append(out, &css.Declaration{Property: name, Value: value})
		replaced = true
	}
	if !replaced && value != "" {
		out = append(out, &css.Declaration{Property: name, Value: value})
	}

	if len(out) == 0 {
		d.RemoveAttribute(n, "style")
		return nil
	}
	d.SetAttribute(n, "style", formatDeclarations(out))
	return nil
}

// Style returns the inline value of property, or "" when unset or when the
// style attribute does not parse.
func (d *Document) Style(n *Node, property string) string {
	name := CSSPropertyName(property)
	declarations, err := d.styleDeclarations(n)
	if err != nil {
		return ""
	}
	value := ""
	for _, decl := range declarations {
		if decl.Property == name {
			value = decl.Value
		}
	}
	return value
}

func (d *Document) styleDeclarations(n *Node) ([]*css.Declaration, error) {
	raw, ok := d.Attribute(n, "style")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	declarations, err := parser.ParseDeclarations(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: style attribute %q: %v", ErrInvalidStyle, raw, err)
	}
	return declarations, nil
}

// checkDeclaration accepts value only when "name: value" parses back to a
// single declaration of name with the same value.
func checkDeclaration(name, value string) error {
	if !balancedValue(value) {
		return fmt.Errorf("%w: %s value %q", ErrInvalidStyle, name, value)
	}
	declarations, err := parser.ParseDeclarations(name + ": " + value)
	if err != nil {
		return fmt.Errorf("%w: %s value %q: %v", ErrInvalidStyle, name, value, err)
	}
	if len(declarations) != 1 || declarations[0].Property != name {
		return fmt.Errorf("%w: %s value %q", ErrInvalidStyle, name, value)
	}
	return nil
}

// balancedValue rejects values that would end the declaration or open a
// new one: braces outside a string, ';' or ':' outside parentheses and
// strings, and unterminated strings or parentheses.
func balancedValue(value string) bool {
	var quote rune
	depth := 0
	escaped := false
	for _, r := range value {
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'':
			quote = r
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return false
			}
			depth--
		case '{', '}':
			return false
		case ';', ':':
			if depth == 0 {
				return false
			}
		}
	}
	return quote == 0 && depth == 0
}

func formatDeclarations(declarations []*css.Declaration) string {
	parts := make([]string, 0, len(declarations))
	for _, decl := range declarations {
		part := decl.Property + ": " + decl.Value
		if decl.Important {
			part += " !important"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ") + ";"
}

// CSSPropertyName converts a scripting style name to its CSS form:
// backgroundColor becomes background-color, WebkitTransition becomes
// -webkit-transition and cssFloat becomes float. Custom properties (--x)
// are returned unchanged.
func CSSPropertyName(property string) string {
	property = strings.TrimSpace(property)
	if property == "" || strings.HasPrefix(property, "--") {
		return property
	}
	if property == "cssFloat" {
		return "float"
	}
	if strings.Contains(property, "-") {
		return strings.ToLower(property)
	}

	var b strings.Builder
	for _, r := range property {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
