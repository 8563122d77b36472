package content

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// contentsRepr renders the children of n as a bracketed, comma separated
// list: text and comment nodes as quoted strings, elements as their HTML.
//
//	<div>12:30, <span>16 октября</span></div>  ->  ['12:30, ', <span>16 октября</span>]
func contentsRepr(n *html.Node) string {
	parts := make([]string, 0)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode, html.CommentNode:
			parts = append(parts, quote(c.Data))
		case html.ElementNode:
			var b strings.Builder
			if err := html.Render(&b, c); err != nil {
				continue
			}
			parts = append(parts, b.String())
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// quote wraps s in single quotes, switching to double quotes when s holds a
// single quote but no double quote. Non-printable runes are escaped.
func quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == q || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(q)
	return b.String()
}
