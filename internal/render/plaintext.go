package render

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLText strips all markup from a rendered preview, returning only its
// text content. Inline runs are concatenated exactly as written; block
// elements contribute line breaks. Together with Tree.PlainText it
// enforces the renderer-equivalence contract: both renderers may differ in
// typography but never in a single semantic character.
func HTMLText(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "title", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlock(n.Data) {
			sb.WriteByte('\n')
		}
	}
	walk(root)

	return strings.TrimSpace(sb.String()), nil
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "table", "tr", "td", "th", "br":
		return true
	}
	return false
}
