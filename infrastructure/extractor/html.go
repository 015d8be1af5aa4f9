package extractor

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

func parseHTML(data []byte) (*html.Node, error) {
	return html.Parse(bytes.NewReader(data))
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isElement(n *html.Node, tags ...string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, t := range tags {
		if n.Data == t {
			return true
		}
	}
	return false
}

// attrContainsAny reports whether the named attribute contains any of
// the keywords, case-insensitively.
func attrContainsAny(n *html.Node, key string, keywords []string) bool {
	val := strings.ToLower(attrValue(n, key))
	if val == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(val, kw) {
			return true
		}
	}
	return false
}

// findNodes collects nodes under root matching pred in document order,
// up to limit (0 means unbounded).
func findNodes(root *html.Node, pred func(*html.Node) bool, limit int) []*html.Node {
	var matches []*html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if limit > 0 && len(matches) >= limit {
			return
		}
		if pred(n) {
			matches = append(matches, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// findFirst returns the first node under root matching pred, or nil.
func findFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	matches := findNodes(root, pred, 1)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// nodeText returns the concatenated, whitespace-normalized text content
// of a node.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// firstByClass returns the first element under root with one of the
// given tags whose class attribute contains any keyword. With no
// keywords any element with a matching tag is returned.
func firstByClass(root *html.Node, tags []string, keywords []string) *html.Node {
	return findFirst(root, func(n *html.Node) bool {
		if n == root || !isElement(n, tags...) {
			return false
		}
		if len(keywords) == 0 {
			return true
		}
		return attrContainsAny(n, "class", keywords)
	})
}

// firstLink returns the first anchor under root with an href.
func firstLink(root *html.Node) *html.Node {
	return findFirst(root, func(n *html.Node) bool {
		return isElement(n, "a") && attrValue(n, "href") != ""
	})
}

// renderNode serializes a node subtree back to HTML.
func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// resolveURL resolves href against base, returning href unchanged when
// either cannot be parsed.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
