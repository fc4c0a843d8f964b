package block

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PasteEvent carries pasted rich content. Node is the pasted element.
type PasteEvent struct {
	Node *html.Node
}

// ParsePaste parses clipboard HTML and returns an event for the first
// top-level <pre> element. ok is false when s is not such markup.
func ParsePaste(s string) (PasteEvent, bool) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 4 || !strings.EqualFold(trimmed[:4], "<pre") {
		return PasteEvent{}, false
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(trimmed), body)
	if err != nil {
		return PasteEvent{}, false
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.Pre {
			return PasteEvent{Node: n}, true
		}
	}
	return PasteEvent{}, false
}

func acceptsPaste(ev PasteEvent) bool {
	n := ev.Node
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	return slices.Contains(DefaultCapabilities().PasteTags, strings.ToLower(n.Data))
}

// textContent concatenates every text node under n in document order.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
