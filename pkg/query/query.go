package query

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/Rosuav/Choc/internal/errors"
	"github.com/Rosuav/Choc/pkg/dom"
	"github.com/Rosuav/Choc/pkg/htmlio"
)

// Find returns every node in root's tree matched by the CSS selector,
// in document order. The root itself is eligible to match.
func Find(root *dom.Node, selector string) ([]*dom.Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}

	exported, index := htmlio.ExportTracked(root)
	if exported == nil {
		return nil, nil
	}
	doc := goquery.NewDocumentFromNode(documentFor(exported))

	var matches []*dom.Node
	for _, n := range doc.FindMatcher(sel).Nodes {
		if m, ok := index[n]; ok {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// First returns the single node matched by the CSS selector. It returns
// nil when nothing matches and an error when the selector matches more
// than one node.
func First(root *dom.Node, selector string) (*dom.Node, error) {
	matches, err := Find(root, selector)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, errors.New("E302").
			WithDetail(fmt.Sprintf("Selector %q matched %d elements.", selector, len(matches)))
	}
}

// Matches reports whether n itself matches the CSS selector. The node
// is evaluated as the root of its own tree, so selectors that depend on
// ancestors or siblings do not match.
func Matches(n *dom.Node, selector string) (bool, error) {
	sel, err := compile(selector)
	if err != nil {
		return false, err
	}
	if n == nil {
		return false, nil
	}
	exported := htmlio.Export(n)
	if exported == nil || exported.Type != html.ElementNode {
		return false, nil
	}
	return sel.Match(exported), nil
}

// compile validates a selector. goquery's string-based Find swallows
// compile failures; compiling here surfaces them as coded errors.
func compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, errors.New("E301").
			WithDetail(fmt.Sprintf("Selector %q could not be compiled.", selector)).
			Wrap(err)
	}
	return sel, nil
}

// documentFor wraps n in a document node so that n itself is reachable
// by descendant matching. Fragment exports are document nodes already.
func documentFor(n *html.Node) *html.Node {
	if n.Type == html.DocumentNode {
		return n
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(n)
	return doc
}
