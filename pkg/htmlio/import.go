package htmlio

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Rosuav/Choc/pkg/dom"
)

// Parse reads a full HTML document and returns it as a fragment node
// whose children are the document's top-level elements.
func Parse(r io.Reader) (*dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return importNode(doc), nil
}

// ParseFragment parses markup as it would appear inside a body element
// and returns the top-level nodes as a content list.
func ParseFragment(s string) (dom.List, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	list := make(dom.List, 0, len(nodes))
	for _, n := range nodes {
		if converted := importNode(n); converted != nil {
			list = append(list, converted)
		}
	}
	return list, nil
}

// importNode converts one html node and its subtree. Comments and
// doctypes convert to nil and are dropped by the caller.
func importNode(n *html.Node) *dom.Node {
	switch n.Type {
	case html.ElementNode:
		node := &dom.Node{
			Kind:      dom.KindElement,
			Tag:       n.Data,
			Namespace: n.Namespace,
			Props:     make(dom.Props),
			Dataset:   make(dom.Dataset),
			Children:  make([]*dom.Node, 0),
		}
		for _, attr := range n.Attr {
			switch {
			case attr.Key == "xmlns":
				// Captured by the Namespace field
			case strings.HasPrefix(attr.Key, dom.DatasetPrefix):
				node.SetDataset(attr.Key[len(dom.DatasetPrefix):], attr.Val)
			default:
				node.SetProp(attr.Key, attr.Val)
			}
		}
		importChildren(node, n)
		return node

	case html.TextNode:
		if n.Data == "" {
			return nil
		}
		return dom.NewText(n.Data)

	case html.DocumentNode:
		node := &dom.Node{
			Kind:     dom.KindFragment,
			Children: make([]*dom.Node, 0),
		}
		importChildren(node, n)
		return node

	default:
		// Comments, doctypes and error nodes are dropped
		return nil
	}
}

func importChildren(parent *dom.Node, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if converted := importNode(c); converted != nil {
			parent.Children = append(parent.Children, converted)
		}
	}
}
