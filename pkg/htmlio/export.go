package htmlio

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Rosuav/Choc/pkg/dom"
)

// Export converts a dom tree into x/net/html nodes. Fragments become
// document nodes, raw nodes become raw html nodes. Returns nil for a
// nil input.
func Export(n *dom.Node) *html.Node {
	return exportNode(n, nil)
}

// ExportTracked converts like Export and also returns the mapping from
// each exported node back to the dom node it came from. The query
// package uses the mapping to translate selector matches into dom
// nodes.
func ExportTracked(n *dom.Node) (*html.Node, map[*html.Node]*dom.Node) {
	index := make(map[*html.Node]*dom.Node)
	return exportNode(n, index), index
}

func exportNode(n *dom.Node, index map[*html.Node]*dom.Node) *html.Node {
	if n == nil {
		return nil
	}

	var out *html.Node
	switch n.Kind {
	case dom.KindElement:
		out = &html.Node{
			Type:      html.ElementNode,
			Data:      n.Tag,
			DataAtom:  atom.Lookup([]byte(n.Tag)),
			Namespace: n.Namespace,
			Attr:      exportAttrs(n),
		}
		for _, child := range n.Children {
			if converted := exportNode(child, index); converted != nil {
				out.AppendChild(converted)
			}
		}

	case dom.KindText:
		out = &html.Node{
			Type: html.TextNode,
			Data: n.Text,
		}

	case dom.KindRaw:
		out = &html.Node{
			Type: html.RawNode,
			Data: n.Text,
		}

	case dom.KindFragment:
		out = &html.Node{
			Type: html.DocumentNode,
		}
		for _, child := range n.Children {
			if converted := exportNode(child, index); converted != nil {
				out.AppendChild(converted)
			}
		}

	default:
		return nil
	}

	if index != nil {
		index[out] = n
	}
	return out
}

// exportAttrs flattens props and dataset entries into html attributes
// in sorted order. The reconciliation key is not a real attribute and
// is skipped; boolean props render as bare attributes when true and
// vanish when false.
func exportAttrs(n *dom.Node) []html.Attribute {
	merged := make(map[string]string, len(n.Props)+len(n.Dataset))
	for key, value := range n.Props {
		if key == "key" {
			continue
		}
		if b, ok := value.(bool); ok {
			if b {
				merged[key] = ""
			}
			continue
		}
		if s := valueString(value); s != "" {
			merged[key] = s
		}
	}
	for key, value := range n.Dataset {
		merged[dom.DatasetPrefix+key] = value
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]html.Attribute, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, html.Attribute{Key: key, Val: merged[key]})
	}
	return attrs
}

// valueString converts a prop value to its attribute form.
func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
