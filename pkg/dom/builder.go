package dom

import (
	"sort"
	"strings"
)

// DatasetPrefix marks attribute keys that are routed to a node's
// Dataset rather than its Props.
const DatasetPrefix = "data-"

// Attrs is an attribute map. Keys beginning with "data-" go to the
// node's Dataset with the prefix stripped; every other key becomes a
// direct property.
type Attrs map[string]any

// New creates an element node in one call: tag, attributes, content.
// A tag of the form "ns:name" creates a namespaced element, e.g.
// "svg:path". Attrs and content may each be nil.
func New(tag string, attrs Attrs, content Content) *Node {
	node := &Node{
		Kind:     KindElement,
		Props:    make(Props),
		Dataset:  make(Dataset),
		Children: make([]*Node, 0),
	}
	node.Namespace, node.Tag = splitTag(tag)
	node.applyAttrs(attrs)
	if content != nil {
		SetContent(node, content)
	}
	return node
}

// NSTag returns a constructor for a namespaced element, matching the
// signature of the package's element functions:
//
//	var Path = dom.NSTag("svg", "path")
func NSTag(ns, tag string) func(args ...any) *Node {
	return func(args ...any) *Node {
		node := createElement(tag, args)
		node.Namespace = ns
		return node
	}
}

// applyAttr routes a single attribute onto the node. Keys carrying the
// dataset prefix go to Dataset as strings; everything else is stored
// verbatim in Props. Empty keys and nil values are ignored.
func (n *Node) applyAttr(key string, value any) {
	if key == "" || value == nil {
		return
	}
	if strings.HasPrefix(key, DatasetPrefix) {
		n.SetDataset(key[len(DatasetPrefix):], propToString(value))
		return
	}
	n.SetProp(key, value)
}

// applyAttrs applies an attribute map in sorted key order so that
// repeated builds of the same map behave identically.
func (n *Node) applyAttrs(attrs Attrs) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		n.applyAttr(key, attrs[key])
	}
}

// splitTag splits an optional namespace prefix from a tag name.
// "svg:path" yields ("svg", "path"); a bare tag yields ("", tag).
func splitTag(tag string) (ns, name string) {
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		return tag[:i], tag[i+1:]
	}
	return "", tag
}
