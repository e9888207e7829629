package choc

import "github.com/Rosuav/Choc/pkg/dom"

// Type aliases for the tree primitives used by the DSL.
type Node = dom.Node
type Attrs = dom.Attrs
type Content = dom.Content
type Text = dom.Text
type List = dom.List

// SetContent empties target and repopulates it from the given content
// items. Strings become text children, empty strings are dropped, and
// nested Lists flatten in order. Returns target for chaining.
func SetContent(target *Node, content ...Content) *Node {
	return dom.SetContent(target, List(content))
}

// ReplaceContent has the same contract as SetContent but updates the
// children in place, leaving matching children untouched so that node
// identity survives the update.
func ReplaceContent(target *Node, content ...Content) *Node {
	return dom.ReplaceContent(target, List(content))
}

// Contents converts loosely typed values (strings, numbers, nodes,
// lists) into a content List.
func Contents(args ...any) List {
	return dom.Contents(args...)
}

// Textf formats into a Text content item.
func Textf(format string, args ...any) Text {
	return dom.Textf(format, args...)
}

// Raw creates an unescaped HTML node.
func Raw(html string) *Node {
	return dom.Raw(html)
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Node {
	return dom.Fragment(children...)
}

// NSTag returns a constructor bound to a namespaced tag:
//
//	var PATH = choc.NSTag("svg", "path")
func NSTag(ns, tag string) func(args ...any) *Node {
	return dom.NSTag(ns, tag)
}

// CustomElement creates an element with a tag the DSL has no
// constructor for.
func CustomElement(tag string, args ...any) *Node {
	return dom.CustomElement(tag, args...)
}
