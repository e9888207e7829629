package dom

import "strconv"

// Content is a value that can populate a node's children. The concrete
// types are Text, *Node, and List. Lists nest arbitrarily and are
// flattened in document order when materialized.
type Content interface {
	isContent()
}

// Text is a plain text content item. The empty string denotes no
// content and produces no node, which makes conditional content cheap
// to express inline.
type Text string

func (Text) isContent() {}

// List is an ordered sequence of content items.
type List []Content

func (List) isContent() {}

func (*Node) isContent() {}

// NewText creates a text node.
func NewText(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// appendNodes materializes content onto out, dropping empty text and
// nil nodes.
func appendNodes(out []*Node, c Content) []*Node {
	switch v := c.(type) {
	case nil:
	case Text:
		if v != "" {
			out = append(out, NewText(string(v)))
		}
	case *Node:
		if v != nil {
			out = append(out, v)
		}
	case List:
		for _, item := range v {
			out = appendNodes(out, item)
		}
	}
	return out
}

// Contents converts loosely typed arguments into a content List.
// Arguments can be: nil, Text, List, *Node, []*Node, string, int,
// int64, float64. Anything else is ignored.
func Contents(args ...any) List {
	out := make(List, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Text:
			out = append(out, v)
		case List:
			out = append(out, v)
		case *Node:
			if v != nil {
				out = append(out, v)
			}
		case []*Node:
			for _, child := range v {
				if child != nil {
					out = append(out, child)
				}
			}
		case string:
			out = append(out, Text(v))
		case int:
			out = append(out, Text(strconv.Itoa(v)))
		case int64:
			out = append(out, Text(strconv.FormatInt(v, 10)))
		case float64:
			out = append(out, Text(strconv.FormatFloat(v, 'f', -1, 64)))
		}
	}
	return out
}

// SetContent empties target and repopulates it from content. Existing
// children are removed from the end until none remain, then the nodes
// content denotes are appended in order. Nil content and empty Text
// contribute nothing, so SetContent(node, nil) clears a node. Returns
// target for chaining.
func SetContent(target *Node, content Content) *Node {
	if target == nil {
		return nil
	}
	for last := target.LastChild(); last != nil; last = target.LastChild() {
		target.RemoveChild(last)
	}
	target.Children = appendNodes(target.Children, content)
	return target
}

// ContentPatches computes the patches that would update target's
// children to match content, without applying them.
func ContentPatches(target *Node, content Content) []Patch {
	if target == nil {
		return nil
	}
	desired := &Node{
		Kind:      target.Kind,
		Tag:       target.Tag,
		Namespace: target.Namespace,
		Props:     target.Props,
		Dataset:   target.Dataset,
		Text:      target.Text,
		Children:  appendNodes(nil, content),
	}
	return Diff(target, desired)
}

// ReplaceContent updates target's children in place to match content,
// diffing against the existing children instead of rebuilding them.
// Children already in the right place are left untouched, preserving
// node identity across updates. Returns target for chaining.
func ReplaceContent(target *Node, content Content) *Node {
	if target == nil {
		return nil
	}
	Apply(ContentPatches(target, content))
	return target
}
