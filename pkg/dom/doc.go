// Package dom provides the mutable document tree for Choc.
//
// The tree is an in-memory representation of HTML. Node is the single
// building block for elements, text, fragments, and raw HTML. Element
// state is kept in two maps with distinct roles: Props holds direct
// properties, Dataset holds the custom data-* entries keyed without
// their prefix.
//
// # Building
//
// Elements are created using variadic factory functions:
//
//	Div(Attrs{"id": "main", "data-state": "open"},
//	    H1("Title"),
//	    P("Content"),
//	)
//
// String arguments become text children, and empty strings are dropped
// entirely, so conditional content can be written inline. Attrs keys
// beginning with "data-" are routed to the node's Dataset.
//
// # Content
//
// SetContent and ReplaceContent repopulate a node's children from a
// Content value (Text, *Node, or a nested List). SetContent empties the
// node and rebuilds; ReplaceContent diffs the existing children and
// applies the minimal set of patches, preserving node identity where
// the content already matches.
//
// # Diffing
//
// The Diff function compares a live node against a desired shape and
// returns a slice of Patch operations; Apply executes them against the
// live tree. Keyed reconciliation is used when children carry a "key"
// prop.
package dom
