package dom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Diff compares a live node against a desired shape and returns the
// patches needed to make prev match next. Patches reference nodes in
// the prev tree directly; nodes taken from next are adopted into the
// live tree when Apply inserts them.
func Diff(prev, next *Node) []Patch {
	var patches []Patch
	diffNode(prev, next, &patches)
	return patches
}

// diffNode recursively compares nodes and appends patches.
func diffNode(prev, next *Node, patches *[]Patch) {
	if prev == nil || next == nil {
		return
	}

	// Different kinds - replace in place
	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:     PatchReplaceNode,
			Target: prev,
			Child:  next,
		})
		return
	}

	switch prev.Kind {
	case KindText, KindRaw:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{
				Op:     PatchSetText,
				Target: prev,
				Value:  next.Text,
			})
		}
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		diffChildren(prev, prev.Children, next.Children, patches)
	}
}

// diffElement compares element nodes.
func diffElement(prev, next *Node, patches *[]Patch) {
	// Different tag or namespace - replace the node in place
	if prev.Tag != next.Tag || prev.Namespace != next.Namespace {
		*patches = append(*patches, Patch{
			Op:     PatchReplaceNode,
			Target: prev,
			Child:  next,
		})
		return
	}

	diffProps(prev, next, patches)
	diffDataset(prev, next, patches)
	diffChildren(prev, prev.Children, next.Children, patches)
}

// diffProps compares and patches direct properties. Keys are visited
// in sorted order so the patch list is deterministic.
func diffProps(prev, next *Node, patches *[]Patch) {
	for _, key := range sortedKeys(prev.Props) {
		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:     PatchRemoveProp,
				Target: prev,
				Key:    key,
			})
		} else if !propsEqual(prev.Props[key], nextVal) {
			*patches = append(*patches, Patch{
				Op:     PatchSetProp,
				Target: prev,
				Key:    key,
				Value:  nextVal,
			})
		}
	}
	for _, key := range sortedKeys(next.Props) {
		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op:     PatchSetProp,
				Target: prev,
				Key:    key,
				Value:  next.Props[key],
			})
		}
	}
}

// diffDataset compares and patches dataset entries.
func diffDataset(prev, next *Node, patches *[]Patch) {
	for _, key := range sortedKeys(prev.Dataset) {
		nextVal, exists := next.Dataset[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:     PatchRemoveDataset,
				Target: prev,
				Key:    key,
			})
		} else if prev.Dataset[key] != nextVal {
			*patches = append(*patches, Patch{
				Op:     PatchSetDataset,
				Target: prev,
				Key:    key,
				Value:  nextVal,
			})
		}
	}
	for _, key := range sortedKeys(next.Dataset) {
		if _, exists := prev.Dataset[key]; !exists {
			*patches = append(*patches, Patch{
				Op:     PatchSetDataset,
				Target: prev,
				Key:    key,
				Value:  next.Dataset[key],
			})
		}
	}
}

// diffChildren compares and patches child lists.
func diffChildren(parent *Node, prev, next []*Node, patches *[]Patch) {
	if hasKeys(prev) || hasKeys(next) {
		diffKeyedChildren(parent, prev, next, patches)
	} else {
		diffUnkeyedChildren(parent, prev, next, patches)
	}
}

// diffUnkeyedChildren handles children without keys using positional
// matching.
func diffUnkeyedChildren(parent *Node, prev, next []*Node, patches *[]Patch) {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	for i := 0; i < maxLen; i++ {
		switch {
		case i >= len(prev):
			// Insert new child
			*patches = append(*patches, Patch{
				Op:     PatchInsertChild,
				Target: parent,
				Index:  i,
				Child:  next[i],
			})
		case i >= len(next):
			// Remove child
			*patches = append(*patches, Patch{
				Op:     PatchRemoveChild,
				Target: parent,
				Child:  prev[i],
			})
		default:
			// Diff existing
			diffNode(prev[i], next[i], patches)
		}
	}
}

// diffKeyedChildren handles children with keys for efficient
// reordering.
func diffKeyedChildren(parent *Node, prev, next []*Node, patches *[]Patch) {
	// Build key map: key -> index
	prevKeyMap := make(map[string]int)
	for i, child := range prev {
		if key := getKey(child); key != "" {
			prevKeyMap[key] = i
		}
	}

	// Track which prev nodes have been matched
	matched := make(map[int]bool)

	// Process next children in order
	for nextIdx, nextChild := range next {
		key := getKey(nextChild)
		if key == "" {
			// Unkeyed node in a keyed list - treat as insert
			*patches = append(*patches, Patch{
				Op:     PatchInsertChild,
				Target: parent,
				Index:  nextIdx,
				Child:  nextChild,
			})
			continue
		}

		prevIdx, exists := prevKeyMap[key]
		if !exists {
			// New node with key
			*patches = append(*patches, Patch{
				Op:     PatchInsertChild,
				Target: parent,
				Index:  nextIdx,
				Child:  nextChild,
			})
			continue
		}

		matched[prevIdx] = true
		prevChild := prev[prevIdx]

		// Check if position changed
		if prevIdx != nextIdx {
			*patches = append(*patches, Patch{
				Op:     PatchMoveChild,
				Target: parent,
				Child:  prevChild,
				Index:  nextIdx,
			})
		}

		// Diff the node itself
		diffNode(prevChild, nextChild, patches)
	}

	// Remove unmatched prev nodes
	for i, prevChild := range prev {
		if !matched[i] {
			*patches = append(*patches, Patch{
				Op:     PatchRemoveChild,
				Target: parent,
				Child:  prevChild,
			})
		}
	}
}

// getKey extracts the reconciliation key from a node's props.
func getKey(node *Node) string {
	if node == nil || node.Props == nil {
		return ""
	}
	if key, ok := node.Props["key"].(string); ok {
		return key
	}
	return ""
}

// hasKeys returns true if any child has a key.
func hasKeys(children []*Node) bool {
	for _, child := range children {
		if getKey(child) != "" {
			return true
		}
	}
	return false
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}
	// Fallback to reflect for complex types
	return reflect.DeepEqual(a, b)
}

// propToString converts a prop value to a string.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
