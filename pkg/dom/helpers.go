package dom

import "fmt"

// Textf creates formatted text content.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element. Arguments are
// interpreted the same way as element constructor content arguments.
func Fragment(children ...any) *Node {
	node := &Node{
		Kind:     KindFragment,
		Children: make([]*Node, 0),
	}
	node.Children = appendNodes(node.Children, Contents(children...))
	return node
}

// If returns the content if condition is true, nil otherwise.
func If(condition bool, content Content) Content {
	if condition {
		return content
	}
	return nil
}

// IfElse returns the first content if condition is true, the second
// otherwise.
func IfElse(condition bool, ifTrue, ifFalse Content) Content {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() Content) Content {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the content if condition is false.
func Unless(condition bool, content Content) Content {
	if !condition {
		return content
	}
	return nil
}

// Range maps a slice to content.
func Range[T any](items []T, fn func(item T, index int) Content) List {
	result := make(List, 0, len(items))
	for i, item := range items {
		if c := fn(item, i); c != nil {
			result = append(result, c)
		}
	}
	return result
}

// RangeMap maps a map to content.
// Note: map iteration order is not guaranteed.
func RangeMap[K comparable, V any](m map[K]V, fn func(key K, value V) Content) List {
	result := make(List, 0, len(m))
	for k, v := range m {
		if c := fn(k, v); c != nil {
			result = append(result, c)
		}
	}
	return result
}

// Repeat creates n content items using the given function.
func Repeat(n int, fn func(i int) Content) List {
	if n <= 0 {
		return nil
	}
	result := make(List, 0, n)
	for i := 0; i < n; i++ {
		if c := fn(i); c != nil {
			result = append(result, c)
		}
	}
	return result
}

// Key creates a key attribute for reconciliation.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Nothing returns nil content, useful for conditional rendering.
func Nothing() Content {
	return nil
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second *Node) *Node {
	if first != nil {
		return first
	}
	return second
}
