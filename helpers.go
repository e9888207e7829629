// This file re-exports dom helper functions for the choc package.
package choc

import "github.com/Rosuav/Choc/pkg/dom"

func If(condition bool, content Content) Content {
	return dom.If(condition, content)
}
func IfElse(condition bool, ifTrue, ifFalse Content) Content {
	return dom.IfElse(condition, ifTrue, ifFalse)
}
func When(condition bool, fn func() Content) Content {
	return dom.When(condition, fn)
}
func Unless(condition bool, content Content) Content {
	return dom.Unless(condition, content)
}
func Range[T any](items []T, fn func(item T, index int) Content) List {
	return dom.Range(items, fn)
}
func RangeMap[K comparable, V any](m map[K]V, fn func(key K, value V) Content) List {
	return dom.RangeMap(m, fn)
}
func Repeat(n int, fn func(i int) Content) List {
	return dom.Repeat(n, fn)
}
func Key(key any) dom.Attr {
	return dom.Key(key)
}
func Nothing() Content {
	return dom.Nothing()
}
func Either(first, second *Node) *Node {
	return dom.Either(first, second)
}
