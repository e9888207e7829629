// Package choc provides the ALL-CAPS element DSL for Choc.
//
// It exposes one constructor per HTML element, named in capitals after
// the tag it builds, along with the core content operations from
// github.com/Rosuav/Choc/pkg/dom. The capitalized names are the
// convention the chocimport tool recognizes, so files normally keep a
// maintained alias block instead of dot-importing:
//
//	var (
//	    DIV  = choc.DIV
//	    SPAN = choc.SPAN
//	    PATH = choc.NSTag("svg", "path")
//	) //autoimport
//
//	func render(item string) *choc.Node {
//	    return DIV(choc.Attrs{"class": "item"}, SPAN(item))
//	}
//
// Attributes are passed as an Attrs map; keys carrying the "data-"
// prefix land in the node's dataset, everything else becomes a direct
// property. Content arguments may be strings, numbers, nodes, or
// nested lists; empty strings are dropped.
package choc
