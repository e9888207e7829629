// Package query runs CSS selector queries over document trees.
//
// Queries work by exporting the tree to x/net/html form, matching with
// compiled cascadia selectors through goquery, and mapping the matched
// nodes back to the originals. The returned nodes are the tree's own
// nodes; mutating them mutates the queried tree.
//
// Find returns every match in document order. First enforces a
// single-element contract: zero matches yield nil, more than one is an
// error. Matches tests one node in isolation.
package query
