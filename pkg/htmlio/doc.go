// Package htmlio converts between Choc node trees and the
// golang.org/x/net/html node type.
//
// Parse and ParseFragment build dom trees from markup, applying the
// same attribute routing as the element builder: data-* attributes
// land in the node's Dataset, everything else in Props. Export goes
// the other way and is what the query package feeds to its selector
// engine; ExportTracked additionally reports which exported node came
// from which dom node.
//
// Comments and doctypes are dropped on import. Documents and
// fragments become KindFragment nodes, so a full parse round-trips
// through the renderer without inventing wrapper elements.
package htmlio
