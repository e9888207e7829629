// Package render serializes document trees to HTML.
//
// The Renderer walks a dom.Node tree and writes HTML, handling the
// aspects of producing valid, secure output:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Dataset entries emitted as data-* attributes
//   - xmlns declarations for namespaced subtrees
//
// Props and dataset entries are written in sorted key order so output
// is deterministic.
//
// # Basic Usage
//
// To render a tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	err := renderer.RenderToWriter(w, node)
//
// The package-level HTML function renders with the default
// configuration and is convenient in tests and templates.
//
// # Documents
//
// RenderDocument wraps a body tree in a complete HTML document with
// DOCTYPE, html/head/body scaffolding, and optional stylesheet and
// script references.
package render
