package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/Rosuav/Choc/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces if not specified.
	Indent string
}

// Renderer turns dom.Node trees into HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// HTML renders a node with the default configuration.
func HTML(node *dom.Node) string {
	s, _ := NewRenderer(RendererConfig{}).RenderToString(node)
	return s
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0, "")
}

// renderNode dispatches rendering based on node kind. ns is the
// namespace inherited from the enclosing element.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int, ns string) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node, depth, ns)
	case dom.KindText:
		return r.renderText(w, node)
	case dom.KindFragment:
		return r.renderFragment(w, node, depth, ns)
	case dom.KindRaw:
		return r.renderRaw(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int, ns string) error {
	tag := node.Tag

	// Indentation (if pretty printing)
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	// Opening tag
	if _, err := w.Write([]byte{'<'}); err != nil {
		return err
	}
	if _, err := w.Write([]byte(tag)); err != nil {
		return err
	}

	// Declare the namespace where it changes
	if node.Namespace != "" && node.Namespace != ns {
		if uri := namespaceURI(node.Namespace); uri != "" {
			if _, err := fmt.Fprintf(w, ` xmlns="%s"`, uri); err != nil {
				return err
			}
		}
	}

	// Render attributes
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	// Self-closing check for void elements
	if dom.IsVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	// Children inherit this element's namespace
	childNS := ns
	if node.Namespace != "" {
		childNS = node.Namespace
	}

	// Newline after opening tag if has children and pretty printing
	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	// Render children
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1, childNS); err != nil {
			return err
		}
	}

	// Closing tag indentation
	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	// Closing tag
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *dom.Node) error {
	escaped := escapeHTML(node.Text)
	_, err := w.Write([]byte(escaped))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *dom.Node, depth int, ns string) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth, ns); err != nil {
			return err
		}
	}
	return nil
}

// renderRaw renders raw HTML without escaping.
func (r *Renderer) renderRaw(w io.Writer, node *dom.Node) error {
	_, err := w.Write([]byte(node.Text))
	return err
}

// renderAttributes renders props and dataset entries for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *dom.Node) error {
	if len(node.Props) == 0 && len(node.Dataset) == 0 {
		return nil
	}

	// Merge props and dataset under their attribute names, then sort
	// for deterministic output.
	attrs := make(map[string]any, len(node.Props)+len(node.Dataset))
	for key, value := range node.Props {
		if key == "key" {
			continue // Reconciliation key, not a real attribute
		}
		attrs[key] = value
	}
	for key, value := range node.Dataset {
		attrs[dom.DatasetPrefix+key] = value
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := attrs[key]

		// Boolean attributes render as a bare name
		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		// Regular attributes
		strValue := attrToString(value)
		if strValue != "" {
			escaped := escapeAttr(strValue)
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escaped); err != nil {
				return err
			}
		}
	}

	return nil
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
