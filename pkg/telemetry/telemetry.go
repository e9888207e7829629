package telemetry

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Rosuav/Choc/pkg/dom"
	"github.com/Rosuav/Choc/pkg/htmlio"
	"github.com/Rosuav/Choc/pkg/render"
)

// Renderer wraps a render.Renderer, recording metrics and a span
// around every render.
type Renderer struct {
	inner *render.Renderer
}

// NewRenderer wraps inner. A nil inner uses the default configuration.
func NewRenderer(inner *render.Renderer) *Renderer {
	if inner == nil {
		inner = render.NewRenderer(render.RendererConfig{})
	}
	return &Renderer{inner: inner}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(ctx context.Context, node *dom.Node) (string, error) {
	_, span := startSpan(ctx, spanRender, node)

	start := time.Now()
	out, err := r.inner.RenderToString(node)

	RecordRender(statusLabel(err), time.Since(start), len(out))
	endSpan(span, err, attribute.Int("choc.byte_size", len(out)))
	return out, err
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, node *dom.Node) error {
	_, span := startSpan(ctx, spanRender, node)

	cw := &countingWriter{w: w}
	start := time.Now()
	err := r.inner.RenderToWriter(cw, node)

	RecordRender(statusLabel(err), time.Since(start), cw.n)
	endSpan(span, err, attribute.Int("choc.byte_size", cw.n))
	return err
}

// ReplaceContent is dom.ReplaceContent with instrumentation: the
// operation, the number of patches applied, and a span.
func ReplaceContent(ctx context.Context, target *dom.Node, content ...dom.Content) *dom.Node {
	_, span := startSpan(ctx, spanReplaceContent, target)

	patches := dom.ContentPatches(target, dom.List(content))
	dom.Apply(patches)

	RecordReplaceContent(len(patches))
	endSpan(span, nil, attribute.Int("choc.patch_count", len(patches)))
	return target
}

// Parse is htmlio.Parse with instrumentation.
func Parse(ctx context.Context, r io.Reader) (*dom.Node, error) {
	_, span := startSpan(ctx, spanParse, nil)

	node, err := htmlio.Parse(r)

	RecordParse(statusLabel(err))
	endSpan(span, err, attribute.Int("choc.node_count", countNodes(node)))
	return node, err
}

// ParseFragment is htmlio.ParseFragment with instrumentation.
func ParseFragment(ctx context.Context, s string) (dom.List, error) {
	_, span := startSpan(ctx, spanParse, nil)

	list, err := htmlio.ParseFragment(s)

	count := 0
	for _, item := range list {
		if n, ok := item.(*dom.Node); ok {
			count += countNodes(n)
		}
	}

	RecordParse(statusLabel(err))
	endSpan(span, err, attribute.Int("choc.node_count", count))
	return list, err
}

// statusLabel maps an operation outcome to its metric label.
func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// countingWriter counts the bytes passed through to the underlying
// writer.
type countingWriter struct {
	w io.Writer
	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}
