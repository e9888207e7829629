package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rosuav/Choc/pkg/dom"
)

// Default tracer name for Choc instrumentation.
const defaultTracerName = "choc"

// Span names for the traced operations.
const (
	spanRender         = "choc.render"
	spanReplaceContent = "choc.replace_content"
	spanParse          = "choc.parse"
)

// TraceConfig configures the OpenTelemetry tracing.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "choc").
	TracerName string

	// AttributeExtractor extracts custom attributes from the node an
	// operation works on. Called for each traced operation; the node is
	// nil for parses.
	AttributeExtractor func(n *dom.Node) []attribute.KeyValue
}

// TraceOption configures the OpenTelemetry tracing.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(n *dom.Node) []attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultTraceConfig returns the default tracing configuration.
func defaultTraceConfig() TraceConfig {
	return TraceConfig{
		TracerName: defaultTracerName,
	}
}

// globalTracer is nil until EnableTracing resolves one; a nil tracer
// means the wrappers create no spans.
var (
	globalTracer    trace.Tracer
	globalExtractor func(n *dom.Node) []attribute.KeyValue
	globalTraceMu   sync.Mutex
)

// EnableTracing turns on span creation for the wrappers in this
// package. The tracer comes from the global OpenTelemetry provider, so
// configure that first:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
//	telemetry.EnableTracing(
//	    telemetry.WithTracerName("my-app"),
//	)
func EnableTracing(opts ...TraceOption) {
	config := defaultTraceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalTraceMu.Lock()
	globalTracer = otel.Tracer(config.TracerName)
	globalExtractor = config.AttributeExtractor
	globalTraceMu.Unlock()
}

// startSpan begins a span for an operation on n. Returns a nil span
// when tracing is not enabled; endSpan tolerates that.
func startSpan(ctx context.Context, name string, n *dom.Node, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	globalTraceMu.Lock()
	tracer := globalTracer
	extractor := globalExtractor
	globalTraceMu.Unlock()

	if tracer == nil {
		return ctx, nil
	}

	if n != nil {
		attrs = append(attrs,
			attribute.String("choc.tag", nodeLabel(n)),
			attribute.Int("choc.node_count", countNodes(n)),
		)
	}
	if extractor != nil {
		attrs = append(attrs, extractor(n)...)
	}

	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// endSpan records the outcome and ends the span.
func endSpan(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if span == nil {
		return
	}
	span.SetAttributes(attrs...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// nodeLabel names a node for span attributes.
func nodeLabel(n *dom.Node) string {
	if n.Kind == dom.KindElement {
		return n.Tag
	}
	return n.Kind.String()
}

// countNodes counts n and everything beneath it.
func countNodes(n *dom.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.Children {
		count += countNodes(child)
	}
	return count
}
