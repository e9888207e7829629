// Package telemetry instruments document operations with Prometheus
// metrics and OpenTelemetry traces.
//
// Both systems are off until explicitly enabled; the core packages
// never record anything themselves. EnableMetrics registers the
// collectors, EnableTracing resolves a tracer from the global
// OpenTelemetry provider, and the wrappers here (Renderer,
// ReplaceContent, Parse, ParseFragment) record both signals around the
// underlying operations.
//
//	telemetry.EnableMetrics()
//	telemetry.EnableTracing()
//
//	r := telemetry.NewRenderer(nil)
//	html, err := r.RenderToString(ctx, page)
package telemetry
