// Package tracing provides OpenTelemetry tracing integration.
//
// InitTracerProvider installs the SDK provider at startup and Middleware opens
// one server span per request, returning its trace id in X-Trace-Id so clients
// can quote it when reporting problems.
//
// Example usage:
//
//	shutdown := tracing.InitTracerProvider("news-app", "1.0.0")
//	defer func() { _ = shutdown(context.Background()) }()
//
//	handler = tracing.Middleware(mux)
package tracing
