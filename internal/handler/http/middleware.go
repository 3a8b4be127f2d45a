package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"news-app/internal/handler/http/requestid"
	"news-app/internal/handler/http/respond"
	"news-app/internal/handler/http/responsewriter"
	"news-app/internal/observability/logging"
	"news-app/internal/observability/metrics"

	"go.opentelemetry.io/otel/trace"
)

// Logging returns middleware that logs HTTP requests with structured logging.
// It captures request details, response status, size, and processing duration.
// The logger is stored in the context for the error boundary, which adds
// request_id itself.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := r.Context()
			reqLogger := logging.WithRequestID(ctx, logger)
			r = r.WithContext(logging.WithLogger(ctx, logger))

			wrapped := responsewriter.Wrap(w)
			next.ServeHTTP(wrapped, r)

			span := trace.SpanFromContext(r.Context())
			traceID := span.SpanContext().TraceID().String()

			duration := time.Since(start)

			reqLogger.Info("request completed",
				slog.String("trace_id", traceID),
				slog.String("method", r.Method),
				slog.String("path", respond.SanitizeMessage(r.URL.Path)),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", respond.SanitizeMessage(r.Header.Get("User-Agent"))),
				slog.Int("status", wrapped.StatusCode()),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Duration("duration", duration),
				slog.String("duration_ms", fmt.Sprintf("%.2f", duration.Seconds()*1000)),
			)
		})
	}
}

// Recover returns middleware that catches panics and converts them into the
// generic 500 envelope. The panic value is logged sanitized; the stack goes
// to debug level only.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := responsewriter.Wrap(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// net/http がコネクションを中断するためのセンチネルはそのまま再送出
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				metrics.RecordPanicRecovered()
				logger.Debug("panic stack",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)

				if wrapped.HeaderWritten() {
					// Status already sent; nothing safe left to write.
					logger.Error("Server error",
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.String("error", respond.SanitizeMessage(fmt.Sprint(rec))),
						slog.Bool("response_started", true),
					)
					return
				}
				respond.ServerError(wrapped, r, panicError(rec))
			}()
			next.ServeHTTP(wrapped, r)
		})
	}
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}

// Chain applies middleware so that the first argument is outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
