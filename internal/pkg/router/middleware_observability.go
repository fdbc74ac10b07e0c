package router

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const maxLoggedBodyBytes = 32 * 1024

// statusRecorder captures the status, size and (up to maxLoggedBodyBytes)
// body of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
	body   bytes.Buffer
	capped bool
	err    error
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if remaining := maxLoggedBodyBytes - w.body.Len(); remaining < len(p) {
		w.capped = true
		p2 := p[:max(remaining, 0)]
		w.body.Write(p2)
	} else {
		w.body.Write(p)
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) SetError(err error) {
	w.err = err
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusRecorder) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func matchedRoutePath(r *http.Request) string {
	if pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); pattern != "" {
		return pattern
	}
	return r.URL.Path
}

const (
	omittedBinaryBody    = "<binary body omitted>"
	omittedMultipartBody = "<multipart body omitted>"
	omittedSecretBody    = "<unparsed body with masked fields omitted>"
	omittedFilePart      = "<file omitted>"
)

// loggableBody turns a captured body into something safe to log: masked JSON,
// masked form values, or plain text. Text that cannot be parsed is dropped
// when it mentions a masked field.
func loggableBody(masker instrument.Masker, contentType string, body []byte, capped bool) any {
	if len(body) == 0 {
		return nil
	}

	mediaType, params, _ := mime.ParseMediaType(contentType)

	var out any
	switch {
	case mediaType == "multipart/form-data":
		if capped {
			return omittedMultipartBody
		}
		out = maskedMultipart(masker, params["boundary"], body)
	case mediaType == "application/x-www-form-urlencoded":
		if values, err := url.ParseQuery(string(body)); err == nil && !capped {
			out = masker.Value(map[string][]string(values))
		}
	default:
		if masked, ok := masker.JSON(body); ok {
			out = masked
		}
	}

	if out == nil {
		if !utf8.Valid(body) {
			return omittedBinaryBody
		}
		if masker.Mentioned(string(body)) {
			return omittedSecretBody
		}
		out = string(body)
	}

	if capped {
		return map[string]any{"body": out, "truncated": true}
	}
	return out
}

// maskedMultipart reads the form parts of body. File parts are replaced by a
// placeholder and the whole body is dropped when it cannot be parsed.
func maskedMultipart(masker instrument.Masker, boundary string, body []byte) any {
	if boundary == "" {
		return omittedMultipartBody
	}

	values := map[string][]string{}
	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return omittedMultipartBody
		}

		name := part.FormName()
		if name == "" {
			continue
		}
		if part.FileName() != "" {
			values[name] = append(values[name], omittedFilePart)
			continue
		}

		value, err := io.ReadAll(part)
		if err != nil {
			return omittedMultipartBody
		}
		values[name] = append(values[name], string(value))
	}

	return masker.Value(values)
}

func readRequestBody(r *http.Request) ([]byte, bool) {
	if r.Body == nil {
		return nil, false
	}

	//nolint:errcheck // best effort for logging only
	head, _ := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodyBytes+1))
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(head), r.Body))

	if len(head) > maxLoggedBodyBytes {
		return head[:maxLoggedBodyBytes], true
	}
	return head, false
}

func middlewareObservability(ins instrument.Instrumentation, masker instrument.Masker) Middleware {
	tracer := ins.Tracer("http.server")
	meter := ins.Meter("http.server")

	requestCounter, err := meter.Int64Counter("http.server.requests", metric.WithDescription("Number of HTTP requests received"))
	if err != nil {
		slog.Error("failed to create http request counter", "error", err)
	}

	durationHistogram, err := meter.Float64Histogram("http.server.duration", metric.WithDescription("HTTP request duration in milliseconds"))
	if err != nil {
		slog.Error("failed to create http duration histogram", "error", err)
	}

	headers := func(h http.Header) map[string]any {
		return masker.Value(map[string][]string(h)).(map[string]any)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			start := time.Now()

			ctx, span := tracer.Start(r.Context(), r.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.HTTPRouteKey.String(route),
				),
			)
			defer span.End()

			reqBody, reqCapped := readRequestBody(r)
			slog.InfoContext(ctx, "request received",
				"method", r.Method,
				"path", route,
				"uri", r.RequestURI,
				"client_ip", r.RemoteAddr,
				"headers", headers(r.Header),
				"body", loggableBody(masker, r.Header.Get("Content-Type"), reqBody, reqCapped),
			)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.statusCode()
			latency := time.Since(start)

			attrs := []attribute.KeyValue{
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRouteKey.String(route),
				semconv.HTTPResponseStatusCodeKey.Int(status),
			}

			if rec.err != nil {
				span.RecordError(rec.err)
			}
			switch {
			case status >= http.StatusInternalServerError && rec.err != nil:
				span.SetStatus(codes.Error, rec.err.Error())
			case status >= http.StatusInternalServerError:
				span.SetStatus(codes.Error, http.StatusText(status))
			default:
				span.SetStatus(codes.Ok, "")
			}
			span.SetAttributes(append(attrs,
				semconv.ServerAddressKey.String(r.Host),
				attribute.String("http.user_agent", r.UserAgent()),
				attribute.Int("http.response_content_length", rec.bytes),
			)...)

			if requestCounter != nil {
				requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			}
			if durationHistogram != nil {
				durationHistogram.Record(ctx, float64(latency.Milliseconds()), metric.WithAttributes(attrs...))
			}

			slog.InfoContext(ctx, "response sent",
				"method", r.Method,
				"path", route,
				"status", status,
				"bytes", rec.bytes,
				"latency_ms", latency.Milliseconds(),
				"body", loggableBody(masker, rec.Header().Get("Content-Type"), rec.body.Bytes(), rec.capped),
			)
		})
	}
}
