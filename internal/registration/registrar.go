package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/tracing"
)

// Registrar sends a registration request. A non-nil error means no response
// was obtained (transport failure, timeout, cancellation); any response,
// including a rejection, is reported through Result.
type Registrar interface {
	Register(ctx context.Context, p Payload) (Result, error)
}

// RegistrarFunc adapts a function to the Registrar interface.
type RegistrarFunc func(ctx context.Context, p Payload) (Result, error)

// Register calls f.
func (f RegistrarFunc) Register(ctx context.Context, p Payload) (Result, error) {
	return f(ctx, p)
}

// maxResponseBody caps how much of an error response is read.
const maxResponseBody = 64 << 10

// RequestIDHeader carries the submission id to the service.
const RequestIDHeader = "X-Request-ID"

// HTTPRegistrar posts the payload as JSON to the registration endpoint.
type HTTPRegistrar struct {
	client   *http.Client
	endpoint string
	tracer   trace.Tracer
}

// HTTPOption configures an HTTPRegistrar.
type HTTPOption func(*HTTPRegistrar)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(r *HTTPRegistrar) { r.client = c }
}

// WithTracer sets the tracer used for the request span.
func WithTracer(t trace.Tracer) HTTPOption {
	return func(r *HTTPRegistrar) { r.tracer = t }
}

// NewHTTPRegistrar builds a registrar for baseURL joined with path.
func NewHTTPRegistrar(baseURL, path string, opts ...HTTPOption) (*HTTPRegistrar, error) {
	endpoint, err := url.JoinPath(baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid registration endpoint: %w", err)
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid registration endpoint %q", endpoint)
	}

	r := &HTTPRegistrar{
		client:   &http.Client{Transport: http.DefaultTransport},
		endpoint: endpoint,
		tracer:   otel.Tracer("signup/registration"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Endpoint returns the resolved request URL.
func (r *HTTPRegistrar) Endpoint() string {
	return r.endpoint
}

// Register implements Registrar.
func (r *HTTPRegistrar) Register(ctx context.Context, p Payload) (Result, error) {
	id := SubmissionIDFrom(ctx)
	ctx, span := r.tracer.Start(ctx, tracing.SpanRegister,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrSubmissionID, id),
			attribute.String(tracing.AttrEmailDomain, log.EmailDomain(p.Email)),
		),
	)
	defer span.End()

	body, err := json.Marshal(p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode payload")
		return Result{}, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		log.ErrorErr(log.CatHTTP, "Registration request failed", err, "id", id, "endpoint", r.endpoint)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return Result{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		log.Warn(log.CatHTTP, "Reading response body failed", "id", id, "status", resp.StatusCode, "error", err)
	}

	result := FromStatus(resp.StatusCode, "")
	if result.Kind == KindFailure {
		result.Detail = parseDetail(raw)
		span.SetStatus(codes.Error, "rejected")
	}
	span.SetAttributes(
		attribute.Int(tracing.AttrStatusCode, resp.StatusCode),
		attribute.String(tracing.AttrOutcome, result.Kind.String()),
	)
	log.Info(log.CatHTTP, "Registration response",
		"id", id, "status", resp.StatusCode, "kind", result.Kind, "elapsed", time.Since(start))
	return result, nil
}

// parseDetail extracts the "detail" member of an error body. A string is
// returned as is; a list of {"msg": ...} objects is joined with "; ".
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(body) == 0 || json.Unmarshal(body, &envelope) != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if m := strings.TrimSpace(it.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

type submissionIDKey struct{}

// WithSubmissionID attaches a submission id to ctx.
func WithSubmissionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionIDKey{}, id)
}

// SubmissionIDFrom returns the submission id attached to ctx, or "".
func SubmissionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(submissionIDKey{}).(string)
	return id
}
