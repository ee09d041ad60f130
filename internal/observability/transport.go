package observability

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Transport wraps outbound calls with a client span and upstream metrics.
// Query strings are never recorded since they carry the API key.
type Transport struct {
	Base   http.RoundTripper
	Tracer oteltrace.Tracer
}

func NewTransport(base http.RoundTripper, tracer oteltrace.Tracer) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if tracer == nil {
		tracer = otel.Tracer("owm")
	}
	return &Transport{Base: base, Tracer: tracer}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	endpoint := req.URL.Path
	ctx, span := t.Tracer.Start(req.Context(), req.Method+" "+req.URL.Host+endpoint,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("net.peer.name", req.URL.Host),
		attribute.String("http.route", endpoint),
	)
	out := req.Clone(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(out.Header))

	start := time.Now()
	resp, err := t.Base.RoundTrip(out)
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		upstreamCounter.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	outcome := "ok"
	if resp.StatusCode != http.StatusOK {
		outcome = "status_" + strconv.Itoa(resp.StatusCode)
		span.SetStatus(codes.Error, resp.Status)
	}
	upstreamCounter.WithLabelValues(endpoint, outcome).Inc()
	return resp, nil
}
