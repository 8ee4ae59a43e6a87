package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/leasedesk/leasedesk/internal/services/web/guard"
	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/httpx"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/weberror"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/leasedesk/leasedesk/internal/services/web/app"

	navigateSpanName    = "web.navigate"
	decisionCounterName = "web.navigation.decisions"

	attrRoute   = "web.route"
	attrOutcome = "web.outcome"

	outcomeNotFound = "not_found"
	unmatchedRoute  = "unmatched"
)

type navigatorConfig struct {
	deps           module.Dependencies
	views          map[route.View]http.Handler
	session        func(*http.Request) guard.Session
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// navigator resolves page requests against the route table and runs the
// guard before any view handler sees the request.
type navigator struct {
	deps      module.Dependencies
	views     map[route.View]http.Handler
	session   func(*http.Request) guard.Session
	tracer    trace.Tracer
	decisions metric.Int64Counter
}

func newNavigator(cfg navigatorConfig) (*navigator, error) {
	meter := defaultMeterProvider(cfg.meterProvider).Meter(instrumentationName)
	decisions, err := meter.Int64Counter(
		decisionCounterName,
		metric.WithDescription("Navigation guard decisions by route and outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", decisionCounterName, err)
	}
	return &navigator{
		deps:      cfg.deps,
		views:     cfg.views,
		session:   cfg.session,
		tracer:    defaultTracerProvider(cfg.tracerProvider).Tracer(instrumentationName),
		decisions: decisions,
	}, nil
}

func (n *navigator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := n.tracer.Start(r.Context(), navigateSpanName, trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()
	r = r.WithContext(ctx)

	match, ok := n.deps.Routes.Match(r.URL.RequestURI())
	if !ok {
		n.record(r, span, unmatchedRoute, outcomeNotFound)
		weberror.WriteAppError(w, r, http.StatusNotFound, n.deps)
		return
	}

	decision := guard.Check(match.Route, n.session(r))
	n.record(r, span, string(match.Route.Name), decision.Outcome())
	if !decision.Proceed() {
		location, err := n.deps.Routes.URL(decision.Redirect, nil)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "redirect target")
			log.Printf("navigate %s: resolve redirect %q: %v", r.URL.Path, decision.Redirect, err)
			weberror.WriteAppError(w, r, http.StatusInternalServerError, n.deps)
			return
		}
		httpx.WriteRedirect(w, r, location)
		return
	}

	handler, ok := n.views[match.Route.View]
	if !ok {
		weberror.WriteAppError(w, r, http.StatusNotFound, n.deps)
		return
	}
	for key, value := range match.Params {
		r.SetPathValue(key, value)
	}
	handler.ServeHTTP(w, r)
}

func (n *navigator) record(r *http.Request, span trace.Span, routeName string, outcome string) {
	attrs := []attribute.KeyValue{
		attribute.String(attrRoute, routeName),
		attribute.String(attrOutcome, outcome),
	}
	span.SetAttributes(attrs...)
	n.decisions.Add(r.Context(), 1, metric.WithAttributes(attrs...))
}
