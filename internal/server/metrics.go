// Package server provides the HTTP service for devacia-os.
package server

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// serviceMetrics holds the OpenTelemetry instruments for the service.
type serviceMetrics struct {
	requests     metric.Int64Counter
	authFailures metric.Int64Counter
	agentCalls   metric.Int64Counter
}

// newServiceMetrics creates the instruments on the global meter provider.
// Instrument creation failures are logged and leave the counter nil; the
// recording helpers treat nil as a no-op.
func newServiceMetrics() *serviceMetrics {
	meter := otel.Meter("github.com/devacia/devacia-os/internal/server")
	m := &serviceMetrics{}

	var err error
	if m.requests, err = meter.Int64Counter("devacia.http.requests",
		metric.WithDescription("HTTP requests served, by route and status")); err != nil {
		log.Warn().Err(err).Msg("Failed to create request counter")
	}
	if m.authFailures, err = meter.Int64Counter("devacia.auth.failures",
		metric.WithDescription("Requests refused by the shared-secret gate")); err != nil {
		log.Warn().Err(err).Msg("Failed to create auth failure counter")
	}
	if m.agentCalls, err = meter.Int64Counter("devacia.agent.calls",
		metric.WithDescription("External tool adapter calls, by tool and outcome")); err != nil {
		log.Warn().Err(err).Msg("Failed to create agent call counter")
	}
	return m
}

func (m *serviceMetrics) recordRequest(ctx context.Context, route string, status int) {
	if m.requests == nil {
		return
	}
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status", status),
	))
}

func (m *serviceMetrics) recordAuthFailure(ctx context.Context) {
	if m.authFailures == nil {
		return
	}
	m.authFailures.Add(ctx, 1)
}

func (m *serviceMetrics) recordAgentCall(ctx context.Context, tool string, err error) {
	if m.agentCalls == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.agentCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	))
}
