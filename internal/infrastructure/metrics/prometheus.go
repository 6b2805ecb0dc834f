package metrics

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

// Metric names, without namespace.
const (
	TransitionsTotal   = "transitions_total"
	NotificationsTotal = "notifications_total"
	IgnoredTotal       = "ignored_total"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace prefixes every metric (default: "statedemo").
	Namespace string
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace. Empty keeps the default.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		if namespace != "" {
			c.Namespace = namespace
		}
	}
}

// Collector implements ports.MetricsCollector on Prometheus counters.
type Collector struct {
	registry *prometheus.Registry
	counters map[string]*prometheus.CounterVec
}

// NewCollector registers the transition, notification and ignored-request
// counters on a registry of its own, so separate runs never share counts.
func NewCollector(opts ...Option) *Collector {
	cfg := Config{Namespace: "statedemo"}
	for _, opt := range opts {
		opt(&cfg)
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Collector{
		registry: registry,
		counters: map[string]*prometheus.CounterVec{
			TransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      TransitionsTotal,
				Help:      "Total number of state transitions applied",
			}, []string{"container", "operation"}),
			NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      NotificationsTotal,
				Help:      "Total number of field subscribers notified",
			}, []string{"container", "field"}),
			IgnoredTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      IgnoredTotal,
				Help:      "Total number of requests a container declined",
			}, []string{"container", "reason"}),
		},
	}
}

// IncCounter increments the named counter. Unknown names and mismatched
// label sets are dropped.
func (c *Collector) IncCounter(_ context.Context, name string, labels map[string]string) {
	if c == nil {
		return
	}
	vec, ok := c.counters[name]
	if !ok {
		return
	}
	counter, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return
	}
	counter.Inc()
}

// CounterValue returns the current value of the named counter, or zero.
func (c *Collector) CounterValue(name string, labels map[string]string) float64 {
	if c == nil {
		return 0
	}
	vec, ok := c.counters[name]
	if !ok {
		return 0
	}
	counter, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return 0
	}
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}

// Observe subscribes the collector to container events on publisher.
func (c *Collector) Observe(publisher ports.EventPublisher) ([]ports.Subscription, error) {
	handlers := map[string]ports.EventHandler{
		ports.EventStateTransition: func(ctx context.Context, event ports.DomainEvent) error {
			e, ok := event.(ports.TransitionEvent)
			if !ok {
				return fmt.Errorf("unexpected event %T", event)
			}
			c.IncCounter(ctx, TransitionsTotal, map[string]string{"container": e.Container, "operation": e.Operation})
			return nil
		},
		ports.EventStateNotified: func(ctx context.Context, event ports.DomainEvent) error {
			e, ok := event.(ports.NotificationEvent)
			if !ok {
				return fmt.Errorf("unexpected event %T", event)
			}
			c.IncCounter(ctx, NotificationsTotal, map[string]string{"container": e.Container, "field": e.Field})
			return nil
		},
		ports.EventActionIgnored: func(ctx context.Context, event ports.DomainEvent) error {
			e, ok := event.(ports.IgnoredEvent)
			if !ok {
				return fmt.Errorf("unexpected event %T", event)
			}
			c.IncCounter(ctx, IgnoredTotal, map[string]string{"container": e.Container, "reason": e.Reason})
			return nil
		},
	}

	types := make([]string, 0, len(handlers))
	for eventType := range handlers {
		types = append(types, eventType)
	}
	sort.Strings(types)

	subs := make([]ports.Subscription, 0, len(types))
	for _, eventType := range types {
		sub, err := publisher.Subscribe(eventType, handlers[eventType])
		if err != nil {
			for _, existing := range subs {
				existing.Unsubscribe()
			}
			return nil, fmt.Errorf("subscribe %s: %w", eventType, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("write metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}

var _ ports.MetricsCollector = (*Collector)(nil)
