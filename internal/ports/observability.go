package ports

import "context"

// MetricsCollector records quantitative observability signals. Standard
// metric names:
//   - statedemo_transitions_total{container="...", operation="..."}
//   - statedemo_notifications_total{container="...", field="..."}
//   - statedemo_ignored_total{container="...", reason="..."}
type MetricsCollector interface {
	IncCounter(ctx context.Context, name string, labels map[string]string)
	CounterValue(name string, labels map[string]string) float64
}
