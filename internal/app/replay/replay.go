// Package replay drives state containers with a shared operation sequence
// and checks that their observable snapshot sequences agree.
package replay

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/statedemo/internal/container/provider"
	"github.com/alexisbeaulieu97/statedemo/internal/container/store"
	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/statedemo/internal/ports"
	"github.com/alexisbeaulieu97/statedemo/pkg/diff"
)

// Variant selects which containers a replay runs against.
type Variant string

const (
	VariantBoth    Variant = "both"
	VariantContext Variant = Variant(provider.Name)
	VariantStore   Variant = Variant(store.Name)
)

// ParseVariant resolves a variant name; the empty string means both.
func ParseVariant(value string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(value))) {
	case "", VariantBoth:
		return VariantBoth, nil
	case VariantContext:
		return VariantContext, nil
	case VariantStore:
		return VariantStore, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want both, context or store)", value)
	}
}

// Trace is what one container went through during a replay. Snapshots[0]
// is the initial state and Snapshots[i] the state after operation i.
// Notifications holds an entry for every watched field only.
type Trace struct {
	Container     string
	Snapshots     []appstate.Snapshot
	Notifications map[appstate.Field]int
}

// Final returns the last recorded snapshot.
func (t Trace) Final() appstate.Snapshot {
	if len(t.Snapshots) == 0 {
		return appstate.InitialSnapshot()
	}
	return t.Snapshots[len(t.Snapshots)-1]
}

// Text lists the snapshots one per line as count/theme.
func (t Trace) Text() string {
	var b strings.Builder
	for _, s := range t.Snapshots {
		fmt.Fprintf(&b, "%d/%s\n", s.Count, s.Theme)
	}
	return b.String()
}

func (t Trace) notificationText() string {
	var b strings.Builder
	for _, field := range appstate.Fields() {
		if n, ok := t.Notifications[field]; ok {
			fmt.Fprintf(&b, "%s=%d\n", field, n)
		}
	}
	return b.String()
}

// Result collects the traces of a replay.
type Result struct {
	Operations []appstate.Operation
	Traces     []Trace
}

// Service runs replays.
type Service struct {
	logger    ports.Logger
	publisher ports.EventPublisher
	fields    []appstate.Field
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger passed to the service and to the containers it builds.
func WithLogger(logger ports.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPublisher routes container events to publisher.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithFields limits the fields whose notifications are counted and
// compared. No fields means all of them; repeats are dropped.
func WithFields(fields ...appstate.Field) Option {
	return func(s *Service) {
		if len(fields) == 0 {
			return
		}
		seen := make(map[appstate.Field]bool, len(fields))
		s.fields = s.fields[:0:0]
		for _, field := range fields {
			if !seen[field] {
				seen[field] = true
				s.fields = append(s.fields, field)
			}
		}
	}
}

// NewService constructs a replay service.
func NewService(opts ...Option) *Service {
	s := &Service{logger: logging.NewNoOpLogger(), fields: appstate.Fields()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Containers builds fresh containers for variant, wired to the service's
// logger and publisher. Events carry ctx so correlation ids propagate.
func (s *Service) Containers(ctx context.Context, variant Variant) ([]ports.Container, error) {
	newProvider := func() ports.Container {
		return provider.New(
			provider.WithLogger(s.logger),
			provider.WithPublisher(s.publisher),
			provider.WithEventContext(ctx),
		)
	}
	newStore := func() ports.Container {
		return store.Configure(
			store.WithLogger(s.logger),
			store.WithPublisher(s.publisher),
			store.WithEventContext(ctx),
		).Container()
	}

	switch variant {
	case VariantBoth, "":
		return []ports.Container{newProvider(), newStore()}, nil
	case VariantContext:
		return []ports.Container{newProvider()}, nil
	case VariantStore:
		return []ports.Container{newStore()}, nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

// Replay builds the containers for variant and runs ops against them.
func (s *Service) Replay(ctx context.Context, variant Variant, ops []appstate.Operation) (*Result, error) {
	containers, err := s.Containers(ctx, variant)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, ops, containers...)
}

// Run applies ops to every container in order. Every container must support
// every operation; otherwise nothing runs and an UNSUPPORTED_OPERATION error
// is returned. When more than one container is given the traces are compared
// and the first disagreement is returned as a DIVERGENCE error together with
// the result.
func (s *Service) Run(ctx context.Context, ops []appstate.Operation, containers ...ports.Container) (*Result, error) {
	if len(containers) == 0 {
		return nil, fmt.Errorf("replay needs at least one container")
	}
	for _, c := range containers {
		for _, op := range ops {
			if !c.Supports(op) {
				err := appstate.NewUnsupportedOperationError(c.Name(), op)
				s.logger.Warn(ctx, "replay rejected", "container", c.Name(), "operation", string(op))
				return nil, err
			}
		}
	}

	s.logger.Info(ctx, "replay started", "operations", len(ops), "containers", len(containers))

	result := &Result{
		Operations: append([]appstate.Operation(nil), ops...),
		Traces:     make([]Trace, 0, len(containers)),
	}
	for _, c := range containers {
		result.Traces = append(result.Traces, record(c, ops, s.fields))
	}

	if err := Compare(result.Traces); err != nil {
		s.logger.Error(ctx, "replay diverged", "error", err)
		return result, err
	}

	s.logger.Info(ctx, "replay finished", "final_count", result.Traces[0].Final().Count, "final_theme", result.Traces[0].Final().Theme.String())
	return result, nil
}

func record(c ports.Container, ops []appstate.Operation, fields []appstate.Field) Trace {
	trace := Trace{
		Container:     c.Name(),
		Snapshots:     make([]appstate.Snapshot, 0, len(ops)+1),
		Notifications: make(map[appstate.Field]int, len(fields)),
	}

	var unsubscribers []func()
	for _, field := range fields {
		field := field
		trace.Notifications[field] = 0
		unsubscribers = append(unsubscribers, c.Subscribe(field, func(appstate.Snapshot) {
			trace.Notifications[field]++
		}))
	}
	defer func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}()

	trace.Snapshots = append(trace.Snapshots, c.Snapshot())
	for _, op := range ops {
		c.Apply(op)
		trace.Snapshots = append(trace.Snapshots, c.Snapshot())
	}
	return trace
}

// Compare checks every trace against the first and reports the earliest step
// at which they disagree. Notification counts are compared as well.
func Compare(traces []Trace) error {
	if len(traces) < 2 {
		return nil
	}
	reference := traces[0]
	for _, other := range traces[1:] {
		steps := len(reference.Snapshots)
		if len(other.Snapshots) > steps {
			steps = len(other.Snapshots)
		}
		for step := 0; step < steps; step++ {
			left, lok := snapshotAt(reference, step)
			right, rok := snapshotAt(other, step)
			if lok != rok || left != right {
				return appstate.NewDivergenceError(step, reference.Container, other.Container,
					diff.Unified(reference.Text(), other.Text(), reference.Container, other.Container))
			}
		}
		if left, right := reference.notificationText(), other.notificationText(); left != right {
			return appstate.NewDivergenceError(steps-1, reference.Container, other.Container,
				diff.Unified(left, right, reference.Container, other.Container))
		}
	}
	return nil
}

func snapshotAt(t Trace, step int) (appstate.Snapshot, bool) {
	if step >= len(t.Snapshots) {
		return appstate.Snapshot{}, false
	}
	return t.Snapshots[step], true
}
