// Package store holds the canonical entity collections for the
// operations center. All writers funnel through a single mutex and
// commit copy-on-write: a mutation runs against a clone of the current
// state and only replaces it after the invariant check passes, so
// readers always see a fully consistent version and a failed mutation
// leaves no trace.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"

	"github.com/crowdsentry/sentinel/pkg/logger"
)

// Metrics exposed by the store registry.
const (
	CommitsTotal  = metricz.Key("store.commits.total")
	RejectedTotal = metricz.Key("store.rejected.total")
	CrowdDensity  = metricz.Key("store.crowd_density")
	AlertsTotal   = metricz.Key("store.alerts.raised.total")
	MessagesTotal = metricz.Key("store.messages.composed.total")
	DispatchTotal = metricz.Key("store.dispatches.total")
)

// EventCommitted fires after every successful commit.
const EventCommitted = hookz.Key("store.committed")

// Event is the payload delivered to commit subscribers.
type Event struct {
	// Reason tags which operation produced the commit, e.g. "dispatch"
	// or "telemetry_tick".
	Reason string
	At     time.Time
}

// Store owns the committed state and serializes every mutation.
type Store struct {
	mu      sync.Mutex
	state   *State
	metrics *metricz.Registry
	hooks   *hookz.Hooks[Event]
}

// New creates a store seeded with the given state. The seed is cloned;
// the caller keeps no alias into the store. Seed states must already
// satisfy the entity invariants.
func New(seed *State) (*Store, error) {
	if seed == nil {
		seed = &State{}
	}
	committed := seed.Clone()
	if err := checkInvariants(committed); err != nil {
		return nil, err
	}

	registry := metricz.New()
	registry.Counter(CommitsTotal)
	registry.Counter(RejectedTotal)
	registry.Counter(AlertsTotal)
	registry.Counter(MessagesTotal)
	registry.Counter(DispatchTotal)
	registry.Gauge(CrowdDensity).Set(committed.CrowdDensity)

	return &Store{
		state:   committed,
		metrics: registry,
		hooks:   hookz.New[Event](),
	}, nil
}

// Snapshot returns a deep copy of the committed state. Later commits
// never alias the returned value.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Apply runs the mutation against a clone of the committed state and
// commits the clone if both the mutation and the invariant check
// succeed. Any error discards the clone, so partial edits are never
// observable. The reason tags the resulting commit event.
func (s *Store) Apply(reason string, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		s.metrics.Counter(RejectedTotal).Inc()
		return err
	}
	if err := checkInvariants(next); err != nil {
		s.metrics.Counter(RejectedTotal).Inc()
		logger.Errorf("store: rejected %s commit: %v", reason, err)
		return err
	}

	s.state = next
	s.metrics.Counter(CommitsTotal).Inc()
	s.metrics.Gauge(CrowdDensity).Set(next.CrowdDensity)

	_ = s.hooks.Emit(context.Background(), EventCommitted, Event{
		Reason: reason,
		At:     time.Now(),
	})

	return nil
}

// OnCommitted registers a handler for commit events.
func (s *Store) OnCommitted(handler func(context.Context, Event) error) error {
	_, err := s.hooks.Hook(EventCommitted, handler)
	return err
}

// Metrics returns the store's metric registry.
func (s *Store) Metrics() *metricz.Registry {
	return s.metrics
}

// Close releases the event hooks. The state itself stays readable.
func (s *Store) Close() {
	s.hooks.Close()
}
