// Package ops assembles the operations center: the entity store, the
// dispatch and alerting coordinators, and the simulation feed, behind
// the command surface the presentation layer talks to.
package ops

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/metricz"

	"github.com/crowdsentry/sentinel/pkg/alerting"
	"github.com/crowdsentry/sentinel/pkg/config"
	"github.com/crowdsentry/sentinel/pkg/dispatch"
	"github.com/crowdsentry/sentinel/pkg/models"
	"github.com/crowdsentry/sentinel/pkg/simfeed"
	"github.com/crowdsentry/sentinel/pkg/store"
)

// Center is the running coordination core for one venue.
type Center struct {
	store      *store.Store
	dispatcher *dispatch.Coordinator
	alerts     *alerting.Lifecycle
	feed       *simfeed.Feed

	shutdownOnce sync.Once
}

// Option configures a Center.
type Option func(*options)

type options struct {
	clock clockz.Clock
	rng   *rand.Rand
}

// WithClock sets the clock used for timestamps and feed timers.
func WithClock(clock clockz.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithRand sets the simulation randomness source.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// New seeds a center from a scenario. The scenario's entities become
// the initial committed state; the feed is created but not started.
func New(sc *config.Scenario, opts ...Option) (*Center, error) {
	if sc == nil {
		sc = config.Default()
	}

	o := options{clock: clockz.RealClock}
	for _, opt := range opts {
		opt(&o)
	}

	seed := &store.State{
		Units:        sc.Units,
		Incidents:    sc.Incidents,
		Alerts:       sc.Alerts,
		Cameras:      sc.Cameras,
		Zones:        sc.Zones,
		CrowdDensity: sc.CrowdDensity,
	}

	s, err := store.New(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to seed store from scenario %s: %w", sc.Name, err)
	}

	alerts := alerting.NewLifecycle(s, o.clock.Now)

	feedOpts := []simfeed.Option{simfeed.WithClock(o.clock)}
	if o.rng != nil {
		feedOpts = append(feedOpts, simfeed.WithRand(o.rng))
	}

	return &Center{
		store:      s,
		dispatcher: dispatch.NewCoordinator(s, o.clock.Now),
		alerts:     alerts,
		feed:       simfeed.New(s, alerts, sc.Feed, feedOpts...),
	}, nil
}

// Start launches the simulation feed.
func (c *Center) Start(ctx context.Context) {
	c.feed.Start(ctx)
}

// Shutdown stops the feed timers and waits for any in-flight tick, then
// releases event hooks. The store remains readable and fully committed.
func (c *Center) Shutdown() {
	c.shutdownOnce.Do(func() {
		c.feed.Stop()
		c.store.Close()
	})
}

// Snapshot returns the current immutable view of all collections.
func (c *Center) Snapshot() *store.State {
	return c.store.Snapshot()
}

// DispatchUnit sends a unit to respond, optionally attaching it to an
// incident.
func (c *Center) DispatchUnit(unitID, incidentID string) error {
	return c.dispatcher.Dispatch(unitID, incidentID)
}

// ResolveIncident closes an incident and releases its units.
func (c *Center) ResolveIncident(incidentID string) error {
	return c.dispatcher.Resolve(incidentID)
}

// AcknowledgeAlert marks an alert as seen. Idempotent.
func (c *Center) AcknowledgeAlert(alertID string) error {
	return c.alerts.Acknowledge(alertID)
}

// ClearAllAlerts acknowledges every alert in one step.
func (c *Center) ClearAllAlerts() error {
	return c.alerts.ClearAll()
}

// ComposeMessage validates and records an operator message.
func (c *Center) ComposeMessage(draft alerting.Draft) (models.Message, error) {
	return c.alerts.Compose(draft)
}

// AcknowledgeMessage records that the actor has seen the message.
func (c *Center) AcknowledgeMessage(messageID, actorID string) error {
	return c.alerts.AcknowledgeMessage(messageID, actorID)
}

// ReportCameraEvent forwards a detection from the camera-feed UI into
// the alert lifecycle. The camera must exist and be online.
func (c *Center) ReportCameraEvent(cameraID, eventType string) (models.Alert, error) {
	st := c.store.Snapshot()
	cam := st.Camera(cameraID)
	if cam == nil {
		return models.Alert{}, fmt.Errorf("camera %s: %w", cameraID, store.ErrNotFound)
	}
	if cam.Status != models.CameraOnline {
		return models.Alert{}, fmt.Errorf("camera %s is %s: %w", cameraID, cam.Status, store.ErrValidation)
	}

	return c.alerts.Raise(alerting.NewCameraAlert(cameraID, eventType))
}

// Metrics returns the store's metric registry.
func (c *Center) Metrics() *metricz.Registry {
	return c.store.Metrics()
}

// OnCommitted registers a handler invoked after every store commit.
func (c *Center) OnCommitted(handler func(context.Context, store.Event) error) error {
	return c.store.OnCommitted(handler)
}
