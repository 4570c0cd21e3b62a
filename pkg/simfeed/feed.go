// Package simfeed injects synthetic telemetry and detection events into
// the store on fixed intervals, standing in for live AI/sensor
// integrations. Tick bodies are plain methods over the store so a real
// adapter can replace the timers while keeping the same call contract.
package simfeed

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/crowdsentry/sentinel/pkg/alerting"
	"github.com/crowdsentry/sentinel/pkg/config"
	"github.com/crowdsentry/sentinel/pkg/logger"
	"github.com/crowdsentry/sentinel/pkg/models"
	"github.com/crowdsentry/sentinel/pkg/store"
)

// Drift magnitudes per telemetry tick.
const (
	positionDriftMax = 1.5
	densityDriftMax  = 2.5
)

// Feed drives the simulated telemetry and event ticks.
type Feed struct {
	store  *store.Store
	alerts *alerting.Lifecycle
	cfg    config.Feed
	clock  clockz.Clock
	rng    *rand.Rand

	stopOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup
}

// Option configures a Feed.
type Option func(*Feed)

// WithClock sets the clock driving the tick timers. Tests pass a fake
// clock to run ticks without real time.
func WithClock(clock clockz.Clock) Option {
	return func(f *Feed) { f.clock = clock }
}

// WithRand sets the randomness source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(f *Feed) { f.rng = rng }
}

// New creates a feed over the given store and alert lifecycle.
func New(s *store.Store, alerts *alerting.Lifecycle, cfg config.Feed, opts ...Option) *Feed {
	f := &Feed{
		store:  s,
		alerts: alerts,
		cfg:    cfg,
		clock:  clockz.RealClock,
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // simulation randomness
	}
	return f
}

// Start launches the tick loop. Both timers are served from one
// goroutine so ticks never interleave and share the randomness source
// safely.
func (f *Feed) Start(ctx context.Context) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		f.run(ctx)
	}()
}

// Stop prevents further ticks and waits for any in-flight tick to
// finish its commit. Safe to call more than once.
func (f *Feed) Stop() {
	f.stopOnce.Do(func() { close(f.stop) })
	f.wg.Wait()
}

func (f *Feed) run(ctx context.Context) {
	telemetry := f.clock.After(f.cfg.TelemetryTick)
	event := f.clock.After(f.cfg.EventTick)

	for {
		select {
		case <-ctx.Done():
			return
		case <-f.stop:
			return
		case <-telemetry:
			if err := f.TelemetryTick(); err != nil {
				logger.Errorf("simfeed: telemetry tick failed: %v", err)
			}
			telemetry = f.clock.After(f.cfg.TelemetryTick)
		case <-event:
			if err := f.EventTick(); err != nil {
				logger.Errorf("simfeed: event tick failed: %v", err)
			}
			event = f.clock.After(f.cfg.EventTick)
		}
	}
}

// TelemetryTick applies one round of simulated drift in a single
// commit: every unit's position takes an independent random walk
// clamped to the visible margin, and the crowd density metric drifts
// within its band.
func (f *Feed) TelemetryTick() error {
	now := f.clock.Now()
	return f.store.Apply("telemetry_tick", func(st *store.State) error {
		for i := range st.Units {
			u := &st.Units[i]
			dx := (f.rng.Float64() - 0.5) * 2 * positionDriftMax
			dy := (f.rng.Float64() - 0.5) * 2 * positionDriftMax
			u.Position = u.Position.Drifted(dx, dy)
			u.LastUpdate = now
		}

		delta := (f.rng.Float64() - 0.5) * 2 * densityDriftMax
		st.CrowdDensity = models.Clamp(st.CrowdDensity+delta, models.DensityMin, models.DensityMax)

		return nil
	})
}

// EventTick rolls the event dice once. When a source fires it either
// raises a camera detection alert (from an online camera) or delivers a
// catalogue inbound message via the alert lifecycle.
func (f *Feed) EventTick() error {
	if f.rng.Float64() >= f.cfg.EventProbability {
		return nil
	}

	if f.rng.Float64() < f.cfg.AlertProbability {
		return f.cameraEvent()
	}
	return f.messageEvent()
}

func (f *Feed) cameraEvent() error {
	st := f.store.Snapshot()
	online := st.OnlineCameras()
	if len(online) == 0 {
		return nil
	}

	cameraID := online[f.rng.Intn(len(online))]
	eventType := alerting.CameraEventTypes[f.rng.Intn(len(alerting.CameraEventTypes))]

	alert, err := f.alerts.Raise(alerting.NewCameraAlert(cameraID, eventType))
	if err != nil {
		return err
	}

	logger.Debugf("simfeed: camera %s raised %s (%s)", cameraID, eventType, alert.ID)
	return nil
}

func (f *Feed) messageEvent() error {
	draft := inboundMessages[f.rng.Intn(len(inboundMessages))]

	msg, err := f.alerts.Compose(draft)
	if err != nil {
		return err
	}

	// Simulated inbound traffic arrives already delivered.
	if err := f.alerts.MarkDelivered(msg.ID); err != nil {
		return err
	}

	logger.Debugf("simfeed: inbound message %s (%s)", msg.ID, msg.Type)
	return nil
}
