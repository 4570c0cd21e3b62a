// Package config loads scenario files: the seed entities and simulation
// cadence a center starts from.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/crowdsentry/sentinel/pkg/models"
)

// Feed holds the simulation feed cadence and probabilities.
type Feed struct {
	// TelemetryTick is the period of position and density drift.
	TelemetryTick time.Duration `yaml:"telemetry_tick"`
	// EventTick is the period of probabilistic alert/message injection.
	// It must be longer than TelemetryTick.
	EventTick time.Duration `yaml:"event_tick"`
	// EventProbability is the chance per event tick that any source is
	// selected at all.
	EventProbability float64 `yaml:"event_probability"`
	// AlertProbability is the chance a selected source produces a
	// camera alert rather than an inbound message.
	AlertProbability float64 `yaml:"alert_probability"`
}

// UnmarshalYAML decodes tick periods from duration strings like "10s".
func (f *Feed) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		TelemetryTick    string  `yaml:"telemetry_tick"`
		EventTick        string  `yaml:"event_tick"`
		EventProbability float64 `yaml:"event_probability"`
		AlertProbability float64 `yaml:"alert_probability"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.TelemetryTick != "" {
		d, err := time.ParseDuration(raw.TelemetryTick)
		if err != nil {
			return fmt.Errorf("invalid telemetry_tick: %w", err)
		}
		f.TelemetryTick = d
	}
	if raw.EventTick != "" {
		d, err := time.ParseDuration(raw.EventTick)
		if err != nil {
			return fmt.Errorf("invalid event_tick: %w", err)
		}
		f.EventTick = d
	}
	f.EventProbability = raw.EventProbability
	f.AlertProbability = raw.AlertProbability

	return nil
}

// Scenario describes one operations-center setup.
type Scenario struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	CrowdDensity float64           `yaml:"crowd_density"`
	Feed         Feed              `yaml:"feed"`
	Units        []models.Unit     `yaml:"units"`
	Incidents    []models.Incident `yaml:"incidents"`
	Alerts       []models.Alert    `yaml:"alerts"`
	Cameras      []models.Camera   `yaml:"cameras"`
	Zones        []models.Zone     `yaml:"zones"`
}

// Load reads a scenario from a YAML file, fills defaults, and
// validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

func (sc *Scenario) applyDefaults() {
	def := Default()
	if sc.Name == "" {
		sc.Name = "custom"
	}
	if sc.CrowdDensity == 0 {
		sc.CrowdDensity = def.CrowdDensity
	}
	if sc.Feed.TelemetryTick == 0 {
		sc.Feed.TelemetryTick = def.Feed.TelemetryTick
	}
	if sc.Feed.EventTick == 0 {
		sc.Feed.EventTick = def.Feed.EventTick
	}
	if sc.Feed.EventProbability == 0 {
		sc.Feed.EventProbability = def.Feed.EventProbability
	}
	if sc.Feed.AlertProbability == 0 {
		sc.Feed.AlertProbability = def.Feed.AlertProbability
	}
}

// Validate checks cadence, probabilities, and seed entity enums.
func (sc *Scenario) Validate() error {
	if sc.Feed.TelemetryTick <= 0 {
		return fmt.Errorf("telemetry_tick must be positive, got %s", sc.Feed.TelemetryTick)
	}
	if sc.Feed.EventTick <= sc.Feed.TelemetryTick {
		return fmt.Errorf("event_tick %s must be longer than telemetry_tick %s",
			sc.Feed.EventTick, sc.Feed.TelemetryTick)
	}
	if sc.Feed.EventProbability < 0 || sc.Feed.EventProbability > 1 {
		return fmt.Errorf("event_probability must be within [0,1], got %v", sc.Feed.EventProbability)
	}
	if sc.Feed.AlertProbability < 0 || sc.Feed.AlertProbability > 1 {
		return fmt.Errorf("alert_probability must be within [0,1], got %v", sc.Feed.AlertProbability)
	}
	if sc.CrowdDensity < models.DensityMin || sc.CrowdDensity > models.DensityMax {
		return fmt.Errorf("crowd_density must be within [%v,%v], got %v",
			models.DensityMin, models.DensityMax, sc.CrowdDensity)
	}

	for _, u := range sc.Units {
		if u.ID == "" {
			return fmt.Errorf("unit %q is missing an id", u.Name)
		}
		if !u.Type.Valid() {
			return fmt.Errorf("unit %s has unknown type %q", u.ID, u.Type)
		}
		if !u.Status.Valid() {
			return fmt.Errorf("unit %s has unknown status %q", u.ID, u.Status)
		}
	}
	for _, inc := range sc.Incidents {
		if inc.ID == "" {
			return fmt.Errorf("incident %q is missing an id", inc.Description)
		}
		if !inc.Type.Valid() || !inc.Status.Valid() || !inc.Severity.Valid() {
			return fmt.Errorf("incident %s has an unknown type, status, or severity", inc.ID)
		}
	}
	for _, cam := range sc.Cameras {
		if cam.ID == "" {
			return fmt.Errorf("camera %q is missing an id", cam.Name)
		}
		if !cam.Status.Valid() {
			return fmt.Errorf("camera %s has unknown status %q", cam.ID, cam.Status)
		}
	}
	for _, z := range sc.Zones {
		if !z.RiskLevel.Valid() {
			return fmt.Errorf("zone %s has unknown risk level %q", z.Name, z.RiskLevel)
		}
	}

	return nil
}
