package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crowdsentry/sentinel/pkg/models"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	sc := Default()
	require.NoError(t, sc.Validate())
	require.Len(t, sc.Units, 6)
	require.Len(t, sc.Incidents, 3)
	require.Len(t, sc.Cameras, 6)
	require.Len(t, sc.Zones, 4)
	require.Equal(t, 10*time.Second, sc.Feed.TelemetryTick)
	require.Equal(t, 15*time.Second, sc.Feed.EventTick)
}

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalScenario = `
name: rooftop-show
description: Small rooftop venue
units:
  - id: SEC-100
    name: Roof Security
    type: security
    status: available
    position: {x: 40, y: 40}
    location: Rooftop Bar
cameras:
  - id: CAM-100
    name: Bar Overview
    location: Rooftop Bar
    status: online
zones:
  - name: Rooftop Bar
    risk_level: medium
    capacity: 300
    occupancy: 120
`

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, t.TempDir(), "rooftop.yaml", minimalScenario)

	sc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "rooftop-show", sc.Name)
	require.Equal(t, 10*time.Second, sc.Feed.TelemetryTick)
	require.Equal(t, 15*time.Second, sc.Feed.EventTick)
	require.InDelta(t, 0.30, sc.Feed.EventProbability, 1e-9)
	require.InDelta(t, 0.50, sc.Feed.AlertProbability, 1e-9)
	require.InDelta(t, 72, sc.CrowdDensity, 1e-9)

	require.Len(t, sc.Units, 1)
	require.Equal(t, models.UnitSecurity, sc.Units[0].Type)
	require.Equal(t, models.Position{X: 40, Y: 40}, sc.Units[0].Position)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"event tick not longer than telemetry tick", func(sc *Scenario) {
			sc.Feed.EventTick = sc.Feed.TelemetryTick
		}},
		{"event probability above one", func(sc *Scenario) {
			sc.Feed.EventProbability = 1.5
		}},
		{"alert probability negative", func(sc *Scenario) {
			sc.Feed.AlertProbability = -0.1
		}},
		{"crowd density outside band", func(sc *Scenario) {
			sc.CrowdDensity = 20
		}},
		{"unit without id", func(sc *Scenario) {
			sc.Units[0].ID = ""
		}},
		{"unknown unit type", func(sc *Scenario) {
			sc.Units[0].Type = "drone"
		}},
		{"unknown incident status", func(sc *Scenario) {
			sc.Incidents[0].Status = "pending"
		}},
		{"unknown camera status", func(sc *Scenario) {
			sc.Cameras[0].Status = "rebooting"
		}},
		{"unknown zone risk", func(sc *Scenario) {
			sc.Zones[0].RiskLevel = "extreme"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sc := Default()
			tt.mutate(sc)
			require.Error(t, sc.Validate())
		})
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeScenario(t, dir, "rooftop.yaml", minimalScenario)
	writeScenario(t, dir, "broken.yaml", "feed:\n  event_tick: [not a duration]\n")
	writeScenario(t, dir, "notes.txt", "not a scenario")

	infos, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, infos, 1, "invalid and non-yaml files are skipped")
	require.Equal(t, "rooftop-show", infos[0].Scenario.Name)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	t.Parallel()

	infos, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	require.Empty(t, infos)
}
