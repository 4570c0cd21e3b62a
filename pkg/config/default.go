package config

import (
	"time"

	"github.com/crowdsentry/sentinel/pkg/models"
)

// Default returns the built-in festival scenario used when no scenario
// file is supplied: a mid-size venue with six units, three open
// incidents, and a camera network with one feed down.
func Default() *Scenario {
	now := time.Now()

	return &Scenario{
		Name:         "festival-default",
		Description:  "Mid-size festival venue with a main stage, two gates, and a food court",
		CrowdDensity: 72,
		Feed: Feed{
			TelemetryTick:    10 * time.Second,
			EventTick:        15 * time.Second,
			EventProbability: 0.30,
			AlertProbability: 0.50,
		},
		Units: []models.Unit{
			{ID: "SEC-001", Name: "Security Alpha", Type: models.UnitSecurity, Status: models.UnitAvailable, Position: models.Position{X: 25, Y: 30}, Location: "North Gate", LastUpdate: now.Add(-5 * time.Minute)},
			{ID: "SEC-002", Name: "Security Beta", Type: models.UnitSecurity, Status: models.UnitResponding, Position: models.Position{X: 45, Y: 60}, Location: "Main Stage", LastUpdate: now.Add(-2 * time.Minute), AssignedIncident: "INC-001"},
			{ID: "MED-001", Name: "Medical Team 1", Type: models.UnitMedical, Status: models.UnitAvailable, Position: models.Position{X: 70, Y: 40}, Location: "Medical Tent", LastUpdate: now.Add(-1 * time.Minute)},
			{ID: "MED-002", Name: "Medical Team 2", Type: models.UnitMedical, Status: models.UnitBusy, Position: models.Position{X: 35, Y: 80}, Location: "Food Court", LastUpdate: now.Add(-3 * time.Minute)},
			{ID: "FIRE-001", Name: "Fire Response", Type: models.UnitFire, Status: models.UnitAvailable, Position: models.Position{X: 80, Y: 20}, Location: "Emergency Station", LastUpdate: now.Add(-4 * time.Minute)},
			{ID: "POL-001", Name: "Police Unit A", Type: models.UnitPolice, Status: models.UnitAvailable, Position: models.Position{X: 60, Y: 70}, Location: "South Gate", LastUpdate: now},
		},
		Incidents: []models.Incident{
			{ID: "INC-001", Type: models.IncidentCrowdSurge, Severity: models.SeverityHigh, Description: "Crowd surge detected near main stage area", Time: now.Add(-10 * time.Minute), Location: "Main Stage", Position: models.Position{X: 45, Y: 60}, Status: models.IncidentResponding, AssignedUnits: []string{"SEC-002"}},
			{ID: "INC-002", Type: models.IncidentMedical, Severity: models.SeverityMedium, Description: "Medical emergency reported", Time: now.Add(-15 * time.Minute), Location: "Food Court", Position: models.Position{X: 35, Y: 80}, Status: models.IncidentActive, AssignedUnits: []string{}},
			{ID: "INC-003", Type: models.IncidentSecurity, Severity: models.SeverityLow, Description: "Minor disturbance at entrance", Time: now.Add(-30 * time.Minute), Location: "North Gate", Position: models.Position{X: 25, Y: 30}, Status: models.IncidentResolved, AssignedUnits: []string{"SEC-001"}},
		},
		Alerts: []models.Alert{
			{ID: "ALERT-001", Type: models.AlertPrediction, Title: "Crowd Surge Predicted", Message: "AI model predicts potential crowd surge at Main Stage in 15 minutes", Timestamp: now.Add(-5 * time.Minute), Severity: models.SeverityHigh, Source: "AI Predictor"},
			{ID: "ALERT-002", Type: models.AlertSystem, Title: "Camera Offline", Message: "CCTV Camera 12 has gone offline", Timestamp: now.Add(-10 * time.Minute), Severity: models.SeverityMedium, Source: "System Monitor"},
			{ID: "ALERT-003", Type: models.AlertEmergency, Title: "Emergency Response Required", Message: "Medical emergency requires immediate attention", Timestamp: now.Add(-15 * time.Minute), Severity: models.SeverityCritical, Acknowledged: true, Source: "Field Report"},
		},
		Cameras: []models.Camera{
			{ID: "CAM-001", Name: "Main Stage View", Location: "Main Stage", Status: models.CameraOnline},
			{ID: "CAM-002", Name: "North Gate Entry", Location: "North Gate", Status: models.CameraOnline},
			{ID: "CAM-003", Name: "Food Court Overview", Location: "Food Court", Status: models.CameraOnline},
			{ID: "CAM-004", Name: "Emergency Exit 1", Location: "Emergency Exit 1", Status: models.CameraOffline},
			{ID: "CAM-005", Name: "Parking Area", Location: "Parking Lot A", Status: models.CameraOnline},
			{ID: "DRONE-001", Name: "Aerial Overview", Location: "Airborne", Status: models.CameraOnline},
		},
		Zones: []models.Zone{
			{Name: "Main Stage", RiskLevel: models.RiskHigh, Capacity: 5000, Occupancy: 4200},
			{Name: "Food Court", RiskLevel: models.RiskMedium, Capacity: 2000, Occupancy: 1200},
			{Name: "North Gate", RiskLevel: models.RiskLow, Capacity: 1000, Occupancy: 300},
			{Name: "South Gate", RiskLevel: models.RiskLow, Capacity: 1000, Occupancy: 450},
		},
	}
}
