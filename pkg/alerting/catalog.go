package alerting

import (
	"fmt"

	"github.com/crowdsentry/sentinel/pkg/models"
)

// Camera detection event types understood by the center. The same
// vocabulary covers live camera-feed reports and simulated detections.
const (
	EventCrowdSurge         = "crowd_surge_detected"
	EventSuspiciousActivity = "suspicious_activity"
	EventAbandonedObject    = "abandoned_object"
	EventFightDetected      = "fight_detected"
	EventMedicalEmergency   = "medical_emergency"
)

// CameraEventTypes lists every known detection event type.
//
//nolint:gochecknoglobals // fixed vocabulary
var CameraEventTypes = []string{
	EventCrowdSurge,
	EventSuspiciousActivity,
	EventAbandonedObject,
	EventFightDetected,
	EventMedicalEmergency,
}

// cameraEventBodies maps detection types to alert body text.
//
//nolint:gochecknoglobals // fixed vocabulary
var cameraEventBodies = map[string]string{
	EventCrowdSurge:         "AI detected potential crowd surge in camera feed",
	EventSuspiciousActivity: "Suspicious activity detected by AI analysis",
	EventAbandonedObject:    "Abandoned object detected in monitored area",
	EventFightDetected:      "Physical altercation detected by AI",
	EventMedicalEmergency:   "Potential medical emergency detected",
}

// NewCameraAlert builds the alert raised for a camera detection.
// Unknown event types still produce an alert with a generic body so an
// unexpected detection is surfaced rather than dropped.
func NewCameraAlert(cameraID, eventType string) models.Alert {
	body, ok := cameraEventBodies[eventType]
	if !ok {
		body = "Unknown alert detected"
	}

	return models.Alert{
		Type:     models.AlertPrediction,
		Title:    fmt.Sprintf("Camera Alert - %s", cameraID),
		Message:  body,
		Severity: models.SeverityHigh,
		Source:   fmt.Sprintf("Camera %s", cameraID),
	}
}
