package models

import (
	"time"
)

// Unit is a field unit tracked by the operations center. Units
// reference their assigned incident by id only; the incident keeps the
// matching back-reference in AssignedUnits.
type Unit struct {
	ID               string     `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	Type             UnitType   `json:"type" yaml:"type"`
	Status           UnitStatus `json:"status" yaml:"status"`
	Position         Position   `json:"position" yaml:"position"`
	Location         string     `json:"location" yaml:"location"`
	LastUpdate       time.Time  `json:"last_update" yaml:"-"`
	AssignedIncident string     `json:"assigned_incident,omitempty" yaml:"assigned_incident,omitempty"`
}

// Incident is a reported or detected situation requiring response.
type Incident struct {
	ID            string         `json:"id" yaml:"id"`
	Type          IncidentType   `json:"type" yaml:"type"`
	Severity      Severity       `json:"severity" yaml:"severity"`
	Description   string         `json:"description" yaml:"description"`
	Time          time.Time      `json:"time" yaml:"-"`
	Location      string         `json:"location" yaml:"location"`
	Position      Position       `json:"position" yaml:"position"`
	Status        IncidentStatus `json:"status" yaml:"status"`
	AssignedUnits []string       `json:"assigned_units" yaml:"assigned_units"`
}

// HasUnit reports whether the unit id is in the incident's assignment set.
func (i *Incident) HasUnit(unitID string) bool {
	for _, id := range i.AssignedUnits {
		if id == unitID {
			return true
		}
	}
	return false
}

// Alert is a notification raised by a subsystem (AI predictor, system
// monitor, camera analytics, field report). Lifecycle is one-way:
// created unacknowledged, later acknowledged.
type Alert struct {
	ID           string    `json:"id" yaml:"id"`
	Type         AlertType `json:"type" yaml:"type"`
	Title        string    `json:"title" yaml:"title"`
	Message      string    `json:"message" yaml:"message"`
	Timestamp    time.Time `json:"timestamp" yaml:"-"`
	Severity     Severity  `json:"severity" yaml:"severity"`
	Acknowledged bool      `json:"acknowledged" yaml:"acknowledged"`
	Source       string    `json:"source" yaml:"source"`
}

// Message is an operator-composed or simulated communication.
// AcknowledgedBy is append-only and may contain duplicates; it is the
// sole record of acknowledgment and never feeds back into Status.
type Message struct {
	ID             string        `json:"id"`
	Type           MessageType   `json:"type"`
	Title          string        `json:"title"`
	Body           string        `json:"body"`
	Sender         string        `json:"sender"`
	Recipients     []string      `json:"recipients"`
	Timestamp      time.Time     `json:"timestamp"`
	Priority       Severity      `json:"priority"`
	Status         MessageStatus `json:"status"`
	RequiresAck    bool          `json:"requires_acknowledgment"`
	AcknowledgedBy []string      `json:"acknowledged_by"`
}

// Pending reports whether the message still awaits its first
// acknowledgment.
func (m *Message) Pending() bool {
	return m.RequiresAck && len(m.AcknowledgedBy) == 0
}

// Camera is a camera or sensor source feeding detections into the
// center. Only online cameras participate in simulated event selection.
type Camera struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Location string       `json:"location" yaml:"location"`
	Status   CameraStatus `json:"status" yaml:"status"`
}

// Zone is a monitored area of the venue with a static capacity and a
// tracked occupancy.
type Zone struct {
	Name      string    `json:"name" yaml:"name"`
	RiskLevel RiskLevel `json:"risk_level" yaml:"risk_level"`
	Capacity  int       `json:"capacity" yaml:"capacity"`
	Occupancy int       `json:"occupancy" yaml:"occupancy"`
}

// OccupancyRatio returns occupancy as a fraction of capacity, 0 when
// capacity is unset.
func (z *Zone) OccupancyRatio() float64 {
	if z.Capacity <= 0 {
		return 0
	}
	return float64(z.Occupancy) / float64(z.Capacity)
}
