package models

// UnitType identifies the discipline of a field unit.
type UnitType string

// Field unit disciplines.
const (
	UnitSecurity UnitType = "security"
	UnitMedical  UnitType = "medical"
	UnitFire     UnitType = "fire"
	UnitPolice   UnitType = "police"
)

// Valid reports whether the unit type is one of the known disciplines.
func (t UnitType) Valid() bool {
	switch t {
	case UnitSecurity, UnitMedical, UnitFire, UnitPolice:
		return true
	}
	return false
}

// UnitStatus is the operational state of a field unit.
type UnitStatus string

// Field unit states.
const (
	UnitAvailable  UnitStatus = "available"
	UnitBusy       UnitStatus = "busy"
	UnitResponding UnitStatus = "responding"
)

// Valid reports whether the unit status is a known state.
func (s UnitStatus) Valid() bool {
	switch s {
	case UnitAvailable, UnitBusy, UnitResponding:
		return true
	}
	return false
}

// IncidentType classifies an incident.
type IncidentType string

// Incident classifications.
const (
	IncidentCrowdSurge IncidentType = "crowd_surge"
	IncidentMedical    IncidentType = "medical"
	IncidentFire       IncidentType = "fire"
	IncidentSecurity   IncidentType = "security"
)

// Valid reports whether the incident type is a known classification.
func (t IncidentType) Valid() bool {
	switch t {
	case IncidentCrowdSurge, IncidentMedical, IncidentFire, IncidentSecurity:
		return true
	}
	return false
}

// IncidentStatus is the lifecycle state of an incident.
type IncidentStatus string

// Incident lifecycle states.
const (
	IncidentActive     IncidentStatus = "active"
	IncidentResponding IncidentStatus = "responding"
	IncidentResolved   IncidentStatus = "resolved"
)

// Valid reports whether the incident status is a known state.
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentActive, IncidentResponding, IncidentResolved:
		return true
	}
	return false
}

// Severity grades incidents and alerts.
type Severity string

// Severity grades. Incidents use low through high; alerts and
// messages may additionally be critical.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether the severity is a known grade.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// AlertType identifies which class of subsystem raised an alert.
type AlertType string

// Alert classes.
const (
	AlertPrediction AlertType = "prediction"
	AlertSystem     AlertType = "system"
	AlertEmergency  AlertType = "emergency"
	AlertInfo       AlertType = "info"
)

// Valid reports whether the alert type is a known class.
func (t AlertType) Valid() bool {
	switch t {
	case AlertPrediction, AlertSystem, AlertEmergency, AlertInfo:
		return true
	}
	return false
}

// MessageType classifies an operator or system message.
type MessageType string

// Message classifications.
const (
	MessageDispatch  MessageType = "dispatch"
	MessageEmergency MessageType = "emergency"
	MessageUpdate    MessageType = "update"
	MessageBroadcast MessageType = "broadcast"
	MessageMedical   MessageType = "medical"
	MessageSecurity  MessageType = "security"
)

// Valid reports whether the message type is a known classification.
func (t MessageType) Valid() bool {
	switch t {
	case MessageDispatch, MessageEmergency, MessageUpdate, MessageBroadcast,
		MessageMedical, MessageSecurity:
		return true
	}
	return false
}

// MessageStatus is the delivery state of a message. Acknowledgment is
// tracked separately via Message.AcknowledgedBy and never drives this
// field automatically.
type MessageStatus string

// Message delivery states. Failed is terminal and reachable only from
// sent or delivered.
const (
	MessageSent         MessageStatus = "sent"
	MessageDelivered    MessageStatus = "delivered"
	MessageAcknowledged MessageStatus = "acknowledged"
	MessageFailed       MessageStatus = "failed"
)

// Valid reports whether the message status is a known state.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageSent, MessageDelivered, MessageAcknowledged, MessageFailed:
		return true
	}
	return false
}

// CameraStatus is the operational state of a camera or sensor source.
type CameraStatus string

// Camera operational states. Only online sources generate simulated
// detections.
const (
	CameraOnline      CameraStatus = "online"
	CameraOffline     CameraStatus = "offline"
	CameraMaintenance CameraStatus = "maintenance"
)

// Valid reports whether the camera status is a known state.
func (s CameraStatus) Valid() bool {
	switch s {
	case CameraOnline, CameraOffline, CameraMaintenance:
		return true
	}
	return false
}

// RiskLevel grades a zone's crowd risk.
type RiskLevel string

// Zone risk grades.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether the risk level is a known grade.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}
