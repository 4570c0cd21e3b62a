package store

import (
	"fmt"

	"github.com/crowdsentry/sentinel/pkg/models"
)

// State is one committed version of every entity collection. A State
// handed out by the store is never mutated again; writers always work
// on a fresh clone.
//
// Alerts and Messages are ordered newest first. Units and Incidents
// keep insertion order.
type State struct {
	Units        []models.Unit     `json:"units"`
	Incidents    []models.Incident `json:"incidents"`
	Alerts       []models.Alert    `json:"alerts"`
	Messages     []models.Message  `json:"messages"`
	Cameras      []models.Camera   `json:"cameras"`
	Zones        []models.Zone     `json:"zones"`
	CrowdDensity float64           `json:"crowd_density"`
}

// Clone returns a deep copy sharing no slices with the receiver.
func (s *State) Clone() *State {
	out := &State{
		Units:        make([]models.Unit, len(s.Units)),
		Incidents:    make([]models.Incident, len(s.Incidents)),
		Alerts:       make([]models.Alert, len(s.Alerts)),
		Messages:     make([]models.Message, len(s.Messages)),
		Cameras:      make([]models.Camera, len(s.Cameras)),
		Zones:        make([]models.Zone, len(s.Zones)),
		CrowdDensity: s.CrowdDensity,
	}

	copy(out.Units, s.Units)
	copy(out.Cameras, s.Cameras)
	copy(out.Zones, s.Zones)
	copy(out.Alerts, s.Alerts)

	for i, inc := range s.Incidents {
		inc.AssignedUnits = append([]string(nil), inc.AssignedUnits...)
		out.Incidents[i] = inc
	}

	for i, msg := range s.Messages {
		msg.Recipients = append([]string(nil), msg.Recipients...)
		msg.AcknowledgedBy = append([]string(nil), msg.AcknowledgedBy...)
		out.Messages[i] = msg
	}

	return out
}

// Unit returns a pointer into the state for the given id, or nil.
func (s *State) Unit(id string) *models.Unit {
	for i := range s.Units {
		if s.Units[i].ID == id {
			return &s.Units[i]
		}
	}
	return nil
}

// Incident returns a pointer into the state for the given id, or nil.
func (s *State) Incident(id string) *models.Incident {
	for i := range s.Incidents {
		if s.Incidents[i].ID == id {
			return &s.Incidents[i]
		}
	}
	return nil
}

// Alert returns a pointer into the state for the given id, or nil.
func (s *State) Alert(id string) *models.Alert {
	for i := range s.Alerts {
		if s.Alerts[i].ID == id {
			return &s.Alerts[i]
		}
	}
	return nil
}

// Message returns a pointer into the state for the given id, or nil.
func (s *State) Message(id string) *models.Message {
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			return &s.Messages[i]
		}
	}
	return nil
}

// Camera returns a pointer into the state for the given id, or nil.
func (s *State) Camera(id string) *models.Camera {
	for i := range s.Cameras {
		if s.Cameras[i].ID == id {
			return &s.Cameras[i]
		}
	}
	return nil
}

// OnlineCameras returns the ids of cameras currently online.
func (s *State) OnlineCameras() []string {
	var ids []string
	for i := range s.Cameras {
		if s.Cameras[i].Status == models.CameraOnline {
			ids = append(ids, s.Cameras[i].ID)
		}
	}
	return ids
}

// checkInvariants verifies the cross-entity rules every commit must
// preserve: the Unit.AssignedIncident / Incident.AssignedUnits
// back-reference pair, enum validity, and numeric domain ranges.
func checkInvariants(s *State) error {
	incidentByID := make(map[string]*models.Incident, len(s.Incidents))
	for i := range s.Incidents {
		inc := &s.Incidents[i]
		if !inc.Type.Valid() || !inc.Status.Valid() || !inc.Severity.Valid() {
			return fmt.Errorf("incident %s has unknown type, status, or severity: %w", inc.ID, ErrInvariant)
		}
		if _, dup := incidentByID[inc.ID]; dup {
			return fmt.Errorf("duplicate incident id %s: %w", inc.ID, ErrInvariant)
		}
		incidentByID[inc.ID] = inc
	}

	unitByID := make(map[string]*models.Unit, len(s.Units))
	for i := range s.Units {
		u := &s.Units[i]
		if !u.Type.Valid() || !u.Status.Valid() {
			return fmt.Errorf("unit %s has unknown type or status: %w", u.ID, ErrInvariant)
		}
		if _, dup := unitByID[u.ID]; dup {
			return fmt.Errorf("duplicate unit id %s: %w", u.ID, ErrInvariant)
		}
		unitByID[u.ID] = u

		if u.AssignedIncident == "" {
			continue
		}
		inc, ok := incidentByID[u.AssignedIncident]
		if !ok {
			return fmt.Errorf("unit %s references missing incident %s: %w", u.ID, u.AssignedIncident, ErrInvariant)
		}
		if !inc.HasUnit(u.ID) {
			return fmt.Errorf("unit %s assigned to incident %s without back-reference: %w", u.ID, inc.ID, ErrInvariant)
		}
	}

	for i := range s.Incidents {
		inc := &s.Incidents[i]
		for _, unitID := range inc.AssignedUnits {
			u, ok := unitByID[unitID]
			if !ok {
				return fmt.Errorf("incident %s references missing unit %s: %w", inc.ID, unitID, ErrInvariant)
			}
			// Resolved incidents keep their historical assignment; the
			// unit itself may have moved on.
			if inc.Status != models.IncidentResolved && u.AssignedIncident != inc.ID {
				return fmt.Errorf("incident %s lists unit %s assigned elsewhere: %w", inc.ID, unitID, ErrInvariant)
			}
		}
	}

	for i := range s.Alerts {
		a := &s.Alerts[i]
		if !a.Type.Valid() || !a.Severity.Valid() {
			return fmt.Errorf("alert %s has unknown type or severity: %w", a.ID, ErrInvariant)
		}
	}

	for i := range s.Messages {
		m := &s.Messages[i]
		if !m.Type.Valid() || !m.Status.Valid() || !m.Priority.Valid() {
			return fmt.Errorf("message %s has unknown type, status, or priority: %w", m.ID, ErrInvariant)
		}
	}

	if s.CrowdDensity < models.MapMin || s.CrowdDensity > models.MapMax {
		return fmt.Errorf("crowd density %.1f outside [0,100]: %w", s.CrowdDensity, ErrInvariant)
	}

	return nil
}
