// Package dispatch applies the rules for assigning field units to
// incidents. Both sides of the Unit/Incident back-reference are updated
// in a single store commit.
package dispatch

import (
	"fmt"
	"time"

	"github.com/crowdsentry/sentinel/pkg/models"
	"github.com/crowdsentry/sentinel/pkg/store"
)

// Coordinator performs dispatch operations against a store.
type Coordinator struct {
	store *store.Store
	now   func() time.Time
}

// NewCoordinator creates a coordinator. The now function stamps unit
// updates and may be overridden for tests.
func NewCoordinator(s *store.Store, now func() time.Time) *Coordinator {
	if now == nil {
		now = time.Now
	}
	return &Coordinator{store: s, now: now}
}

// Dispatch sends a unit to respond. With an incident id the incident
// gains the unit and transitions active -> responding; with an empty
// incident id only the unit's status changes.
//
// A unit already responding to the given incident makes the call a
// no-op. A unit attached to a different incident is detached from it
// first; a unit is never assigned to two incidents at once.
func (c *Coordinator) Dispatch(unitID, incidentID string) error {
	err := c.store.Apply("dispatch", func(st *store.State) error {
		unit := st.Unit(unitID)
		if unit == nil {
			return fmt.Errorf("unit %s: %w", unitID, store.ErrNotFound)
		}

		var incident *models.Incident
		if incidentID != "" {
			incident = st.Incident(incidentID)
			if incident == nil {
				return fmt.Errorf("incident %s: %w", incidentID, store.ErrNotFound)
			}
			if incident.Status == models.IncidentResolved {
				return fmt.Errorf("incident %s is resolved: %w", incidentID, store.ErrValidation)
			}
		}

		// Idempotent: already responding to this exact assignment.
		if unit.Status == models.UnitResponding && unit.AssignedIncident == incidentID {
			return nil
		}

		if unit.AssignedIncident != "" && unit.AssignedIncident != incidentID {
			if prev := st.Incident(unit.AssignedIncident); prev != nil {
				prev.AssignedUnits = removeID(prev.AssignedUnits, unitID)
			}
		}

		unit.Status = models.UnitResponding
		unit.AssignedIncident = incidentID
		unit.LastUpdate = c.now()

		if incident != nil {
			if !incident.HasUnit(unitID) {
				incident.AssignedUnits = append(incident.AssignedUnits, unitID)
			}
			if incident.Status == models.IncidentActive {
				incident.Status = models.IncidentResponding
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	c.store.Metrics().Counter(store.DispatchTotal).Inc()

	return nil
}

// Resolve closes an incident. Units still attached are released back to
// available; the incident keeps its assignment history.
func (c *Coordinator) Resolve(incidentID string) error {
	return c.store.Apply("resolve", func(st *store.State) error {
		incident := st.Incident(incidentID)
		if incident == nil {
			return fmt.Errorf("incident %s: %w", incidentID, store.ErrNotFound)
		}
		if incident.Status == models.IncidentResolved {
			return nil
		}

		incident.Status = models.IncidentResolved
		for _, unitID := range incident.AssignedUnits {
			if unit := st.Unit(unitID); unit != nil && unit.AssignedIncident == incidentID {
				unit.Status = models.UnitAvailable
				unit.AssignedIncident = ""
				unit.LastUpdate = c.now()
			}
		}

		return nil
	})
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
