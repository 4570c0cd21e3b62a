package ops

import (
	"github.com/crowdsentry/sentinel/pkg/models"
	"github.com/crowdsentry/sentinel/pkg/store"
)

// Pure projections over a snapshot. The presentation layer computes
// these without further core involvement; they never write.

// UnacknowledgedAlerts counts alerts still awaiting acknowledgment.
func UnacknowledgedAlerts(st *store.State) int {
	n := 0
	for i := range st.Alerts {
		if !st.Alerts[i].Acknowledged {
			n++
		}
	}
	return n
}

// PendingMessages counts messages that require acknowledgment and have
// none yet.
func PendingMessages(st *store.State) int {
	n := 0
	for i := range st.Messages {
		if st.Messages[i].Pending() {
			n++
		}
	}
	return n
}

// ActiveIncidents counts incidents in the active state.
func ActiveIncidents(st *store.State) int {
	n := 0
	for i := range st.Incidents {
		if st.Incidents[i].Status == models.IncidentActive {
			n++
		}
	}
	return n
}

// AvailableUnits counts units ready for dispatch.
func AvailableUnits(st *store.State) int {
	n := 0
	for i := range st.Units {
		if st.Units[i].Status == models.UnitAvailable {
			n++
		}
	}
	return n
}

// ZoneOccupancy returns each zone's occupancy as a fraction of its
// capacity, keyed by zone name.
func ZoneOccupancy(st *store.State) map[string]float64 {
	out := make(map[string]float64, len(st.Zones))
	for i := range st.Zones {
		z := &st.Zones[i]
		out[z.Name] = z.OccupancyRatio()
	}
	return out
}
