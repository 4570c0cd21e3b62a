package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crowdsentry/sentinel/pkg/models"
	"github.com/crowdsentry/sentinel/pkg/store"
)

var testNow = time.Date(2026, 6, 20, 21, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(&store.State{
		Units: []models.Unit{
			{ID: "U1", Name: "Security Alpha", Type: models.UnitSecurity, Status: models.UnitAvailable, Position: models.Position{X: 25, Y: 30}, Location: "Main Stage", LastUpdate: testNow},
			{ID: "U2", Name: "Medical Team 1", Type: models.UnitMedical, Status: models.UnitAvailable, Position: models.Position{X: 70, Y: 40}, Location: "Medical Tent", LastUpdate: testNow},
		},
		Incidents: []models.Incident{
			{ID: "I1", Type: models.IncidentCrowdSurge, Severity: models.SeverityHigh, Description: "Crowd surge", Time: testNow, Location: "Main Stage", Position: models.Position{X: 45, Y: 60}, Status: models.IncidentActive, AssignedUnits: []string{}},
			{ID: "I2", Type: models.IncidentMedical, Severity: models.SeverityMedium, Description: "Injury report", Time: testNow, Location: "Food Court", Position: models.Position{X: 35, Y: 80}, Status: models.IncidentActive, AssignedUnits: []string{}},
			{ID: "I3", Type: models.IncidentSecurity, Severity: models.SeverityLow, Description: "Settled dispute", Time: testNow, Location: "North Gate", Position: models.Position{X: 25, Y: 30}, Status: models.IncidentResolved, AssignedUnits: []string{}},
		},
		CrowdDensity: 60,
	})
	require.NoError(t, err)

	return s
}

func TestDispatch_AttachesUnitAndIncident(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	c := NewCoordinator(s, func() time.Time { return testNow })

	require.NoError(t, c.Dispatch("U1", "I1"))

	st := s.Snapshot()
	u := st.Unit("U1")
	require.Equal(t, models.UnitResponding, u.Status)
	require.Equal(t, "I1", u.AssignedIncident)

	inc := st.Incident("I1")
	require.Equal(t, models.IncidentResponding, inc.Status)
	require.Equal(t, []string{"U1"}, inc.AssignedUnits)
}

func TestDispatch_SecondCallIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	c := NewCoordinator(s, func() time.Time { return testNow })

	require.NoError(t, c.Dispatch("U1", "I1"))
	before := s.Snapshot()

	require.NoError(t, c.Dispatch("U1", "I1"))
	require.Equal(t, before, s.Snapshot())
}

func TestDispatch_ReassignmentDetachesPreviousIncident(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	c := NewCoordinator(s, func() time.Time { return testNow })

	require.NoError(t, c.Dispatch("U1", "I1"))
	beforeI1 := *s.Snapshot().Incident("I1")

	require.NoError(t, c.Dispatch("U1", "I2"))

	st := s.Snapshot()
	require.Empty(t, st.Incident("I1").AssignedUnits)
	require.Equal(t, []string{"U1"}, st.Incident("I2").AssignedUnits)
	require.Equal(t, "I2", st.Unit("U1").AssignedIncident)

	// I1 is otherwise untouched by the detach.
	afterI1 := *st.Incident("I1")
	afterI1.AssignedUnits = beforeI1.AssignedUnits
	require.Equal(t, beforeI1, afterI1)
}

func TestDispatch_StatusOnlyWithoutIncident(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	c := NewCoordinator(s, func() time.Time { return testNow })

	require.NoError(t, c.Dispatch("U2", ""))

	st := s.Snapshot()
	require.Equal(t, models.UnitResponding, st.Unit("U2").Status)
	require.Empty(t, st.Unit("U2").AssignedIncident)
}

func TestDispatch_UnknownIDsAreNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	c := NewCoordinator(s, func() time.Time { return testNow })

	require.ErrorIs(t, c.Dispatch("U-404", "I1"), store.ErrNotFound)
	require.ErrorIs(t, c.Dispatch("U1", "I-404"), store.ErrNotFound)

	// Neither call left a trace.
	st := s.Snapshot()
	require.Equal(t, models.UnitAvailable, st.Unit("U1").Status)
	require.Empty(t, st.Incident("I1").AssignedUnits)
}

func TestDispatch_ResolvedIncidentRejected(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	c := NewCoordinator(s, func() time.Time { return testNow })

	require.ErrorIs(t, c.Dispatch("U1", "I3"), store.ErrValidation)
	require.Equal(t, models.UnitAvailable, s.Snapshot().Unit("U1").Status)
}

func TestResolve_ReleasesAssignedUnits(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	c := NewCoordinator(s, func() time.Time { return testNow })

	require.NoError(t, c.Dispatch("U1", "I1"))
	require.NoError(t, c.Resolve("I1"))

	st := s.Snapshot()
	require.Equal(t, models.IncidentResolved, st.Incident("I1").Status)
	require.Equal(t, models.UnitAvailable, st.Unit("U1").Status)
	require.Empty(t, st.Unit("U1").AssignedIncident)
	// Assignment history survives resolution.
	require.Equal(t, []string{"U1"}, st.Incident("I1").AssignedUnits)

	// Resolving again is a no-op.
	require.NoError(t, c.Resolve("I1"))
	require.ErrorIs(t, c.Resolve("I-404"), store.ErrNotFound)
}

func TestDispatch_CountsDispatches(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	c := NewCoordinator(s, func() time.Time { return testNow })

	require.NoError(t, c.Dispatch("U1", "I1"))
	require.NoError(t, c.Dispatch("U2", "I2"))
	require.Equal(t, float64(2), s.Metrics().Counter(store.DispatchTotal).Value())
}
