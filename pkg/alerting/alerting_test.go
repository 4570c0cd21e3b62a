package alerting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crowdsentry/sentinel/pkg/models"
	"github.com/crowdsentry/sentinel/pkg/store"
)

var testNow = time.Date(2026, 6, 20, 21, 0, 0, 0, time.UTC)

func newTestLifecycle(t *testing.T) (*Lifecycle, *store.Store) {
	t.Helper()

	s, err := store.New(&store.State{
		Alerts: []models.Alert{
			{ID: "ALERT-SEED", Type: models.AlertSystem, Title: "Camera Offline", Severity: models.SeverityMedium, Source: "System Monitor", Timestamp: testNow.Add(-10 * time.Minute)},
		},
		CrowdDensity: 60,
	})
	require.NoError(t, err)

	return NewLifecycle(s, func() time.Time { return testNow }), s
}

func TestRaise_PrependsAndFillsDefaults(t *testing.T) {
	t.Parallel()

	l, s := newTestLifecycle(t)

	created, err := l.Raise(models.Alert{
		Type:     models.AlertPrediction,
		Title:    "Crowd Surge Predicted",
		Message:  "AI model predicts potential crowd surge at Main Stage",
		Severity: models.SeverityHigh,
		Source:   "AI Predictor",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, testNow, created.Timestamp)
	require.False(t, created.Acknowledged)

	st := s.Snapshot()
	require.Len(t, st.Alerts, 2)
	require.Equal(t, created.ID, st.Alerts[0].ID, "newest alert comes first")
	require.Equal(t, "ALERT-SEED", st.Alerts[1].ID)
	require.Equal(t, float64(1), s.Metrics().Counter(store.AlertsTotal).Value())
}

func TestRaise_DuplicateIDRejected(t *testing.T) {
	t.Parallel()

	l, _ := newTestLifecycle(t)

	_, err := l.Raise(models.Alert{ID: "ALERT-SEED", Type: models.AlertInfo, Severity: models.SeverityLow})
	require.ErrorIs(t, err, store.ErrValidation)
}

func TestAcknowledge_IsIdempotent(t *testing.T) {
	t.Parallel()

	l, s := newTestLifecycle(t)

	require.NoError(t, l.Acknowledge("ALERT-SEED"))
	require.True(t, s.Snapshot().Alerts[0].Acknowledged)

	// Re-acknowledging resolves successfully, not as an error.
	require.NoError(t, l.Acknowledge("ALERT-SEED"))
	require.True(t, s.Snapshot().Alerts[0].Acknowledged)

	require.ErrorIs(t, l.Acknowledge("ALERT-404"), store.ErrNotFound)
}

func TestClearAll_AcknowledgesEverything(t *testing.T) {
	t.Parallel()

	l, s := newTestLifecycle(t)

	for i := 0; i < 5; i++ {
		_, err := l.Raise(models.Alert{
			Type:     models.AlertInfo,
			Title:    fmt.Sprintf("Info %d", i),
			Severity: models.SeverityLow,
			Source:   "System Monitor",
		})
		require.NoError(t, err)
	}

	require.NoError(t, l.ClearAll())

	for _, a := range s.Snapshot().Alerts {
		require.True(t, a.Acknowledged, "alert %s not acknowledged", a.ID)
	}
}

func TestCompose_ValidationFailuresLeaveStoreUnchanged(t *testing.T) {
	t.Parallel()

	l, s := newTestLifecycle(t)
	before := s.Snapshot()

	_, err := l.Compose(Draft{Priority: models.SeverityCritical, Recipients: []string{}, Body: "x"})
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = l.Compose(Draft{Priority: models.SeverityLow, Recipients: []string{"all-units"}})
	require.ErrorIs(t, err, store.ErrValidation)

	require.Equal(t, before, s.Snapshot())
}

func TestCompose_DerivesRequiresAckFromPriority(t *testing.T) {
	t.Parallel()

	l, _ := newTestLifecycle(t)

	tests := []struct {
		priority models.Severity
		want     bool
	}{
		{models.SeverityLow, false},
		{models.SeverityMedium, false},
		{models.SeverityHigh, true},
		{models.SeverityCritical, true},
	}

	for _, tt := range tests {
		msg, err := l.Compose(Draft{
			Type:       models.MessageBroadcast,
			Body:       "status check",
			Sender:     "Operations Center",
			Recipients: []string{"all-units"},
			Priority:   tt.priority,
		})
		require.NoError(t, err)
		require.Equal(t, tt.want, msg.RequiresAck, "priority %s", tt.priority)
		require.Equal(t, models.MessageSent, msg.Status)
		require.Equal(t, testNow, msg.Timestamp)
	}
}

func TestCompose_ExplicitRequiresAckWins(t *testing.T) {
	t.Parallel()

	l, _ := newTestLifecycle(t)

	msg, err := l.Compose(Draft{
		Type:           models.MessageUpdate,
		Body:           "crowd density update",
		Sender:         "Crowd Analytics AI",
		Recipients:     []string{"all-units"},
		Priority:       models.SeverityCritical,
		RequiresAck:    false,
		RequiresAckSet: true,
	})
	require.NoError(t, err)
	require.False(t, msg.RequiresAck)
}

func TestCompose_RetentionEvictsOldest(t *testing.T) {
	t.Parallel()

	l, s := newTestLifecycle(t)

	var firstID string
	for i := 0; i < MaxMessages+1; i++ {
		msg, err := l.Compose(Draft{
			Type:       models.MessageUpdate,
			Body:       fmt.Sprintf("update %d", i),
			Sender:     "Operations Center",
			Recipients: []string{"all-units"},
			Priority:   models.SeverityLow,
		})
		require.NoError(t, err)
		if i == 0 {
			firstID = msg.ID
		}
	}

	st := s.Snapshot()
	require.Len(t, st.Messages, MaxMessages)
	require.Nil(t, st.Message(firstID), "oldest message evicted")
	require.Equal(t, fmt.Sprintf("update %d", MaxMessages), st.Messages[0].Body, "newest first")
}

func TestAcknowledgeMessage_AppendsWithoutTouchingStatus(t *testing.T) {
	t.Parallel()

	l, s := newTestLifecycle(t)

	msg, err := l.Compose(Draft{
		Type:       models.MessageDispatch,
		Body:       "respond to main stage",
		Sender:     "Operations Center",
		Recipients: []string{"security-team"},
		Priority:   models.SeverityHigh,
	})
	require.NoError(t, err)
	require.NoError(t, l.MarkDelivered(msg.ID))

	require.NoError(t, l.AcknowledgeMessage(msg.ID, "SEC-001"))
	require.NoError(t, l.AcknowledgeMessage(msg.ID, "SEC-001"))
	require.NoError(t, l.AcknowledgeMessage(msg.ID, "SEC-002"))

	got := s.Snapshot().Message(msg.ID)
	require.Equal(t, []string{"SEC-001", "SEC-001", "SEC-002"}, got.AcknowledgedBy)
	require.Equal(t, models.MessageDelivered, got.Status, "status stays a pure delivery field")
	require.False(t, got.Pending())

	require.ErrorIs(t, l.AcknowledgeMessage("MSG-404", "SEC-001"), store.ErrNotFound)
	require.ErrorIs(t, l.AcknowledgeMessage(msg.ID, ""), store.ErrValidation)
}

func TestMarkDelivered_OnlyAdvancesSent(t *testing.T) {
	t.Parallel()

	l, s := newTestLifecycle(t)

	msg, err := l.Compose(Draft{
		Type:       models.MessageSecurity,
		Body:       "suspicious activity at north gate",
		Sender:     "AI Detection System",
		Recipients: []string{"security-team"},
		Priority:   models.SeverityMedium,
	})
	require.NoError(t, err)

	require.NoError(t, l.MarkDelivered(msg.ID))
	require.Equal(t, models.MessageDelivered, s.Snapshot().Message(msg.ID).Status)

	// Delivering again changes nothing.
	require.NoError(t, l.MarkDelivered(msg.ID))
	require.Equal(t, models.MessageDelivered, s.Snapshot().Message(msg.ID).Status)

	require.ErrorIs(t, l.MarkDelivered("MSG-404"), store.ErrNotFound)
}
