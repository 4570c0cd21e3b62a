// Package alerting manages the alert and message lifecycles: raising
// and acknowledging alerts, composing messages, acknowledgment
// bookkeeping, and the bounded message retention window.
package alerting

import (
	"fmt"
	"time"

	"github.com/crowdsentry/sentinel/pkg/models"
	"github.com/crowdsentry/sentinel/pkg/store"
)

// MaxMessages bounds message retention. Composing beyond the bound
// evicts the oldest entries.
const MaxMessages = 50

// Lifecycle performs alert and message operations against a store.
type Lifecycle struct {
	store *store.Store
	now   func() time.Time
}

// NewLifecycle creates a lifecycle coordinator. The now function stamps
// new alerts and messages and may be overridden for tests.
func NewLifecycle(s *store.Store, now func() time.Time) *Lifecycle {
	if now == nil {
		now = time.Now
	}
	return &Lifecycle{store: s, now: now}
}

// Raise adds an alert at the front of the alert sequence (newest
// first). A missing id or timestamp is filled in; the created alert is
// returned.
func (l *Lifecycle) Raise(alert models.Alert) (models.Alert, error) {
	if alert.ID == "" {
		alert.ID = models.NewID("ALERT")
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = l.now()
	}
	if alert.Type == "" {
		alert.Type = models.AlertInfo
	}
	if alert.Severity == "" {
		alert.Severity = models.SeverityLow
	}

	err := l.store.Apply("alert_raised", func(st *store.State) error {
		if st.Alert(alert.ID) != nil {
			return fmt.Errorf("alert %s already exists: %w", alert.ID, store.ErrValidation)
		}
		st.Alerts = append([]models.Alert{alert}, st.Alerts...)
		return nil
	})
	if err != nil {
		return models.Alert{}, err
	}

	l.store.Metrics().Counter(store.AlertsTotal).Inc()

	return alert, nil
}

// Acknowledge marks an alert acknowledged. Re-acknowledging is a no-op
// success; acknowledgment is one-way.
func (l *Lifecycle) Acknowledge(alertID string) error {
	return l.store.Apply("alert_acknowledged", func(st *store.State) error {
		alert := st.Alert(alertID)
		if alert == nil {
			return fmt.Errorf("alert %s: %w", alertID, store.ErrNotFound)
		}
		alert.Acknowledged = true
		return nil
	})
}

// ClearAll acknowledges every alert in one commit.
func (l *Lifecycle) ClearAll() error {
	return l.store.Apply("alerts_cleared", func(st *store.State) error {
		for i := range st.Alerts {
			st.Alerts[i].Acknowledged = true
		}
		return nil
	})
}

// Compose validates and records a message draft. The id, timestamp, and
// sent status are assigned here; RequiresAck is derived from the
// priority unless the draft sets it explicitly via RequiresAckSet.
func (l *Lifecycle) Compose(draft Draft) (models.Message, error) {
	if draft.Body == "" {
		return models.Message{}, fmt.Errorf("message body is empty: %w", store.ErrValidation)
	}
	if len(draft.Recipients) == 0 {
		return models.Message{}, fmt.Errorf("message has no recipients: %w", store.ErrValidation)
	}

	msg := models.Message{
		ID:             models.NewID("MSG"),
		Type:           draft.Type,
		Title:          draft.Title,
		Body:           draft.Body,
		Sender:         draft.Sender,
		Recipients:     append([]string(nil), draft.Recipients...),
		Timestamp:      l.now(),
		Priority:       draft.Priority,
		Status:         models.MessageSent,
		AcknowledgedBy: []string{},
	}
	if msg.Type == "" {
		msg.Type = models.MessageBroadcast
	}
	if msg.Priority == "" {
		msg.Priority = models.SeverityMedium
	}
	if draft.RequiresAckSet {
		msg.RequiresAck = draft.RequiresAck
	} else {
		msg.RequiresAck = msg.Priority == models.SeverityHigh || msg.Priority == models.SeverityCritical
	}

	err := l.store.Apply("message_composed", func(st *store.State) error {
		st.Messages = append([]models.Message{msg}, st.Messages...)
		if len(st.Messages) > MaxMessages {
			st.Messages = st.Messages[:MaxMessages]
		}
		return nil
	})
	if err != nil {
		return models.Message{}, err
	}

	l.store.Metrics().Counter(store.MessagesTotal).Inc()

	return msg, nil
}

// AcknowledgeMessage appends the actor to the message's acknowledgment
// record. Duplicate actors append again; the delivery status field is
// deliberately left alone.
func (l *Lifecycle) AcknowledgeMessage(messageID, actorID string) error {
	if actorID == "" {
		return fmt.Errorf("actor id is empty: %w", store.ErrValidation)
	}
	return l.store.Apply("message_acknowledged", func(st *store.State) error {
		msg := st.Message(messageID)
		if msg == nil {
			return fmt.Errorf("message %s: %w", messageID, store.ErrNotFound)
		}
		msg.AcknowledgedBy = append(msg.AcknowledgedBy, actorID)
		return nil
	})
}

// MarkDelivered advances a sent message to delivered. Failed messages
// are terminal; delivered and acknowledged stay as they are.
func (l *Lifecycle) MarkDelivered(messageID string) error {
	return l.store.Apply("message_delivered", func(st *store.State) error {
		msg := st.Message(messageID)
		if msg == nil {
			return fmt.Errorf("message %s: %w", messageID, store.ErrNotFound)
		}
		if msg.Status == models.MessageSent {
			msg.Status = models.MessageDelivered
		}
		return nil
	})
}

// Draft is the input to Compose. RequiresAckSet distinguishes "derive
// from priority" from an explicit false, which simulated inbound
// messages use.
type Draft struct {
	Type           models.MessageType
	Title          string
	Body           string
	Sender         string
	Recipients     []string
	Priority       models.Severity
	RequiresAck    bool
	RequiresAckSet bool
}
