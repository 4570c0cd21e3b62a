package simfeed

import (
	"github.com/crowdsentry/sentinel/pkg/alerting"
	"github.com/crowdsentry/sentinel/pkg/models"
)

// inboundMessages is the fixed catalogue of simulated inbound traffic.
// RequiresAckSet is explicit on every entry: simulated senders decide
// acknowledgment themselves instead of deriving it from priority.
//
//nolint:gochecknoglobals // fixed catalogue
var inboundMessages = []alerting.Draft{
	{
		Type:           models.MessageMedical,
		Title:          "Medical Team Dispatched",
		Body:           "Medical Team 1 dispatched to Food Court for reported injury. ETA 3 minutes.",
		Sender:         "AI Dispatch System",
		Recipients:     []string{"medical-team", "command-center"},
		Priority:       models.SeverityHigh,
		RequiresAck:    true,
		RequiresAckSet: true,
	},
	{
		Type:           models.MessageSecurity,
		Title:          "Security Alert",
		Body:           "Suspicious activity detected at North Gate. Security Team Alpha responding.",
		Sender:         "AI Detection System",
		Recipients:     []string{"security-team"},
		Priority:       models.SeverityMedium,
		RequiresAck:    false,
		RequiresAckSet: true,
	},
	{
		Type:           models.MessageUpdate,
		Title:          "Crowd Density Update",
		Body:           "Main Stage area reaching 80% capacity. Consider crowd flow management.",
		Sender:         "Crowd Analytics AI",
		Recipients:     []string{"all-units"},
		Priority:       models.SeverityMedium,
		RequiresAck:    false,
		RequiresAckSet: true,
	},
}
