// Package console renders a colored status board of the operations
// center for terminal sessions. It is a read-only consumer: it
// subscribes to commit events and renders snapshots.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/crowdsentry/sentinel/pkg/models"
	"github.com/crowdsentry/sentinel/pkg/ops"
	"github.com/crowdsentry/sentinel/pkg/store"
)

// Color definitions per severity and unit state.
//
//nolint:gochecknoglobals // render palette
var (
	colorHeader    = color.New(color.FgCyan, color.Bold)
	colorOK        = color.New(color.FgGreen)
	colorWarn      = color.New(color.FgYellow)
	colorDanger    = color.New(color.FgRed)
	colorCritical  = color.New(color.FgRed, color.Bold)
	colorDim       = color.New(color.FgHiBlack)
	colorHighlight = color.New(color.FgWhite, color.Bold)
)

// Board renders snapshots and throttles event-driven redraws.
type Board struct {
	out      io.Writer
	interval time.Duration

	mu       sync.Mutex
	lastDraw time.Time
}

// NewBoard creates a board writing to stdout. Redraws triggered by
// commit events are throttled to at most one per interval.
func NewBoard(interval time.Duration) *Board {
	return &Board{out: os.Stdout, interval: interval}
}

// Attach subscribes the board to a center's commit events.
func (b *Board) Attach(center *ops.Center) error {
	return center.OnCommitted(func(_ context.Context, ev store.Event) error {
		b.mu.Lock()
		due := time.Since(b.lastDraw) >= b.interval
		if due {
			b.lastDraw = time.Now()
		}
		b.mu.Unlock()

		if due {
			b.Render(center.Snapshot(), ev.Reason)
		}
		return nil
	})
}

// Render writes one status board frame for the snapshot.
func (b *Board) Render(st *store.State, reason string) {
	w := b.out

	_, _ = colorHeader.Fprintf(w, "\n── Operations Board ")
	_, _ = colorDim.Fprintf(w, "(last change: %s)\n", reason)

	_, _ = colorHighlight.Fprintf(w, "Crowd density: ")
	_, _ = densityColor(st.CrowdDensity).Fprintf(w, "%.0f%%\n", st.CrowdDensity)

	_, _ = colorHighlight.Fprintln(w, "Units:")
	for i := range st.Units {
		u := &st.Units[i]
		line := fmt.Sprintf("  %-9s %-16s %-10s (%.0f,%.0f) %s",
			u.ID, u.Name, u.Status, u.Position.X, u.Position.Y, u.Location)
		if u.AssignedIncident != "" {
			line += " -> " + u.AssignedIncident
		}
		_, _ = unitColor(u.Status).Fprintln(w, line)
	}

	open := 0
	for i := range st.Incidents {
		if st.Incidents[i].Status != models.IncidentResolved {
			open++
		}
	}
	if open > 0 {
		_, _ = colorHighlight.Fprintln(w, "Incidents:")
		for i := range st.Incidents {
			inc := &st.Incidents[i]
			if inc.Status == models.IncidentResolved {
				continue
			}
			_, _ = severityColor(inc.Severity).Fprintf(w, "  %-9s %-12s %-10s %s (units: %d)\n",
				inc.ID, inc.Type, inc.Status, inc.Location, len(inc.AssignedUnits))
		}
	}

	unacked := ops.UnacknowledgedAlerts(st)
	pending := ops.PendingMessages(st)
	switch {
	case unacked > 0:
		_, _ = colorWarn.Fprintf(w, "Alerts awaiting acknowledgment: %d", unacked)
	default:
		_, _ = colorOK.Fprintf(w, "All alerts acknowledged")
	}
	_, _ = colorDim.Fprintf(w, "  |  pending messages: %d  |  active incidents: %d\n",
		pending, ops.ActiveIncidents(st))
}

func unitColor(s models.UnitStatus) *color.Color {
	switch s {
	case models.UnitAvailable:
		return colorOK
	case models.UnitResponding:
		return colorDanger
	default:
		return colorWarn
	}
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeverityCritical:
		return colorCritical
	case models.SeverityHigh:
		return colorDanger
	case models.SeverityMedium:
		return colorWarn
	default:
		return colorOK
	}
}

func densityColor(d float64) *color.Color {
	switch {
	case d >= 85:
		return colorCritical
	case d >= 70:
		return colorWarn
	default:
		return colorOK
	}
}
