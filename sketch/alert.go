package sketch

import "time"

type (
	// Alerts is the list of transient diagnostics shown to the user, e.g.
	// sound asset failures. Alerts never interrupt the drawing or playback
	// state machine; they only fade in, linger and fade out.
	Alerts Model

	Alert struct {
		Message   string
		Priority  AlertPriority
		FadeLevel float64

		timeLeft time.Duration
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	alertDuration  = 5 * time.Second
	alertFadeSpeed = 150 * time.Millisecond
	maxAlerts      = 5
)

func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

// Add queues an alert for display. If an alert with the same message is
// already showing, its time is refreshed instead of duplicating it.
func (a *Alerts) Add(message string, priority AlertPriority) {
	for i := range a.alerts {
		if a.alerts[i].Message == message && a.alerts[i].Priority == priority {
			a.alerts[i].timeLeft = alertDuration
			return
		}
	}
	if len(a.alerts) >= maxAlerts {
		a.alerts = a.alerts[1:]
	}
	a.alerts = append(a.alerts, Alert{
		Message:  message,
		Priority: priority,
		timeLeft: alertDuration,
	})
}

// Iterate yields the alerts currently showing, oldest first.
func (a *Alerts) Iterate(yield func(alert Alert) bool) {
	for _, alert := range a.alerts {
		if !yield(alert) {
			break
		}
	}
}

// Update advances fade animations by d and drops expired alerts. Returns true
// if any alert is still animating and the caller should keep redrawing.
func (a *Alerts) Update(d time.Duration) (animating bool) {
	n := 0
	for i := range a.alerts {
		alert := &a.alerts[i]
		alert.timeLeft -= d
		delta := float64(d) / float64(alertFadeSpeed)
		if alert.timeLeft > 0 {
			if alert.FadeLevel < 1 {
				alert.FadeLevel = min(alert.FadeLevel+delta, 1)
				animating = true
			}
		} else {
			alert.FadeLevel -= delta
			if alert.FadeLevel < 0 {
				continue // fully faded out, drop it
			}
			animating = true
		}
		a.alerts[n] = *alert
		n++
	}
	a.alerts = a.alerts[:n]
	return animating
}
