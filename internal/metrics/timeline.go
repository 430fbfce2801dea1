// internal/metrics/timeline.go
package metrics

import (
	"math"
	"time"

	"github.com/phixforge/phixforge-backend/internal/models"
)

// monthLength is the average Gregorian month (365.25 days / 12), used when
// converting a remaining duration into whole months.
const monthLength = 2629800 * time.Second

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"}

// ParseDate parses the date strings stored on proposals. Records with
// malformed dates are excluded from date-dependent aggregations, so the
// second return reports validity instead of an error.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AddMonths advances a date by whole calendar months, preserving the
// day-of-month where it exists and clamping at month end otherwise
// (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Timeline is the per-project progress figure set.
type Timeline struct {
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	ProgressPercent float64   `json:"progressPercent"`
	MonthsRemaining int       `json:"monthsRemaining"`
}

// ProjectTimeline computes end date, progress and remaining months for a
// granted project. Extension months push the end date but not the nominal
// duration. Progress is clamped to [0, 100] on both sides of the window.
func ProjectTimeline(start time.Time, durationMonths, extensionMonths int, now time.Time) Timeline {
	end := AddMonths(start, durationMonths+extensionMonths)

	total := end.Sub(start)
	var progress float64
	if total > 0 {
		progress = clamp(float64(now.Sub(start))/float64(total)*100, 0, 100)
	}

	var remaining int
	if rest := end.Sub(now); rest > 0 {
		remaining = int(math.Ceil(float64(rest) / float64(monthLength)))
	}

	return Timeline{
		StartDate:       start,
		EndDate:         end,
		ProgressPercent: progress,
		MonthsRemaining: remaining,
	}
}

// Classify buckets a proposal as pending, active or completed. The explicit
// completed flag wins over date math; date-window classification applies only
// when the grant carries a parseable start date and a positive duration.
func Classify(p models.Proposal, now time.Time) models.ProjectStatus {
	if !p.IsGranted {
		return models.ProjectStatusPending
	}
	if p.IsCompleted {
		return models.ProjectStatusCompleted
	}

	start, ok := ParseDate(p.StartDate)
	if !ok || p.DurationMonths <= 0 {
		return models.ProjectStatusPending
	}

	end := AddMonths(start, p.DurationMonths+p.ExtensionMonths)
	switch {
	case now.After(end) || now.Equal(end):
		return models.ProjectStatusCompleted
	case now.After(start):
		return models.ProjectStatusActive
	default:
		return models.ProjectStatusPending
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
