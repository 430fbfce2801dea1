// internal/metrics/timeline_test.go
package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/phixforge/phixforge-backend/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain month step", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"across year boundary", date(2024, time.November, 10), 3, date(2025, time.February, 10)},
		{"clamps at month end", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps in non leap year", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"two years", date(2024, time.January, 15), 24, date(2026, time.January, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("2024-05-01"); !ok {
		t.Fatal("expected plain date to parse")
	}
	if _, ok := ParseDate("2024-05-01T12:30:00Z"); !ok {
		t.Fatal("expected RFC3339 date to parse")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatal("expected empty string to be invalid")
	}
	if _, ok := ParseDate("not-a-date"); ok {
		t.Fatal("expected garbage to be invalid")
	}
}

func TestProjectTimelineMidProject(t *testing.T) {
	start := date(2024, time.January, 15)
	now := date(2025, time.January, 15)

	tl := ProjectTimeline(start, 24, 0, now)

	assert.Equal(t, date(2026, time.January, 15), tl.EndDate)
	assert.InDelta(t, 50.0, tl.ProgressPercent, 0.2)
	assert.Equal(t, 12, tl.MonthsRemaining)
}

func TestProjectTimelineExtensionPushesEndDate(t *testing.T) {
	start := date(2024, time.January, 1)
	tl := ProjectTimeline(start, 24, 6, date(2024, time.June, 1))
	assert.Equal(t, date(2026, time.July, 1), tl.EndDate)
}

func TestProjectTimelineClamping(t *testing.T) {
	start := date(2024, time.January, 1)

	before := ProjectTimeline(start, 12, 0, date(2023, time.June, 1))
	assert.Equal(t, 0.0, before.ProgressPercent)

	after := ProjectTimeline(start, 12, 0, date(2030, time.June, 1))
	assert.Equal(t, 100.0, after.ProgressPercent)
	assert.Equal(t, 0, after.MonthsRemaining)
}

func TestProjectTimelineProgressMonotone(t *testing.T) {
	start := date(2024, time.January, 1)
	previous := -1.0
	for offset := -6; offset <= 30; offset++ {
		now := AddMonths(start, offset)
		tl := ProjectTimeline(start, 18, 0, now)
		if tl.ProgressPercent < previous {
			t.Fatalf("progress decreased at month offset %d: %f < %f", offset, tl.ProgressPercent, previous)
		}
		previous = tl.ProgressPercent
	}
}

func TestProjectTimelineZeroDuration(t *testing.T) {
	start := date(2024, time.January, 1)
	tl := ProjectTimeline(start, 0, 0, start)
	assert.Equal(t, 0.0, tl.ProgressPercent)
	assert.Equal(t, 0, tl.MonthsRemaining)
}

func TestClassify(t *testing.T) {
	now := date(2025, time.June, 1)

	tests := []struct {
		name     string
		proposal models.Proposal
		want     models.ProjectStatus
	}{
		{
			name:     "ungranted proposal is pending",
			proposal: models.Proposal{IsGranted: false, IsCompleted: true, StartDate: "2020-01-01", DurationMonths: 12},
			want:     models.ProjectStatusPending,
		},
		{
			name:     "completed flag wins over date window",
			proposal: models.Proposal{IsGranted: true, IsCompleted: true, StartDate: "2025-01-01", DurationMonths: 36},
			want:     models.ProjectStatusCompleted,
		},
		{
			name:     "inside date window is active",
			proposal: models.Proposal{IsGranted: true, StartDate: "2025-01-01", DurationMonths: 12},
			want:     models.ProjectStatusActive,
		},
		{
			name:     "past computed end date is completed",
			proposal: models.Proposal{IsGranted: true, StartDate: "2022-01-01", DurationMonths: 12},
			want:     models.ProjectStatusCompleted,
		},
		{
			name:     "extension keeps the project active",
			proposal: models.Proposal{IsGranted: true, StartDate: "2024-01-01", DurationMonths: 12, ExtensionMonths: 12},
			want:     models.ProjectStatusActive,
		},
		{
			name:     "granted without start date stays pending",
			proposal: models.Proposal{IsGranted: true},
			want:     models.ProjectStatusPending,
		},
		{
			name:     "granted with malformed start date stays pending",
			proposal: models.Proposal{IsGranted: true, StartDate: "soon", DurationMonths: 12},
			want:     models.ProjectStatusPending,
		},
		{
			name:     "not yet started project is pending",
			proposal: models.Proposal{IsGranted: true, StartDate: "2026-01-01", DurationMonths: 12},
			want:     models.ProjectStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.proposal, now))
		})
	}
}
