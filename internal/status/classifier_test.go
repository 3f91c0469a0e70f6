package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var noon = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestClassifyNilTarget(t *testing.T) {
	require.Equal(t, TagUnknown, Classify(noon, nil, Warranty))
	require.Equal(t, TagUnknown, Classify(noon, nil, Maintenance))
}

func TestWarrantyBoundaries(t *testing.T) {
	tests := []struct {
		name string
		days int
		want Tag
	}{
		{name: "one day past", days: -1, want: TagExpired},
		{name: "today", days: 0, want: TagExpiringSoon},
		{name: "upper bound of soon", days: 30, want: TagExpiringSoon},
		{name: "just past soon", days: 31, want: TagExpiring3Month},
		{name: "upper bound of three months", days: 90, want: TagExpiring3Month},
		{name: "just past three months", days: 91, want: TagActive},
		{name: "far future", days: 365, want: TagActive},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Warranty.ClassifyDays(tc.days))
		})
	}
}

func TestMaintenanceBoundaries(t *testing.T) {
	tests := []struct {
		name string
		days int
		want Tag
	}{
		{name: "overdue", days: -1, want: TagOverdue},
		{name: "due today", days: 0, want: TagDue},
		{name: "upper bound of due", days: 3, want: TagDue},
		{name: "just past due", days: 4, want: TagUpcoming},
		{name: "upper bound of upcoming", days: 7, want: TagUpcoming},
		{name: "just past upcoming", days: 8, want: TagScheduled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Maintenance.ClassifyDays(tc.days))
		})
	}
}

func TestDaysRemainingRoundsUp(t *testing.T) {
	require.Equal(t, 1, DaysRemaining(noon, noon.Add(time.Hour)))
	require.Equal(t, 0, DaysRemaining(noon, noon))
	require.Equal(t, -1, DaysRemaining(noon, noon.Add(-25*time.Hour)))
	require.Equal(t, 30, DaysRemaining(noon, noon.AddDate(0, 0, 30)))
}

// Earlier targets never yield a larger remaining count for the same
// reference time.
func TestDaysRemainingMonotonic(t *testing.T) {
	prev := DaysRemaining(noon, noon.AddDate(0, 0, -100))
	for offset := -99; offset <= 100; offset++ {
		cur := DaysRemaining(noon, noon.AddDate(0, 0, offset))
		require.GreaterOrEqual(t, cur, prev, "offset %d", offset)
		prev = cur
	}
}

func TestClassifyDeterministic(t *testing.T) {
	target := datePtr(noon.AddDate(0, 0, 15))
	first := Classify(noon, target, Warranty)
	second := Classify(noon, target, Warranty)
	require.Equal(t, first, second)
	require.Equal(t, TagExpiringSoon, first)
}

func TestProfileTags(t *testing.T) {
	require.Equal(t, []Tag{TagExpired, TagExpiringSoon, TagExpiring3Month, TagActive}, Warranty.Tags())
	require.Equal(t, []Tag{TagOverdue, TagDue, TagUpcoming, TagScheduled}, Maintenance.Tags())
}
