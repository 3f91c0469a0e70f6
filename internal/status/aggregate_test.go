package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name         string
		count, total int
		want         int
	}{
		{name: "zero total", count: 0, total: 0, want: 0},
		{name: "nonzero over zero", count: 3, total: 0, want: 0},
		{name: "three quarters", count: 3, total: 4, want: 75},
		{name: "third rounds down", count: 1, total: 3, want: 33},
		{name: "two thirds rounds up", count: 2, total: 3, want: 67},
		{name: "half rounds up", count: 1, total: 8, want: 13},
		{name: "full", count: 5, total: 5, want: 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Percentage(tc.count, tc.total))
		})
	}
}

func TestWorkloadPercentage(t *testing.T) {
	// The busiest technician defines the scale, floored at 5.
	require.Equal(t, 100, WorkloadPercentage(8, 8))
	require.Equal(t, 50, WorkloadPercentage(4, 8))
	require.Equal(t, 40, WorkloadPercentage(2, 3))
	require.Equal(t, 0, WorkloadPercentage(0, 0))
	require.Equal(t, 20, WorkloadPercentage(1, 1))
}

func TestGroupByTagIncludesEmptyBuckets(t *testing.T) {
	in := []fixture{
		{Name: "d1", Expiry: datePtr(noon.AddDate(0, 0, -5))},
		{Name: "d2", Expiry: datePtr(noon.AddDate(0, 0, 10))},
		{Name: "d3", Expiry: datePtr(noon.AddDate(0, 0, 200))},
	}
	annotated := Annotate(in, expiryOf, Warranty, noon)
	groups := GroupByTag(annotated, Warranty)

	require.Len(t, groups[TagExpired], 1)
	require.Equal(t, "d1", groups[TagExpired][0].Entity.Name)
	require.Len(t, groups[TagExpiringSoon], 1)
	require.Equal(t, "d2", groups[TagExpiringSoon][0].Entity.Name)
	require.Len(t, groups[TagActive], 1)
	require.Equal(t, "d3", groups[TagActive][0].Entity.Name)
	require.Empty(t, groups[TagExpiring3Month])
	require.Contains(t, groups, TagExpiring3Month)

	counts := CountByTag(annotated, Warranty)
	require.Equal(t, map[Tag]int{
		TagExpired:        1,
		TagExpiringSoon:   1,
		TagExpiring3Month: 0,
		TagActive:         1,
	}, counts)
}

type session struct {
	Customer  string
	Completed bool
	Total     int
	Normal    int
	Abnormal  int
	Missing   int
}

func TestAggregateByCustomer(t *testing.T) {
	sessions := []session{
		{Customer: "acme", Completed: true, Total: 50, Normal: 45, Abnormal: 3, Missing: 2},
		{Customer: "acme", Completed: false, Total: 30},
		{Customer: "globex", Completed: true, Total: 20, Normal: 20},
	}

	stats := AggregateBy(sessions, func(s session) string { return s.Customer }, func(agg *AggregateStats, s session) {
		if s.Completed {
			agg.CompletedCount++
		}
		agg.TotalDevices += s.Total
		agg.NormalDevices += s.Normal
		agg.AbnormalDevices += s.Abnormal
		agg.MissingDevices += s.Missing
	})

	require.Len(t, stats, 2)
	acme := stats["acme"]
	require.Equal(t, 2, acme.Count)
	require.Equal(t, 1, acme.CompletedCount)
	require.Equal(t, 80, acme.TotalDevices)
	require.Equal(t, 45, acme.NormalDevices)
	require.Equal(t, 50, Percentage(acme.CompletedCount, acme.Count))

	globex := stats["globex"]
	require.Equal(t, 1, globex.Count)
	require.Equal(t, 100, Percentage(globex.CompletedCount, globex.Count))
}
