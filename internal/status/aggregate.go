package status

import "math"

// AggregateStats accumulates counters for a group of entities. Fields that
// do not apply to the entity shape stay zero.
type AggregateStats struct {
	Count           int `json:"count"`
	CompletedCount  int `json:"completedCount"`
	TotalDevices    int `json:"totalDevices"`
	CheckedDevices  int `json:"checkedDevices"`
	NormalDevices   int `json:"normalDevices"`
	AbnormalDevices int `json:"abnormalDevices"`
	MissingDevices  int `json:"missingDevices"`
}

// GroupByTag partitions annotated entities by their derived tag. Every tag
// the profile can produce is present in the result, empty groups included,
// so distribution views render all buckets.
func GroupByTag[E any](annotated []Annotated[E], profile Profile) map[Tag][]Annotated[E] {
	groups := make(map[Tag][]Annotated[E], len(profile.Tags())+1)
	for _, tag := range profile.Tags() {
		groups[tag] = []Annotated[E]{}
	}
	for _, a := range annotated {
		groups[a.Tag] = append(groups[a.Tag], a)
	}
	return groups
}

// CountByTag reduces GroupByTag output to counts per bucket.
func CountByTag[E any](annotated []Annotated[E], profile Profile) map[Tag]int {
	counts := make(map[Tag]int, len(profile.Tags())+1)
	for _, tag := range profile.Tags() {
		counts[tag] = 0
	}
	for _, a := range annotated {
		counts[a.Tag]++
	}
	return counts
}

// AggregateBy folds entities into per-key stats. keyFn picks the grouping
// dimension (customer, month, technician) and accumulate merges one entity
// into its group's stats.
func AggregateBy[E any, K comparable](entities []E, keyFn func(E) K, accumulate func(*AggregateStats, E)) map[K]AggregateStats {
	out := make(map[K]AggregateStats)
	for _, e := range entities {
		key := keyFn(e)
		stats := out[key]
		stats.Count++
		accumulate(&stats, e)
		out[key] = stats
	}
	return out
}

// Percentage computes round-half-up percent, returning 0 for a zero total
// rather than propagating a division by zero.
func Percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// WorkloadPercentage scales a technician's workload against the busiest
// technician. The denominator floor of 5 keeps bars readable when every
// technician is near idle.
func WorkloadPercentage(workload, maxWorkload int) int {
	if maxWorkload < 5 {
		maxWorkload = 5
	}
	return int(math.Round(float64(workload) / float64(maxWorkload) * 100))
}
