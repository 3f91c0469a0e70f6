package status

import (
	"sort"
	"time"
)

// Annotated pairs an entity with its derived status bucket and signed days
// remaining. DaysRemaining is nil when the entity has no target date.
type Annotated[E any] struct {
	Entity        E    `json:"entity"`
	Tag           Tag  `json:"status"`
	DaysRemaining *int `json:"daysRemaining"`
}

// Annotate classifies each entity against the profile using the date
// extracted by dateOf. Input entities are copied into the result, never
// mutated or aliased.
func Annotate[E any](entities []E, dateOf func(E) *time.Time, profile Profile, reference time.Time) []Annotated[E] {
	out := make([]Annotated[E], 0, len(entities))
	for _, e := range entities {
		a := Annotated[E]{Entity: e, Tag: TagUnknown}
		if target := dateOf(e); target != nil {
			days := DaysRemaining(reference, *target)
			a.Tag = profile.ClassifyDays(days)
			a.DaysRemaining = &days
		}
		out = append(out, a)
	}
	return out
}

// SortByDaysRemaining orders annotated entities by days remaining ascending.
// Entities with no date sort last regardless of sign. The sort is stable so
// ties keep their original relative order.
func SortByDaysRemaining[E any](annotated []Annotated[E]) {
	sort.SliceStable(annotated, func(i, j int) bool {
		di, dj := annotated[i].DaysRemaining, annotated[j].DaysRemaining
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
}
