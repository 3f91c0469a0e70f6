// Package status implements the time-window classification, annotation and
// aggregation engine behind warranty, maintenance and inventory views. All
// functions are pure: callers supply the reference time once per batch so a
// computation never flickers across a day boundary mid-run.
package status

import (
	"math"
	"time"
)

// Tag is a derived status bucket name.
type Tag string

// Warranty tags.
const (
	TagExpired        Tag = "expired"
	TagExpiringSoon   Tag = "expiring_soon"
	TagExpiring3Month Tag = "expiring_within_3_months"
	TagActive         Tag = "active"
)

// Maintenance tags.
const (
	TagOverdue   Tag = "overdue"
	TagDue       Tag = "due"
	TagUpcoming  Tag = "upcoming"
	TagScheduled Tag = "scheduled"
)

// TagUnknown is returned when the target date is absent.
const TagUnknown Tag = "unknown"

// threshold maps an inclusive day-count upper bound to a tag.
type threshold struct {
	maxDaysInclusive int
	tag              Tag
}

// Profile is an ordered threshold table. Thresholds are evaluated in
// ascending order of their upper bound; the first satisfied one wins, and
// the default tag applies past the last bound.
type Profile struct {
	name       string
	thresholds []threshold
	defaultTag Tag
}

// Warranty classifies warranty expiry dates:
// expired < 0 days <= expiring_soon <= 30 < expiring_within_3_months <= 90 < active.
var Warranty = Profile{
	name: "warranty",
	thresholds: []threshold{
		{maxDaysInclusive: -1, tag: TagExpired},
		{maxDaysInclusive: 30, tag: TagExpiringSoon},
		{maxDaysInclusive: 90, tag: TagExpiring3Month},
	},
	defaultTag: TagActive,
}

// Maintenance classifies next-due dates:
// overdue < 0 days <= due <= 3 < upcoming <= 7 < scheduled.
var Maintenance = Profile{
	name: "maintenance",
	thresholds: []threshold{
		{maxDaysInclusive: -1, tag: TagOverdue},
		{maxDaysInclusive: 3, tag: TagDue},
		{maxDaysInclusive: 7, tag: TagUpcoming},
	},
	defaultTag: TagScheduled,
}

// Name returns the profile's identifier.
func (p Profile) Name() string { return p.name }

// Tags returns every tag the profile can produce, most urgent first,
// excluding unknown.
func (p Profile) Tags() []Tag {
	tags := make([]Tag, 0, len(p.thresholds)+1)
	for _, t := range p.thresholds {
		tags = append(tags, t.tag)
	}
	return append(tags, p.defaultTag)
}

// DaysRemaining returns the signed number of days from reference to target,
// rounded up. Negative values mean the target date has passed.
func DaysRemaining(reference, target time.Time) int {
	return int(math.Ceil(target.Sub(reference).Hours() / 24))
}

// ClassifyDays buckets a precomputed day count.
func (p Profile) ClassifyDays(days int) Tag {
	for _, t := range p.thresholds {
		if days <= t.maxDaysInclusive {
			return t.tag
		}
	}
	return p.defaultTag
}

// Classify buckets the interval from reference to target. A nil target
// short-circuits to unknown.
func Classify(reference time.Time, target *time.Time, profile Profile) Tag {
	if target == nil {
		return TagUnknown
	}
	return profile.ClassifyDays(DaysRemaining(reference, *target))
}
