package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Version is one immutable entry in a provider's append-only schedule log.
// Edits never mutate history; they insert a new entry with a higher Version.
type Version struct {
	ProviderID    uuid.UUID
	Weekly        WeeklyPattern
	Breaks        WeeklyPattern
	Timezone      string
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
	Version       int
}

// OverlapsRange reports whether the version's effective window [EffectiveFrom,
// EffectiveTo) overlaps the query range. A nil bound is open-ended.
func (v Version) OverlapsRange(rangeFrom, rangeTo time.Time) bool {
	if v.EffectiveFrom != nil && !v.EffectiveFrom.Before(rangeTo) {
		return false
	}
	if v.EffectiveTo != nil && !v.EffectiveTo.After(rangeFrom) {
		return false
	}
	return true
}

// ActiveVersion selects the schedule version governing the query range: among
// versions whose effective window overlaps it, the one with the most recent
// EffectiveFrom wins; ties fall to the highest Version number. The choice is a
// pure function of the inputs, never of store iteration order.
func ActiveVersion(versions []Version, rangeFrom, rangeTo time.Time) (Version, bool) {
	var best Version
	found := false
	for _, v := range versions {
		if !v.OverlapsRange(rangeFrom, rangeTo) {
			continue
		}
		if !found || moreRecent(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

func moreRecent(a, b Version) bool {
	switch {
	case a.EffectiveFrom == nil && b.EffectiveFrom == nil:
		return a.Version > b.Version
	case a.EffectiveFrom == nil:
		return false
	case b.EffectiveFrom == nil:
		return true
	case a.EffectiveFrom.Equal(*b.EffectiveFrom):
		return a.Version > b.Version
	default:
		return a.EffectiveFrom.After(*b.EffectiveFrom)
	}
}
