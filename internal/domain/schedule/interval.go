package schedule

import "time"

// Interval is a half-open UTC time range [Start, End). Intervals are derived
// values, never persisted, and valid intervals always satisfy Start < End.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Normalize orders two instants into a valid interval.
func Normalize(a, b time.Time) Interval {
	if b.Before(a) {
		a, b = b, a
	}
	return Interval{Start: a, End: b}
}

// Overlaps reports whether the two half-open intervals share any instant.
// Touching endpoints (iv.End == other.Start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether other lies fully inside iv.
func (iv Interval) Contains(other Interval) bool {
	return !iv.Start.After(other.Start) && !iv.End.Before(other.End)
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Clip returns the part of iv inside bounds and whether anything remains.
func (iv Interval) Clip(bounds Interval) (Interval, bool) {
	if !iv.Overlaps(bounds) {
		return Interval{}, false
	}
	out := iv
	if bounds.Start.After(out.Start) {
		out.Start = bounds.Start
	}
	if bounds.End.Before(out.End) {
		out.End = bounds.End
	}
	return out, true
}

// Subtract removes every cut from each base interval. A cut that fully covers a
// fragment drops it, an overhanging cut trims it, and a cut strictly inside
// splits it in two. Each cut is applied against the current fragment set, so the
// result is independent of cut order.
func Subtract(base, cuts []Interval) []Interval {
	out := make([]Interval, 0, len(base))
	for _, b := range base {
		frags := []Interval{b}
		for _, cut := range cuts {
			if len(frags) == 0 {
				break
			}
			next := make([]Interval, 0, len(frags)+1)
			for _, f := range frags {
				if !f.Overlaps(cut) {
					next = append(next, f)
					continue
				}
				if cut.Start.After(f.Start) {
					next = append(next, Interval{Start: f.Start, End: cut.Start})
				}
				if cut.End.Before(f.End) {
					next = append(next, Interval{Start: cut.End, End: f.End})
				}
			}
			frags = next
		}
		out = append(out, frags...)
	}
	return out
}

// Intersect returns every pairwise overlap between the two sets, each clipped
// to the overlapping part.
func Intersect(as, bs []Interval) []Interval {
	out := make([]Interval, 0)
	for _, a := range as {
		for _, b := range bs {
			if !a.Overlaps(b) {
				continue
			}
			iv := a
			if b.Start.After(iv.Start) {
				iv.Start = b.Start
			}
			if b.End.Before(iv.End) {
				iv.End = b.End
			}
			out = append(out, iv)
		}
	}
	return out
}

// Merge unions the set: sorts by start and coalesces overlapping or touching
// intervals into maximal free runs.
func Merge(ivs []Interval) []Interval {
	if len(ivs) <= 1 {
		return append([]Interval(nil), ivs...)
	}
	sorted := append([]Interval(nil), ivs...)
	sortIntervals(sorted)

	out := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if iv.Start.After(cur.End) {
			out = append(out, cur)
			cur = iv
			continue
		}
		if iv.End.After(cur.End) {
			cur.End = iv.End
		}
	}
	return append(out, cur)
}

func sortIntervals(ivs []Interval) {
	// Insertion sort: interval sets here are small (days x blocks per day).
	for i := 1; i < len(ivs); i++ {
		for j := i; j > 0 && ivs[j].Start.Before(ivs[j-1].Start); j-- {
			ivs[j], ivs[j-1] = ivs[j-1], ivs[j]
		}
	}
}
