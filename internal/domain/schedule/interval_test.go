//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"clinic-scheduler/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func iv(startH, startM, endH, endM int) schedule.Interval {
	return schedule.Interval{Start: at(startH, startM), End: at(endH, endM)}
}

func TestNormalize(t *testing.T) {
	t.Run("ordered input stays as-is", func(t *testing.T) {
		got := schedule.Normalize(at(9, 0), at(17, 0))
		assert.Equal(t, iv(9, 0, 17, 0), got)
	})

	t.Run("reversed input is swapped", func(t *testing.T) {
		got := schedule.Normalize(at(17, 0), at(9, 0))
		assert.Equal(t, iv(9, 0, 17, 0), got)
	})
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b schedule.Interval
		want bool
	}{
		{name: "disjoint", a: iv(9, 0, 10, 0), b: iv(11, 0, 12, 0), want: false},
		{name: "touching endpoints do not overlap", a: iv(9, 0, 10, 0), b: iv(10, 0, 11, 0), want: false},
		{name: "partial overlap", a: iv(9, 0, 10, 30), b: iv(10, 0, 11, 0), want: true},
		{name: "containment", a: iv(9, 0, 17, 0), b: iv(12, 0, 13, 0), want: true},
		{name: "identical", a: iv(9, 0, 10, 0), b: iv(9, 0, 10, 0), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// Symmetry holds for every pair.
			assert.Equal(t, tc.a.Overlaps(tc.b), tc.b.Overlaps(tc.a))
		})
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		name string
		base []schedule.Interval
		cuts []schedule.Interval
		want []schedule.Interval
	}{
		{
			name: "no cuts leaves base unchanged",
			base: []schedule.Interval{iv(9, 0, 17, 0)},
			cuts: nil,
			want: []schedule.Interval{iv(9, 0, 17, 0)},
		},
		{
			name: "subtracting itself yields nothing",
			base: []schedule.Interval{iv(9, 0, 17, 0)},
			cuts: []schedule.Interval{iv(9, 0, 17, 0)},
			want: []schedule.Interval{},
		},
		{
			name: "cut strictly inside splits in two",
			base: []schedule.Interval{iv(9, 0, 17, 0)},
			cuts: []schedule.Interval{iv(12, 0, 13, 0)},
			want: []schedule.Interval{iv(9, 0, 12, 0), iv(13, 0, 17, 0)},
		},
		{
			name: "cut overhanging start trims start",
			base: []schedule.Interval{iv(9, 0, 17, 0)},
			cuts: []schedule.Interval{iv(8, 0, 10, 0)},
			want: []schedule.Interval{iv(10, 0, 17, 0)},
		},
		{
			name: "cut overhanging end trims end",
			base: []schedule.Interval{iv(9, 0, 17, 0)},
			cuts: []schedule.Interval{iv(16, 0, 18, 0)},
			want: []schedule.Interval{iv(9, 0, 16, 0)},
		},
		{
			name: "covering cut drops the base",
			base: []schedule.Interval{iv(9, 0, 17, 0)},
			cuts: []schedule.Interval{iv(8, 0, 18, 0)},
			want: []schedule.Interval{},
		},
		{
			name: "touching cut leaves base unchanged",
			base: []schedule.Interval{iv(9, 0, 17, 0)},
			cuts: []schedule.Interval{iv(17, 0, 18, 0)},
			want: []schedule.Interval{iv(9, 0, 17, 0)},
		},
		{
			name: "second cut applies to current fragments, not the original",
			base: []schedule.Interval{iv(9, 0, 17, 0)},
			cuts: []schedule.Interval{iv(11, 0, 12, 0), iv(11, 30, 13, 0)},
			want: []schedule.Interval{iv(9, 0, 11, 0), iv(13, 0, 17, 0)},
		},
		{
			name: "multiple base intervals are cut independently",
			base: []schedule.Interval{iv(9, 0, 12, 0), iv(13, 0, 17, 0)},
			cuts: []schedule.Interval{iv(11, 0, 14, 0)},
			want: []schedule.Interval{iv(9, 0, 11, 0), iv(14, 0, 17, 0)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.Subtract(tc.base, tc.cuts)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Subtract mismatch (-want +got):\n%s", diff)
			}
			for _, f := range got {
				assert.True(t, f.Start.Before(f.End), "fragment %v must satisfy start < end", f)
			}
		})
	}

	t.Run("cut order does not change the result", func(t *testing.T) {
		base := []schedule.Interval{iv(9, 0, 17, 0)}
		cuts := []schedule.Interval{iv(10, 0, 11, 0), iv(12, 0, 13, 0), iv(15, 0, 16, 0)}
		reversed := []schedule.Interval{iv(15, 0, 16, 0), iv(12, 0, 13, 0), iv(10, 0, 11, 0)}

		forward := schedule.Subtract(base, cuts)
		backward := schedule.Subtract(base, reversed)
		if diff := cmp.Diff(forward, backward); diff != "" {
			t.Errorf("order dependence (-forward +backward):\n%s", diff)
		}
	})

	t.Run("fragments plus clipped cuts cover the base exactly", func(t *testing.T) {
		base := iv(9, 0, 17, 0)
		cuts := []schedule.Interval{iv(8, 0, 9, 30), iv(12, 0, 13, 0), iv(12, 30, 14, 0), iv(16, 45, 18, 0)}

		frags := schedule.Subtract([]schedule.Interval{base}, cuts)
		clipped := schedule.Intersect([]schedule.Interval{base}, cuts)

		covered := time.Duration(0)
		for _, f := range frags {
			covered += f.Duration()
		}
		for _, c := range schedule.Merge(clipped) {
			covered += c.Duration()
		}
		assert.Equal(t, base.Duration(), covered)
	})
}

func TestIntersect(t *testing.T) {
	t.Run("pairwise overlaps are clipped", func(t *testing.T) {
		as := []schedule.Interval{iv(9, 0, 12, 0), iv(14, 0, 17, 0)}
		bs := []schedule.Interval{iv(11, 0, 15, 0)}

		got := schedule.Intersect(as, bs)
		want := []schedule.Interval{iv(11, 0, 12, 0), iv(14, 0, 15, 0)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("disjoint sets produce nothing", func(t *testing.T) {
		got := schedule.Intersect([]schedule.Interval{iv(9, 0, 10, 0)}, []schedule.Interval{iv(10, 0, 11, 0)})
		assert.Empty(t, got)
	})
}

func TestMerge(t *testing.T) {
	t.Run("overlapping and touching runs coalesce", func(t *testing.T) {
		got := schedule.Merge([]schedule.Interval{iv(12, 0, 13, 0), iv(9, 0, 10, 0), iv(10, 0, 11, 0), iv(10, 30, 11, 30)})
		want := []schedule.Interval{iv(9, 0, 11, 30), iv(12, 0, 13, 0)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		in := []schedule.Interval{iv(12, 0, 13, 0), iv(9, 0, 10, 0)}
		_ = schedule.Merge(in)
		require.Equal(t, iv(12, 0, 13, 0), in[0])
	})
}
