//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"clinic-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUUID(s string) uuid.UUID {
	return uuid.MustParse(s)
}

func tp(t time.Time) *time.Time {
	return &t
}

func TestActiveVersion(t *testing.T) {
	providerID := mustUUID("7c9a1f00-2222-4d7a-8e1a-000000000002")
	rangeFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeTo := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	v := func(version int, from, to *time.Time) schedule.Version {
		return schedule.Version{ProviderID: providerID, Timezone: "Australia/Sydney", EffectiveFrom: from, EffectiveTo: to, Version: version}
	}

	cases := []struct {
		name        string
		versions    []schedule.Version
		wantVersion int
		wantFound   bool
	}{
		{
			name:      "no versions",
			versions:  nil,
			wantFound: false,
		},
		{
			name: "version outside range is ignored",
			versions: []schedule.Version{
				v(1, nil, tp(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))),
			},
			wantFound: false,
		},
		{
			name: "open-ended version always applies",
			versions: []schedule.Version{
				v(1, nil, nil),
			},
			wantVersion: 1,
			wantFound:   true,
		},
		{
			name: "most recent effectiveFrom wins among overlapping",
			versions: []schedule.Version{
				v(1, tp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), nil),
				v(2, tp(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)), nil),
			},
			wantVersion: 2,
			wantFound:   true,
		},
		{
			name: "nil effectiveFrom loses to a concrete one",
			versions: []schedule.Version{
				v(3, nil, nil),
				v(1, tp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), nil),
			},
			wantVersion: 1,
			wantFound:   true,
		},
		{
			name: "equal effectiveFrom ties break to highest version",
			versions: []schedule.Version{
				v(2, tp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), nil),
				v(5, tp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), nil),
				v(3, tp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), nil),
			},
			wantVersion: 5,
			wantFound:   true,
		},
		{
			name: "selection is independent of slice order",
			versions: []schedule.Version{
				v(2, tp(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)), nil),
				v(1, tp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), nil),
			},
			wantVersion: 2,
			wantFound:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := schedule.ActiveVersion(tc.versions, rangeFrom, rangeTo)
			require.Equal(t, tc.wantFound, found)
			if found {
				assert.Equal(t, tc.wantVersion, got.Version)
			}
		})
	}
}

func TestVersionOverlapsRange(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	t.Run("effective window touching range start does not overlap", func(t *testing.T) {
		v := schedule.Version{EffectiveTo: tp(from)}
		assert.False(t, v.OverlapsRange(from, to))
	})

	t.Run("effective window touching range end does not overlap", func(t *testing.T) {
		v := schedule.Version{EffectiveFrom: tp(to)}
		assert.False(t, v.OverlapsRange(from, to))
	})

	t.Run("partial overlap applies", func(t *testing.T) {
		v := schedule.Version{
			EffectiveFrom: tp(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
			EffectiveTo:   tp(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
		}
		assert.True(t, v.OverlapsRange(from, to))
	})
}
