package readstore

import (
	"context"
	"encoding/json"

	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/infra"

	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	db Queryer
}

func NewScheduleReadStore(db Queryer) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

const listScheduleVersions = `
SELECT provider_id, version, timezone, weekly, breaks, effective_from, effective_to
FROM schedule_versions
WHERE provider_id = $1
ORDER BY version
`

// ListVersions returns the provider's full append-only version log; picking
// the version governing a range happens in the domain layer.
func (r *ScheduleReadStore) ListVersions(ctx context.Context, providerID uuid.UUID) ([]schedule.Version, error) {
	rows, err := r.db.Query(ctx, listScheduleVersions, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule versions", err)
	}
	defer rows.Close()

	var versions []schedule.Version
	for rows.Next() {
		var (
			v              schedule.Version
			weekly, breaks []byte
		)
		if err := rows.Scan(&v.ProviderID, &v.Version, &v.Timezone, &weekly, &breaks, &v.EffectiveFrom, &v.EffectiveTo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule version", err)
		}
		if err := json.Unmarshal(weekly, &v.Weekly); err != nil {
			return nil, infra.WrapRepoErr("failed to decode weekly pattern", err)
		}
		if len(breaks) > 0 {
			if err := json.Unmarshal(breaks, &v.Breaks); err != nil {
				return nil, infra.WrapRepoErr("failed to decode break pattern", err)
			}
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedule versions", err)
	}

	return versions, nil
}
