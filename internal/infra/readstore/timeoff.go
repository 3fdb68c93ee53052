package readstore

import (
	"context"
	"time"

	"clinic-scheduler/internal/domain/provider"
	"clinic-scheduler/internal/infra"

	"github.com/google/uuid"
)

type TimeOffReadStore struct {
	db Queryer
}

func NewTimeOffReadStore(db Queryer) *TimeOffReadStore {
	return &TimeOffReadStore{db: db}
}

const listTimeOffOverlapping = `
SELECT provider_id, kind, starts_at, ends_at, reason, location_id, chair_id
FROM time_off
WHERE provider_id = $1 AND starts_at < $3 AND ends_at > $2
ORDER BY starts_at
`

func (r *TimeOffReadStore) ListOverlapping(ctx context.Context, providerID uuid.UUID, rangeFrom, rangeTo time.Time) ([]provider.TimeOff, error) {
	rows, err := r.db.Query(ctx, listTimeOffOverlapping, providerID, rangeFrom, rangeTo)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time off", err)
	}
	defer rows.Close()

	var offs []provider.TimeOff
	for rows.Next() {
		var o provider.TimeOff
		if err := rows.Scan(&o.ProviderID, &o.Kind, &o.Start, &o.End, &o.Reason, &o.LocationID, &o.ChairID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time off", err)
		}
		offs = append(offs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time off", err)
	}

	return offs, nil
}
