package readstore

import (
	"context"
	"time"

	"clinic-scheduler/internal/domain/provider"
	"clinic-scheduler/internal/infra"

	"github.com/google/uuid"
)

type AppointmentReadStore struct {
	db Queryer
}

func NewAppointmentReadStore(db Queryer) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

// Cancelled rows do not occupy the calendar.
const listAppointmentsOverlapping = `
SELECT provider_id, starts_at, ends_at
FROM appointments
WHERE provider_id = $1 AND status <> 'cancelled' AND starts_at < $3 AND ends_at > $2
ORDER BY starts_at
`

func (r *AppointmentReadStore) ListOverlapping(ctx context.Context, providerID uuid.UUID, rangeFrom, rangeTo time.Time) ([]provider.Appointment, error) {
	rows, err := r.db.Query(ctx, listAppointmentsOverlapping, providerID, rangeFrom, rangeTo)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var appts []provider.Appointment
	for rows.Next() {
		var a provider.Appointment
		if err := rows.Scan(&a.ProviderID, &a.Start, &a.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointments", err)
	}

	return appts, nil
}
