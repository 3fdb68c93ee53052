package readstore

import (
	"context"
	"errors"

	"clinic-scheduler/internal/domain/provider"
	"clinic-scheduler/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Queryer is the subset of pgxpool.Pool the read stores need; tests can
// satisfy it with a single connection or a transaction.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ProviderReadStore struct {
	db Queryer
}

func NewProviderReadStore(db Queryer) *ProviderReadStore {
	return &ProviderReadStore{db: db}
}

const findProviderByID = `
SELECT id, is_active, default_slot_minutes, buffer_before_minutes, buffer_after_minutes
FROM providers
WHERE id = $1
`

const listProviderTreatmentDurations = `
SELECT treatment_id, duration_minutes
FROM provider_treatment_durations
WHERE provider_id = $1
`

func (r *ProviderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error) {
	var p provider.Provider
	err := r.db.QueryRow(ctx, findProviderByID, id).Scan(
		&p.ID,
		&p.IsActive,
		&p.DefaultSlotMinutes,
		&p.BufferBeforeMinutes,
		&p.BufferAfterMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider by ID", err)
	}

	rows, err := r.db.Query(ctx, listProviderTreatmentDurations, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider treatment durations", err)
	}
	defer rows.Close()

	p.DefaultDurations = make(map[uuid.UUID]int)
	for rows.Next() {
		var treatmentID uuid.UUID
		var minutes int
		if err := rows.Scan(&treatmentID, &minutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan provider treatment duration", err)
		}
		p.DefaultDurations[treatmentID] = minutes
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read provider treatment durations", err)
	}

	return &p, nil
}
