package readstore

import (
	"context"
	"errors"

	"clinic-scheduler/internal/domain/provider"
	"clinic-scheduler/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TreatmentReadStore struct {
	db Queryer
}

func NewTreatmentReadStore(db Queryer) *TreatmentReadStore {
	return &TreatmentReadStore{db: db}
}

const findTreatmentByID = `
SELECT id, default_duration_minutes
FROM treatments
WHERE id = $1
`

func (r *TreatmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*provider.Treatment, error) {
	var t provider.Treatment
	err := r.db.QueryRow(ctx, findTreatmentByID, id).Scan(
		&t.ID,
		&t.DefaultDurationMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("treatment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find treatment by ID", err)
	}
	return &t, nil
}
