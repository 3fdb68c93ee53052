package request

import (
	"time"

	"clinic-scheduler/internal/usecase"

	"github.com/google/uuid"
)

// AvailabilityParams carries the query-string range for the slot listing
// endpoint. Times are RFC 3339; optional UUID filters are parsed in the
// handler.
type AvailabilityParams struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (p *AvailabilityParams) ToQuery(providerID uuid.UUID, treatmentID, locationID, chairID *uuid.UUID) usecase.AvailabilityQuery {
	return usecase.AvailabilityQuery{
		ProviderID:  providerID,
		From:        p.From.UTC(),
		To:          p.To.UTC(),
		TreatmentID: treatmentID,
		LocationID:  locationID,
		ChairID:     chairID,
	}
}

type SuggestionRequest struct {
	ProviderIDs     []uuid.UUID `json:"provider_ids" binding:"required,min=1"`
	WindowStart     time.Time   `json:"window_start" binding:"required"`
	WindowEnd       time.Time   `json:"window_end" binding:"required"`
	TreatmentID     *uuid.UUID  `json:"treatment_id" binding:"omitempty"`
	DurationMinutes *int        `json:"duration_minutes" binding:"omitempty,min=1"`
}

func (r *SuggestionRequest) ToQuery() usecase.SuggestionQuery {
	return usecase.SuggestionQuery{
		ProviderIDs:     r.ProviderIDs,
		WindowStart:     r.WindowStart.UTC(),
		WindowEnd:       r.WindowEnd.UTC(),
		TreatmentID:     r.TreatmentID,
		DurationMinutes: r.DurationMinutes,
	}
}
