package response

import (
	"time"

	"clinic-scheduler/internal/usecase"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	LocalLabel string  `json:"local_label"`
	LocationID *string `json:"location_id,omitempty"`
	ChairID    *string `json:"chair_id,omitempty"`
}

type AvailabilityResponse struct {
	ProviderID string         `json:"provider_id"`
	Slots      []SlotResponse `json:"slots"`
}

func FromSlots(providerID uuid.UUID, slots []usecase.Slot) *AvailabilityResponse {
	res := &AvailabilityResponse{
		ProviderID: providerID.String(),
		Slots:      make([]SlotResponse, len(slots)),
	}
	for i, s := range slots {
		res.Slots[i] = SlotResponse{
			Start:      s.StartUTC.Format(time.RFC3339),
			End:        s.EndUTC.Format(time.RFC3339),
			LocalLabel: s.LocalLabel,
			LocationID: uuidString(s.LocationID),
			ChairID:    uuidString(s.ChairID),
		}
	}
	return res
}

type RankedProviderResponse struct {
	ProviderID string  `json:"provider_id"`
	Fits       bool    `json:"fits"`
	Partial    bool    `json:"partial"`
	Score      float64 `json:"score"`
}

type SuggestionResponse struct {
	Providers []RankedProviderResponse `json:"providers"`
}

func FromRanking(ranked []usecase.RankedProvider) *SuggestionResponse {
	res := &SuggestionResponse{Providers: make([]RankedProviderResponse, len(ranked))}
	for i, r := range ranked {
		res.Providers[i] = RankedProviderResponse{
			ProviderID: r.ProviderID.String(),
			Fits:       r.Fits,
			Partial:    r.Partial,
			Score:      r.Score,
		}
	}
	return res
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
