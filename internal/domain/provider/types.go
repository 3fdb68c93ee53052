package provider

import (
	"time"

	"github.com/google/uuid"
)

// TimeOffKind is metadata only: every kind blocks availability the same way.
type TimeOffKind string

const (
	TimeOffPTO           TimeOffKind = "pto"
	TimeOffSick          TimeOffKind = "sick"
	TimeOffCourse        TimeOffKind = "course"
	TimeOffPublicHoliday TimeOffKind = "public_holiday"
	TimeOffBlock         TimeOffKind = "block"
)

type TimeOff struct {
	ProviderID uuid.UUID
	Kind       TimeOffKind
	Start      time.Time
	End        time.Time
	Reason     string
	LocationID *uuid.UUID
	ChairID    *uuid.UUID
}

// Appointment is a committed occupied window. Read-only here: bookings are
// owned by the surrounding CRUD platform.
type Appointment struct {
	ProviderID uuid.UUID
	Start      time.Time
	End        time.Time
}

type Treatment struct {
	ID                     uuid.UUID
	DefaultDurationMinutes int
}

type Provider struct {
	ID                  uuid.UUID
	IsActive            bool
	DefaultSlotMinutes  int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	// DefaultDurations overrides treatment durations per provider, in minutes.
	DefaultDurations map[uuid.UUID]int
}

// SlotDuration resolves the bookable slot length: the provider's per-treatment
// override wins, then the treatment default, then the provider's default slot
// size. With no treatment the default slot size applies.
func (p Provider) SlotDuration(t *Treatment) time.Duration {
	if t != nil {
		if m, ok := p.DefaultDurations[t.ID]; ok && m > 0 {
			return time.Duration(m) * time.Minute
		}
		if t.DefaultDurationMinutes > 0 {
			return time.Duration(t.DefaultDurationMinutes) * time.Minute
		}
	}
	return time.Duration(p.DefaultSlotMinutes) * time.Minute
}

// SlotStep is the quantization granularity for offered start times,
// independent of the chosen slot duration.
func (p Provider) SlotStep() time.Duration {
	return time.Duration(p.DefaultSlotMinutes) * time.Minute
}

// Buffers returns the padding applied around booked appointments during which
// the provider is also considered unavailable.
func (p Provider) Buffers() (before, after time.Duration) {
	return time.Duration(p.BufferBeforeMinutes) * time.Minute,
		time.Duration(p.BufferAfterMinutes) * time.Minute
}
