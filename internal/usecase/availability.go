package usecase

import (
	"context"
	"sort"
	"time"

	"clinic-scheduler/internal/domain/provider"
	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read-only snapshots of the records owned by the surrounding CRUD platform.
// Range-overlap queries use half-open semantics: start < rangeTo && end > rangeFrom.

type ProviderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error)
}

type TreatmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*provider.Treatment, error)
}

type ScheduleReadStore interface {
	ListVersions(ctx context.Context, providerID uuid.UUID) ([]schedule.Version, error)
}

type TimeOffReadStore interface {
	ListOverlapping(ctx context.Context, providerID uuid.UUID, rangeFrom, rangeTo time.Time) ([]provider.TimeOff, error)
}

type AppointmentReadStore interface {
	ListOverlapping(ctx context.Context, providerID uuid.UUID, rangeFrom, rangeTo time.Time) ([]provider.Appointment, error)
}

// Slot is a bookable window, recomputed on every call and never cached.
type Slot struct {
	StartUTC   time.Time
	EndUTC     time.Time
	LocalLabel string
	LocationID *uuid.UUID
	ChairID    *uuid.UUID
}

type AvailabilityQuery struct {
	ProviderID  uuid.UUID
	From        time.Time
	To          time.Time
	TreatmentID *uuid.UUID
	LocationID  *uuid.UUID
	ChairID     *uuid.UUID
}

func (q AvailabilityQuery) validate() error {
	if !q.From.Before(q.To) {
		return errs.ErrInvalidRange
	}
	return nil
}

type AvailabilityUseCase interface {
	// ComputeAvailability returns the bookable slots for one provider over a
	// range. Inactive/unknown providers and ranges with no active schedule
	// version produce an empty result, not an error.
	ComputeAvailability(ctx context.Context, q AvailabilityQuery) ([]Slot, error)

	// FreeIntervals returns the provider's merged free time over the range,
	// before location filtering and quantization. Used by the suggestion ranker
	// for containment checks against a requested window.
	FreeIntervals(ctx context.Context, providerID uuid.UUID, rangeFrom, rangeTo time.Time) ([]schedule.Interval, error)
}

type availabilityUseCaseImpl struct {
	providers    ProviderReadStore
	treatments   TreatmentReadStore
	schedules    ScheduleReadStore
	timeOff      TimeOffReadStore
	appointments AppointmentReadStore
}

func NewAvailabilityUseCase(
	providers ProviderReadStore,
	treatments TreatmentReadStore,
	schedules ScheduleReadStore,
	timeOff TimeOffReadStore,
	appointments AppointmentReadStore,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		providers:    providers,
		treatments:   treatments,
		schedules:    schedules,
		timeOff:      timeOff,
		appointments: appointments,
	}
}

func (u *availabilityUseCaseImpl) ComputeAvailability(ctx context.Context, q AvailabilityQuery) ([]Slot, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	prov, loc, free, err := u.freeBlocks(ctx, q.ProviderID, q.From, q.To)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return []Slot{}, nil
	}

	treatment, err := u.resolveTreatment(ctx, q.TreatmentID)
	if err != nil {
		return nil, err
	}

	duration := prov.SlotDuration(treatment)
	step := prov.SlotStep()
	if duration <= 0 || step <= 0 {
		return nil, errs.ErrInvalidDuration
	}

	slots := make([]Slot, 0)
	for _, b := range free {
		if !matchesFilter(b.LocationID, q.LocationID) || !matchesFilter(b.ChairID, q.ChairID) {
			continue
		}
		slots = append(slots, quantize(b, duration, step, loc)...)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].StartUTC.Before(slots[j].StartUTC) })
	return slots, nil
}

func (u *availabilityUseCaseImpl) FreeIntervals(ctx context.Context, providerID uuid.UUID, rangeFrom, rangeTo time.Time) ([]schedule.Interval, error) {
	if !rangeFrom.Before(rangeTo) {
		return nil, errs.ErrInvalidRange
	}

	prov, _, free, err := u.freeBlocks(ctx, providerID, rangeFrom, rangeTo)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return []schedule.Interval{}, nil
	}

	ivs := make([]schedule.Interval, 0, len(free))
	for _, b := range free {
		ivs = append(ivs, b.Interval)
	}
	return schedule.Merge(ivs), nil
}

// freeBlocks runs steps 1-6 of the availability pipeline: active schedule
// version, working-block expansion, then subtraction of breaks, time off and
// buffered appointments. A nil provider means "empty result" (inactive,
// unknown, or no active version), which callers must not treat as an error.
func (u *availabilityUseCaseImpl) freeBlocks(ctx context.Context, providerID uuid.UUID, rangeFrom, rangeTo time.Time) (*provider.Provider, *time.Location, []schedule.Block, error) {
	prov, err := u.providers.FindByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil, nil
		}
		return nil, nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !prov.IsActive {
		return nil, nil, nil, nil
	}

	versions, err := u.schedules.ListVersions(ctx, providerID)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	active, ok := schedule.ActiveVersion(versions, rangeFrom, rangeTo)
	if !ok {
		return nil, nil, nil, nil
	}

	loc, err := time.LoadLocation(active.Timezone)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrUnknownTimezone)
	}

	working := schedule.ExpandWeekly(active.Weekly, loc, rangeFrom, rangeTo)
	if len(working) == 0 {
		return prov, loc, nil, nil
	}

	cuts := make([]schedule.Interval, 0)
	for _, b := range schedule.ExpandWeekly(active.Breaks, loc, rangeFrom, rangeTo) {
		cuts = append(cuts, b.Interval)
	}

	offs, err := u.timeOff.ListOverlapping(ctx, providerID, rangeFrom, rangeTo)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, off := range offs {
		cuts = append(cuts, schedule.Normalize(off.Start, off.End))
	}

	appts, err := u.appointments.ListOverlapping(ctx, providerID, rangeFrom, rangeTo)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	before, after := prov.Buffers()
	for _, a := range appts {
		cuts = append(cuts, schedule.Interval{Start: a.Start.Add(-before), End: a.End.Add(after)})
	}

	free := make([]schedule.Block, 0, len(working))
	for _, b := range working {
		for _, frag := range schedule.Subtract([]schedule.Interval{b.Interval}, cuts) {
			free = append(free, schedule.Block{
				Interval:   frag,
				Weekday:    b.Weekday,
				LocationID: b.LocationID,
				ChairID:    b.ChairID,
			})
		}
	}
	return prov, loc, free, nil
}

func (u *availabilityUseCaseImpl) resolveTreatment(ctx context.Context, treatmentID *uuid.UUID) (*provider.Treatment, error) {
	if treatmentID == nil {
		return nil, nil
	}
	t, err := u.treatments.FindByID(ctx, *treatmentID)
	if err != nil {
		// An unknown treatment falls back to the provider's default slot size.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return t, nil
}

// matchesFilter: when a filter is requested, blocks without that metadata do
// not match; metadata is a wildcard only when no filter is supplied.
func matchesFilter(have, want *uuid.UUID) bool {
	if want == nil {
		return true
	}
	return have != nil && *have == *want
}

// quantize emits slots on a step grid anchored at local midnight of the
// fragment's day, rounded up into the fragment and advancing by step rather
// than by duration. Anchoring locally keeps a 09:00 block producing 09:00,
// 09:30, ... wall-clock starts even when the zone's UTC offset is not a
// multiple of the step (Asia/Kathmandu, +5:45). Slots may overlap each other
// when duration > step; offering every step-aligned start time is the
// intended contract.
func quantize(b schedule.Block, duration, step time.Duration, loc *time.Location) []Slot {
	out := make([]Slot, 0)
	local := b.Start.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	offset := b.Start.Sub(midnight)
	if rem := offset % step; rem != 0 {
		offset += step - rem
	}
	cursor := midnight.Add(offset).UTC()
	for !cursor.Add(duration).After(b.End) {
		end := cursor.Add(duration)
		out = append(out, Slot{
			StartUTC:   cursor,
			EndUTC:     end,
			LocalLabel: localLabel(cursor, end, loc),
			LocationID: b.LocationID,
			ChairID:    b.ChairID,
		})
		cursor = cursor.Add(step)
	}
	return out
}

func localLabel(start, end time.Time, loc *time.Location) string {
	return start.In(loc).Format("Mon 2 Jan 15:04") + " - " + end.In(loc).Format("15:04")
}
