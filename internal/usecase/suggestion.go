package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type SuggestionQuery struct {
	ProviderIDs     []uuid.UUID
	WindowStart     time.Time
	WindowEnd       time.Time
	TreatmentID     *uuid.UUID
	DurationMinutes *int
}

func (q SuggestionQuery) validate() error {
	if !q.WindowStart.Before(q.WindowEnd) {
		return errs.ErrInvalidRange
	}
	if q.DurationMinutes != nil && *q.DurationMinutes <= 0 {
		return errs.ErrInvalidDuration
	}
	if len(q.ProviderIDs) == 0 {
		return errs.ErrEmptyCandidatePool
	}
	return nil
}

type RankedProvider struct {
	ProviderID uuid.UUID
	Fits       bool
	Partial    bool
	Score      float64
}

type SuggestionUseCase interface {
	// SuggestProviders evaluates the candidate pool against a requested window
	// and returns providers ranked best-first. Busy candidates are excluded
	// outright; a candidate whose data reads fail is logged and dropped rather
	// than failing the call.
	SuggestProviders(ctx context.Context, q SuggestionQuery) ([]RankedProvider, error)
}

type suggestionUseCaseImpl struct {
	availability AvailabilityUseCase
	timeOff      TimeOffReadStore
	appointments AppointmentReadStore
	workers      int
	timeout      time.Duration
}

func NewSuggestionUseCase(
	availability AvailabilityUseCase,
	timeOff TimeOffReadStore,
	appointments AppointmentReadStore,
	cfg config.SuggestConfig,
) SuggestionUseCase {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &suggestionUseCaseImpl{
		availability: availability,
		timeOff:      timeOff,
		appointments: appointments,
		workers:      workers,
		timeout:      cfg.Timeout,
	}
}

func (u *suggestionUseCaseImpl) SuggestProviders(ctx context.Context, q SuggestionQuery) ([]RankedProvider, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	// Candidate evaluation is independent per provider; run it on a bounded
	// pool. A slow or failing candidate only costs itself a place in the
	// ranking, so worker errors are swallowed after logging and a deadline
	// yields a partial list instead of an error.
	results := make([]*RankedProvider, len(q.ProviderIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, id := range q.ProviderIDs {
		g.Go(func() error {
			r, err := u.evaluateCandidate(gctx, id, q)
			if err != nil {
				slog.Warn("excluding candidate from ranking",
					"provider_id", id, "error", err.Error())
				return nil
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	ranked := make([]RankedProvider, 0, len(results))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}

	// Full fits outrank partials regardless of score; exact ties keep the
	// candidate input order.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Fits != ranked[j].Fits {
			return ranked[i].Fits
		}
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

// evaluateCandidate returns nil, nil when the candidate is excluded (busy or
// with no free time touching the window).
func (u *suggestionUseCaseImpl) evaluateCandidate(ctx context.Context, providerID uuid.UUID, q SuggestionQuery) (*RankedProvider, error) {
	window := schedule.Interval{Start: q.WindowStart, End: q.WindowEnd}

	// Hard exclusion: a provider committed anywhere in the window is never
	// offered, even partially.
	appts, err := u.appointments.ListOverlapping(ctx, providerID, window.Start, window.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(appts) > 0 {
		return nil, nil
	}
	offs, err := u.timeOff.ListOverlapping(ctx, providerID, window.Start, window.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(offs) > 0 {
		return nil, nil
	}

	// The requested duration may be longer than the window itself. Free time
	// is read over a range widened by the duration on both sides so a run
	// able to host the treatment stays visible past the window edges.
	rangeFrom, rangeTo := window.Start, window.End
	var hostDuration time.Duration
	if q.DurationMinutes != nil {
		hostDuration = time.Duration(*q.DurationMinutes) * time.Minute
		rangeFrom = rangeFrom.Add(-hostDuration)
		rangeTo = rangeTo.Add(hostDuration)
	}
	free, err := u.availability.FreeIntervals(ctx, providerID, rangeFrom, rangeTo)
	if err != nil {
		return nil, err
	}

	var fits, partial bool
	for _, iv := range free {
		if iv.Contains(window) {
			fits = true
			break
		}
		if iv.Overlaps(window) {
			partial = true
		}
	}
	if !fits && !partial {
		return nil, nil
	}

	score := 1.0
	if fits {
		score = 2.0
	}
	if hostDuration > 0 {
		for _, iv := range free {
			if iv.Duration() >= hostDuration {
				score += 0.25
				break
			}
		}
	}

	return &RankedProvider{
		ProviderID: providerID,
		Fits:       fits,
		Partial:    !fits && partial,
		Score:      score,
	}, nil
}
