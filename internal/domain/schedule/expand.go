package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Block is a concrete UTC interval produced by expanding one DayBlock on one
// local calendar day. Location/chair metadata carries through for filtering.
type Block struct {
	Interval
	Weekday    Weekday
	LocationID *uuid.UUID
	ChairID    *uuid.UUID
}

// ExpandWeekly expands a weekly pattern into concrete UTC intervals over
// [rangeFrom, rangeTo), walking local calendar days in loc and converting each
// block to UTC only after its local start/end are fixed. Expanding in local
// time first is what keeps blocks anchored to wall-clock hours across DST
// transitions; a naive UTC walk would shift or duplicate blocks around the
// changeover.
//
// Degenerate blocks (end <= start) are skipped. Emitted intervals are clipped
// to the query range.
func ExpandWeekly(p WeeklyPattern, loc *time.Location, rangeFrom, rangeTo time.Time) []Block {
	if len(p) == 0 || !rangeFrom.Before(rangeTo) {
		return nil
	}

	bounds := Interval{Start: rangeFrom, End: rangeTo}
	localFrom := rangeFrom.In(loc)
	localTo := rangeTo.In(loc)
	day := time.Date(localFrom.Year(), localFrom.Month(), localFrom.Day(), 0, 0, 0, 0, loc)

	var out []Block
	for ; day.Before(localTo); day = day.AddDate(0, 0, 1) {
		wd := WeekdayOf(day)
		for _, b := range p[wd] {
			start := time.Date(day.Year(), day.Month(), day.Day(), b.Start.Hour, b.Start.Minute, 0, 0, loc).UTC()
			end := time.Date(day.Year(), day.Month(), day.Day(), b.End.Hour, b.End.Minute, 0, 0, loc).UTC()
			if !end.After(start) {
				continue
			}
			iv, ok := Interval{Start: start, End: end}.Clip(bounds)
			if !ok {
				continue
			}
			out = append(out, Block{
				Interval:   iv,
				Weekday:    wd,
				LocationID: b.LocationID,
				ChairID:    b.ChairID,
			})
		}
	}
	return out
}
