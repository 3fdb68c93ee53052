package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidLocalTime = errors.New("invalid local time")
	ErrInvalidDayBlock  = errors.New("invalid day block")
)

// Weekday keys a weekly pattern. Keys match the persistence layer's
// sub-document names (mon..sun).
type Weekday string

const (
	WeekdayMonday    Weekday = "mon"
	WeekdayTuesday   Weekday = "tue"
	WeekdayWednesday Weekday = "wed"
	WeekdayThursday  Weekday = "thu"
	WeekdayFriday    Weekday = "fri"
	WeekdaySaturday  Weekday = "sat"
	WeekdaySunday    Weekday = "sun"
)

var weekdayByTime = map[time.Weekday]Weekday{
	time.Monday:    WeekdayMonday,
	time.Tuesday:   WeekdayTuesday,
	time.Wednesday: WeekdayWednesday,
	time.Thursday:  WeekdayThursday,
	time.Friday:    WeekdayFriday,
	time.Saturday:  WeekdaySaturday,
	time.Sunday:    WeekdaySunday,
}

// WeekdayOf resolves the pattern key for an instant, in that instant's location.
func WeekdayOf(t time.Time) Weekday {
	return weekdayByTime[t.Weekday()]
}

// LocalTime is a wall-clock "HH:MM" with no date or zone attached.
type LocalTime struct {
	Hour   int
	Minute int
}

func ParseLocalTime(s string) (LocalTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return LocalTime{}, ErrInvalidLocalTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return LocalTime{}, ErrInvalidLocalTime
	}
	return LocalTime{Hour: h, Minute: m}, nil
}

func MustLocalTime(s string) LocalTime {
	lt, err := ParseLocalTime(s)
	if err != nil {
		panic(err)
	}
	return lt
}

func (lt LocalTime) MinuteOfDay() int {
	return lt.Hour*60 + lt.Minute
}

func (lt LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", lt.Hour, lt.Minute)
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.String() + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidLocalTime
	}
	parsed, err := ParseLocalTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}

// DayBlock is one working (or break) span within a single local calendar day.
// Same-day only: End must be after Start, no overnight wraparound.
type DayBlock struct {
	Start      LocalTime  `json:"start"`
	End        LocalTime  `json:"end"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	ChairID    *uuid.UUID `json:"chair_id,omitempty"`
}

func (b DayBlock) Validate() error {
	if b.End.MinuteOfDay() <= b.Start.MinuteOfDay() {
		return ErrInvalidDayBlock
	}
	return nil
}

// WeeklyPattern maps each weekday to its ordered local time blocks. A plain
// value type: no identity, trivially copyable.
type WeeklyPattern map[Weekday][]DayBlock
