package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSlot indicates a time slot could not be built from its input.
var ErrInvalidSlot = errors.New("invalid time slot")

// DaySet is a set of weekdays a slot meets on, Monday through Friday.
type DaySet uint8

const (
	Monday DaySet = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// dayCodes maps day sets to their compact codes in display order.
// Thursday is "TH" so that "TTH" reads Tuesday+Thursday.
var dayCodes = []struct {
	day  DaySet
	code string
}{
	{Monday, "M"},
	{Tuesday, "T"},
	{Wednesday, "W"},
	{Thursday, "TH"},
	{Friday, "F"},
}

// ParseDays parses a compact day code string such as "MWF" or "TTH".
// "TH" is consumed greedily before "T".
func ParseDays(s string) (DaySet, error) {
	var days DaySet
	code := strings.ToUpper(strings.TrimSpace(s))
	for i := 0; i < len(code); {
		switch {
		case strings.HasPrefix(code[i:], "TH"):
			days |= Thursday
			i += 2
		case code[i] == 'M':
			days |= Monday
			i++
		case code[i] == 'T':
			days |= Tuesday
			i++
		case code[i] == 'W':
			days |= Wednesday
			i++
		case code[i] == 'F':
			days |= Friday
			i++
		default:
			return 0, fmt.Errorf("%w: unknown day code %q", ErrInvalidSlot, code[i:])
		}
	}
	if days == 0 {
		return 0, fmt.Errorf("%w: no days given", ErrInvalidSlot)
	}
	return days, nil
}

// Has reports whether the set contains the given day.
func (d DaySet) Has(day DaySet) bool {
	return d&day != 0
}

// Intersects reports whether two day sets share at least one day.
func (d DaySet) Intersects(other DaySet) bool {
	return d&other != 0
}

// String renders the set in compact day-code form, e.g. "MWF".
func (d DaySet) String() string {
	var sb strings.Builder
	for _, dc := range dayCodes {
		if d.Has(dc.day) {
			sb.WriteString(dc.code)
		}
	}
	return sb.String()
}

// ClockTime is a time of day with minute resolution, counted from midnight.
type ClockTime int

const minutesPerDay = 24 * 60

// ParseClockTime parses "h:mmam"/"h:mmpm" (the course catalog form) or a
// 24-hour "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	raw := strings.ToLower(strings.TrimSpace(s))

	meridiem := ""
	if strings.HasSuffix(raw, "am") || strings.HasSuffix(raw, "pm") {
		meridiem = raw[len(raw)-2:]
		raw = raw[:len(raw)-2]
	}

	hh, mm, ok := strings.Cut(raw, ":")
	if !ok {
		return 0, fmt.Errorf("%w: malformed time %q", ErrInvalidSlot, s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, fmt.Errorf("%w: malformed time %q", ErrInvalidSlot, s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: malformed time %q", ErrInvalidSlot, s)
	}

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: hour out of range in %q", ErrInvalidSlot, s)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: hour out of range in %q", ErrInvalidSlot, s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("%w: hour out of range in %q", ErrInvalidSlot, s)
		}
	}

	return ClockTime(hour*60 + minute), nil
}

// Hour returns the hour component (0-23).
func (c ClockTime) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c ClockTime) Minute() int { return int(c) % 60 }

// Before reports whether c is earlier than other.
func (c ClockTime) Before(other ClockTime) bool { return c < other }

// String renders the time in 12-hour catalog form, e.g. "8:00am".
func (c ClockTime) String() string {
	hour := c.Hour()
	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, c.Minute(), meridiem)
}

// IsValid reports whether the time falls within a single day.
func (c ClockTime) IsValid() bool {
	return c >= 0 && c < minutesPerDay
}

// TimeSlot is one weekly meeting period: a set of days and a time range.
// Immutable once constructed.
type TimeSlot struct {
	days  DaySet
	start ClockTime
	end   ClockTime
}

// NewTimeSlot creates a time slot. The day set must be non-empty and the
// range must satisfy start < end.
func NewTimeSlot(days DaySet, start, end ClockTime) (TimeSlot, error) {
	if days == 0 {
		return TimeSlot{}, fmt.Errorf("%w: no days given", ErrInvalidSlot)
	}
	if !start.IsValid() || !end.IsValid() {
		return TimeSlot{}, fmt.Errorf("%w: time out of range", ErrInvalidSlot)
	}
	if !start.Before(end) {
		return TimeSlot{}, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidSlot, end, start)
	}
	return TimeSlot{days: days, start: start, end: end}, nil
}

func (ts TimeSlot) Days() DaySet     { return ts.days }
func (ts TimeSlot) Start() ClockTime { return ts.start }
func (ts TimeSlot) End() ClockTime   { return ts.end }

// Overlaps reports whether two slots share a day with intersecting time
// ranges. Ranges are half-open, so back-to-back slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	if !ts.days.Intersects(other.days) {
		return false
	}
	return ts.start < other.end && other.start < ts.end
}

// Minutes returns the weekly meeting minutes this slot accounts for.
func (ts TimeSlot) Minutes() int {
	count := 0
	for _, dc := range dayCodes {
		if ts.days.Has(dc.day) {
			count++
		}
	}
	return count * int(ts.end-ts.start)
}

// Spec renders the slot in catalog form, e.g. "MWF 8:00am-9:00am".
func (ts TimeSlot) Spec() string {
	return fmt.Sprintf("%s %s-%s", ts.days, ts.start, ts.end)
}
