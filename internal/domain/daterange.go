package domain

import (
	"time"

	"github.com/golang-sql/civil"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start civil.Date
	End   civil.Date
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// DateRangeFor resolves mode relative to today. Custom bounds that are nil fall
// back to today; their order is not checked. Unknown modes resolve to today.
func DateRangeFor(mode RangeMode, today civil.Date, start, end *civil.Date) DateRange {
	switch mode {
	case RangeWeek:
		// Go weekdays start on Sunday; weeks here start on Monday.
		offset := (int(today.In(time.UTC).Weekday()) + 6) % 7
		monday := today.AddDays(-offset)
		return DateRange{Start: monday, End: monday.AddDays(6)}
	case RangeMonth:
		first := civil.Date{Year: today.Year, Month: today.Month, Day: 1}
		next := civil.DateOf(first.In(time.UTC).AddDate(0, 1, 0))
		return DateRange{Start: first, End: next.AddDays(-1)}
	case RangeCustom:
		r := DateRange{Start: today, End: today}
		if start != nil {
			r.Start = *start
		}
		if end != nil {
			r.End = *end
		}
		return r
	default:
		return DateRange{Start: today, End: today}
	}
}

// ParseDateRange is DateRangeFor over raw query values. Only malformed custom
// bounds produce an error; empty bounds are treated as missing.
func ParseDateRange(mode, startRaw, endRaw string, today civil.Date) (DateRange, error) {
	m := RangeMode(mode)
	if m != RangeCustom {
		return DateRangeFor(m, today, nil, nil), nil
	}

	var start, end *civil.Date
	var errs []FieldError
	if startRaw != "" {
		d, err := parseDate(FieldStartDate, startRaw)
		if err != nil {
			errs = append(errs, err.(*ValidationError).Errors...)
		} else {
			start = &d
		}
	}
	if endRaw != "" {
		d, err := parseDate(FieldEndDate, endRaw)
		if err != nil {
			errs = append(errs, err.(*ValidationError).Errors...)
		} else {
			end = &d
		}
	}
	if len(errs) > 0 {
		return DateRange{}, NewValidationErrors(errs)
	}
	return DateRangeFor(m, today, start, end), nil
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(now.In(loc))
}
