package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-sql/civil"
)

// DefaultTextMaxLength is the cutoff SanitizeText applies when maxLength <= 0.
const DefaultTextMaxLength = 1000

// Field names shared by validators and transport error bodies.
const (
	FieldDate      = "date"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var markupTagRe = regexp.MustCompile(`<[^>]*>`)

// ValidateFutureDate checks that d is a real calendar date strictly after today.
func ValidateFutureDate(d *civil.Date, today civil.Date) error {
	if d == nil || *d == (civil.Date{}) {
		return NewValidationError(FieldDate, RuleRequired, "date is required")
	}
	if !d.IsValid() {
		return NewValidationError(FieldDate, RuleFormat, "date is not a valid calendar date")
	}
	if !d.After(today) {
		return NewValidationError(FieldDate, RuleNotFuture, "date must be in the future")
	}
	return nil
}

// ParseFutureDate parses a YYYY-MM-DD string and validates it with ValidateFutureDate.
func ParseFutureDate(raw string, today civil.Date) (civil.Date, error) {
	d, err := parseDate(FieldDate, raw)
	if err != nil {
		return civil.Date{}, err
	}
	if err := ValidateFutureDate(&d, today); err != nil {
		return civil.Date{}, err
	}
	return d, nil
}

// ValidateTimeRange checks that both bounds are present and end is strictly after start.
func ValidateTimeRange(start, end *civil.Time) error {
	if start == nil {
		return NewValidationError(FieldStartTime, RuleRequired, "start time is required")
	}
	if end == nil {
		return NewValidationError(FieldEndTime, RuleRequired, "end time is required")
	}
	if !start.IsValid() {
		return NewValidationError(FieldStartTime, RuleFormat, "start time is not a valid time of day")
	}
	if !end.IsValid() {
		return NewValidationError(FieldEndTime, RuleFormat, "end time is not a valid time of day")
	}
	if !TimeBefore(*start, *end) {
		return NewValidationError(FieldEndTime, RuleOrder, "end time must be after start time")
	}
	return nil
}

// ParseTimeRange parses HH:MM bounds and validates them with ValidateTimeRange.
func ParseTimeRange(start, end string) (civil.Time, civil.Time, error) {
	s, err := parseClock(FieldStartTime, start)
	if err != nil {
		return civil.Time{}, civil.Time{}, err
	}
	e, err := parseClock(FieldEndTime, end)
	if err != nil {
		return civil.Time{}, civil.Time{}, err
	}
	if err := ValidateTimeRange(&s, &e); err != nil {
		return civil.Time{}, civil.Time{}, err
	}
	return s, e, nil
}

// ParseDate parses a YYYY-MM-DD string for field without any range checks.
func ParseDate(field, raw string) (civil.Date, error) {
	return parseDate(field, raw)
}

// ParseClock parses an HH:MM string for field.
func ParseClock(field, raw string) (civil.Time, error) {
	return parseClock(field, raw)
}

// SanitizeText strips markup and quote characters, trims, and truncates to
// maxLength runes. The result is a fixpoint: applying it twice changes nothing.
func SanitizeText(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = DefaultTextMaxLength
	}

	out := markupTagRe.ReplaceAllString(text, "")
	out = strings.Map(func(r rune) rune {
		switch r {
		case '"', '<', '>':
			return -1
		}
		return r
	}, out)
	out = strings.TrimSpace(out)

	if utf8.RuneCountInString(out) > maxLength {
		out = string([]rune(out)[:maxLength])
	}
	return strings.TrimSpace(out)
}

// TimeBefore reports whether a is strictly earlier in the day than b.
func TimeBefore(a, b civil.Time) bool {
	return nanosOfDay(a) < nanosOfDay(b)
}

// DurationBetween returns the exact time from start to end, seconds included.
func DurationBetween(start, end civil.Time) time.Duration {
	return time.Duration(nanosOfDay(end) - nanosOfDay(start))
}

func nanosOfDay(t civil.Time) int64 {
	return int64(t.Hour)*int64(time.Hour) +
		int64(t.Minute)*int64(time.Minute) +
		int64(t.Second)*int64(time.Second) +
		int64(t.Nanosecond)
}

func parseDate(field, raw string) (civil.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return civil.Date{}, NewValidationError(field, RuleRequired, field+" is required")
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return civil.Date{}, NewValidationError(field, RuleFormat, "invalid date format, expected YYYY-MM-DD")
	}
	return civil.DateOf(t), nil
}

func parseClock(field, raw string) (civil.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return civil.Time{}, NewValidationError(field, RuleRequired, field+" is required")
	}
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return civil.Time{}, NewValidationError(field, RuleFormat, "invalid time format, expected HH:MM")
	}
	return civil.TimeOf(t), nil
}
