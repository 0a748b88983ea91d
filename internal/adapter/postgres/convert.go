package postgres

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/jackc/pgx/v5/pgtype"
)

// DateValue converts a calendar date into the value bound to a DATE column.
func DateValue(d civil.Date) time.Time {
	return d.In(time.UTC)
}

// DateFromValue converts a scanned DATE column back into a calendar date.
func DateFromValue(t time.Time) civil.Date {
	return civil.DateOf(t.UTC())
}

// TimeValue converts a wall-clock time into the value bound to a TIME column.
func TimeValue(t civil.Time) pgtype.Time {
	us := int64(t.Hour)*int64(time.Hour/time.Microsecond) +
		int64(t.Minute)*int64(time.Minute/time.Microsecond) +
		int64(t.Second)*int64(time.Second/time.Microsecond) +
		int64(t.Nanosecond)/int64(time.Microsecond)
	return pgtype.Time{Microseconds: us, Valid: true}
}

// TimeFromValue converts a scanned TIME column back into a wall-clock time.
func TimeFromValue(v pgtype.Time) civil.Time {
	us := v.Microseconds
	h := us / int64(time.Hour/time.Microsecond)
	us -= h * int64(time.Hour/time.Microsecond)
	m := us / int64(time.Minute/time.Microsecond)
	us -= m * int64(time.Minute/time.Microsecond)
	s := us / int64(time.Second/time.Microsecond)
	us -= s * int64(time.Second/time.Microsecond)
	return civil.Time{Hour: int(h), Minute: int(m), Second: int(s), Nanosecond: int(us) * 1000}
}
