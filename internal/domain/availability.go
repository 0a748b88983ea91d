package domain

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// Bounds for a bookable availability window.
var (
	EarliestStart = civil.Time{Hour: 6}
	LatestStart   = civil.Time{Hour: 23}
	EarliestEnd   = civil.Time{Hour: 6}
	LatestEnd     = civil.Time{Hour: 23, Minute: 30}
)

const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 480
)

// Availability is a single window during which a user can play.
type Availability struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      civil.Date
	StartTime civil.Time
	EndTime   civil.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvailabilityUpdate carries the fields to change. Nil fields are left as they are.
type AvailabilityUpdate struct {
	Date      *civil.Date
	StartTime *civil.Time
	EndTime   *civil.Time
}

// AvailabilityWithUser is a listing row joined with the owner's username.
type AvailabilityWithUser struct {
	Availability
	Username string
}

// NewAvailability validates the window against today and returns a new entry.
func NewAvailability(userID uuid.UUID, date civil.Date, start, end civil.Time, today civil.Date, now time.Time) (*Availability, error) {
	if userID == uuid.Nil {
		return nil, NewValidationError("user_id", RuleRequired, "user is required")
	}
	if err := ValidateAvailability(&date, &start, &end, today); err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Availability{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update applies upd to a copy of a and re-validates the full window against
// today. On failure a is left unchanged.
func (a *Availability) Update(upd AvailabilityUpdate, today civil.Date, now time.Time) error {
	next := *a
	if upd.Date != nil {
		next.Date = *upd.Date
	}
	if upd.StartTime != nil {
		next.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		next.EndTime = *upd.EndTime
	}

	if err := ValidateAvailability(&next.Date, &next.StartTime, &next.EndTime, today); err != nil {
		return err
	}

	next.UpdatedAt = now.UTC()
	*a = next
	return nil
}

// Duration returns the length of the window.
func (a *Availability) Duration() time.Duration {
	return DurationBetween(a.StartTime, a.EndTime)
}

func (a *Availability) OwnerID() uuid.UUID {
	return a.UserID
}

// ValidateAvailability runs the availability invariants in order and reports the
// first one that fails.
func ValidateAvailability(date *civil.Date, start, end *civil.Time, today civil.Date) error {
	if date == nil || *date == (civil.Date{}) {
		return NewValidationError(FieldDate, RuleRequired, "date is required")
	}
	if err := ValidateTimeRange(start, end); err != nil {
		return err
	}
	if err := ValidateFutureDate(date, today); err != nil {
		return err
	}

	if TimeBefore(*start, EarliestStart) || TimeBefore(LatestStart, *start) {
		return NewValidationError(FieldStartTime, RuleOutOfRange,
			fmt.Sprintf("start time must be between %s and %s", clock(EarliestStart), clock(LatestStart)))
	}
	if TimeBefore(*end, EarliestEnd) || !TimeBefore(*end, LatestEnd) {
		return NewValidationError(FieldEndTime, RuleOutOfRange,
			fmt.Sprintf("end time must be between %s and before %s", clock(EarliestEnd), clock(LatestEnd)))
	}

	d := DurationBetween(*start, *end)
	if d < MinDurationMinutes*time.Minute || d > MaxDurationMinutes*time.Minute {
		return NewValidationError(FieldEndTime, RuleDuration,
			fmt.Sprintf("duration must be between %d minutes and %d hours", MinDurationMinutes, MaxDurationMinutes/60))
	}
	return nil
}

func clock(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
