package availability

import (
	"errors"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// CreateInput holds parameters for creating an availability entry.
// Date is YYYY-MM-DD, times are HH:MM.
type CreateInput struct {
	// UserID books on behalf of another user. Only admins may set it.
	UserID    *uuid.UUID
	Date      string
	StartTime string
	EndTime   string
}

// UpdateInput carries the fields to change. Nil fields keep their value.
type UpdateInput struct {
	Date      *string
	StartTime *string
	EndTime   *string
}

// parse converts the raw strings, reporting every malformed field at once.
func (i CreateInput) parse() (civil.Date, civil.Time, civil.Time, error) {
	var errs []domain.FieldError

	date, err := domain.ParseDate(domain.FieldDate, i.Date)
	errs = collect(errs, err)
	start, err := domain.ParseClock(domain.FieldStartTime, i.StartTime)
	errs = collect(errs, err)
	end, err := domain.ParseClock(domain.FieldEndTime, i.EndTime)
	errs = collect(errs, err)

	if len(errs) > 0 {
		return civil.Date{}, civil.Time{}, civil.Time{}, domain.NewValidationErrors(errs)
	}
	return date, start, end, nil
}

func (i UpdateInput) parse() (domain.AvailabilityUpdate, error) {
	var (
		upd  domain.AvailabilityUpdate
		errs []domain.FieldError
	)

	if i.Date != nil {
		d, err := domain.ParseDate(domain.FieldDate, *i.Date)
		if errs = collect(errs, err); err == nil {
			upd.Date = &d
		}
	}
	if i.StartTime != nil {
		t, err := domain.ParseClock(domain.FieldStartTime, *i.StartTime)
		if errs = collect(errs, err); err == nil {
			upd.StartTime = &t
		}
	}
	if i.EndTime != nil {
		t, err := domain.ParseClock(domain.FieldEndTime, *i.EndTime)
		if errs = collect(errs, err); err == nil {
			upd.EndTime = &t
		}
	}

	if len(errs) > 0 {
		return domain.AvailabilityUpdate{}, domain.NewValidationErrors(errs)
	}
	return upd, nil
}

func collect(errs []domain.FieldError, err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return append(errs, ve.Errors...)
	}
	return errs
}
