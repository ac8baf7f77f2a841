package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/export"
	"prayer-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout          = time.DateOnly
	displayDateLayout   = "02/01/2006"
	timestampLayout     = time.RFC3339
	displayNameSeparator = ", "
)

// NewValidator returns a validator reporting fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateRequest runs struct validation and reports the first failure as a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Tag() == "required" {
			msg = "is required"
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("", err.Error())
}

// ParseDate parses a YYYY-MM-DD date into UTC midnight
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return d, nil
}

// PeriodFilter selects slots of a calendar month (month and year) or a whole year.
// A month without a year is ignored.
type PeriodFilter struct {
	Month *int `form:"month" json:"month,omitempty"`
	Year  *int `form:"year" json:"year,omitempty"`
}

// NewPeriodFilter builds a filter from optional month and year values
func NewPeriodFilter(month, year int) PeriodFilter {
	var p PeriodFilter
	if month != 0 {
		p.Month = &month
	}
	if year != 0 {
		p.Year = &year
	}
	return p
}

func (p PeriodFilter) month() int {
	if p.Month == nil {
		return 0
	}
	return *p.Month
}

func (p PeriodFilter) year() int {
	if p.Year == nil {
		return 0
	}
	return *p.Year
}

// Validate checks month and year bounds
func (p PeriodFilter) Validate() error {
	year := p.year()
	if year == 0 {
		return nil
	}
	if year < 1 || year > 9999 {
		return apperrors.NewValidationError("year", "must be between 1 and 9999")
	}
	if m := p.month(); m != 0 && (m < 1 || m > 12) {
		return apperrors.ErrInvalidMonthFilter
	}
	return nil
}

// Range converts the filter into an inclusive date range
func (p PeriodFilter) Range() repository.SlotFilter {
	year, month := p.year(), p.month()
	if year == 0 {
		return repository.SlotFilter{}
	}

	var from, to time.Time
	if month != 0 {
		from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, -1)
	} else {
		from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return repository.SlotFilter{From: &from, To: &to}
}

// Period returns the effective filter as used in export titles and filenames
func (p PeriodFilter) Period() export.Period {
	year := p.year()
	if year == 0 {
		return export.Period{}
	}
	return export.Period{Month: p.month(), Year: year}
}
