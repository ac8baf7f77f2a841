package service_test

import (
	"testing"
	"time"

	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/export"
	"prayer-roster-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodFilter_Range(t *testing.T) {
	testCases := []struct {
		name     string
		filter   service.PeriodFilter
		from, to time.Time
		period   export.Period
	}{
		{"month and year", service.NewPeriodFilter(2, 2024), day(2024, 2, 1), day(2024, 2, 29), export.Period{Month: 2, Year: 2024}},
		{"december", service.NewPeriodFilter(12, 2025), day(2025, 12, 1), day(2025, 12, 31), export.Period{Month: 12, Year: 2025}},
		{"year only", service.NewPeriodFilter(0, 2025), day(2025, 1, 1), day(2025, 12, 31), export.Period{Year: 2025}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.filter.Validate())
			r := tc.filter.Range()
			require.NotNil(t, r.From)
			require.NotNil(t, r.To)
			assert.True(t, tc.from.Equal(*r.From), "from %s", r.From)
			assert.True(t, tc.to.Equal(*r.To), "to %s", r.To)
			assert.Equal(t, tc.period, tc.filter.Period())
		})
	}
}

func TestPeriodFilter_MonthWithoutYearIsIgnored(t *testing.T) {
	f := service.NewPeriodFilter(3, 0)

	require.NoError(t, f.Validate())
	r := f.Range()
	assert.Nil(t, r.From)
	assert.Nil(t, r.To)
	assert.Equal(t, export.Period{}, f.Period())
}

func TestPeriodFilter_Validate(t *testing.T) {
	assert.ErrorIs(t, service.NewPeriodFilter(13, 2025).Validate(), apperrors.ErrInvalidMonthFilter)
	assert.ErrorIs(t, service.NewPeriodFilter(-1, 2025).Validate(), apperrors.ErrInvalidMonthFilter)
	assert.True(t, apperrors.IsValidation(service.NewPeriodFilter(0, -5).Validate()))
	assert.NoError(t, service.PeriodFilter{}.Validate())
}

func TestParseDate(t *testing.T) {
	d, err := service.ParseDate(" 2025-03-04 ")
	require.NoError(t, err)
	assert.True(t, day(2025, 3, 4).Equal(d))
	assert.Equal(t, time.UTC, d.Location())

	_, err = service.ParseDate("2025-02-30")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestNewValidator_ReportsJSONFieldNames(t *testing.T) {
	v := service.NewValidator()

	err := v.Struct(&service.CreateSlotRequest{Weekday: "tuesday"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'date'")
}
