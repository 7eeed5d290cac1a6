package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/errors"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expected       string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:     "should parse a padded date",
			input:    "2024-03-15",
			expected: "2024-03-15",
		},
		{
			name:     "should parse an unpadded date",
			input:    "2024-3-5",
			expected: "2024-03-05",
		},
		{
			name:     "should accept leap day in a leap year",
			input:    "2024-02-29",
			expected: "2024-02-29",
		},
		{
			name:  "should reject month 13",
			input: "2024-13-01",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, "INVALID_DATE"))
			},
		},
		{
			name:  "should reject Feb 30",
			input: "2024-02-30",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, "INVALID_DATE"))
			},
		},
		{
			name:  "should reject leap day in a common year",
			input: "2023-02-29",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, "INVALID_DATE"))
			},
		},
		{
			name:  "should reject too few parts",
			input: "2024-03",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, "INVALID_DATE"))
			},
		},
		{
			name:  "should reject non-numeric parts",
			input: "2024-mar-15",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, "INVALID_DATE"))
			},
		},
		{
			name:  "should reject day zero",
			input: "2024-03-0",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, "INVALID_DATE"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result.String())
			}
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	from := Date{Year: 2024, Month: 3, Day: 15}

	tests := []struct {
		name     string
		to       Date
		expected int
	}{
		{name: "same day", to: Date{Year: 2024, Month: 3, Day: 15}, expected: 0},
		{name: "five days ahead", to: Date{Year: 2024, Month: 3, Day: 20}, expected: 5},
		{name: "two weeks behind", to: Date{Year: 2024, Month: 3, Day: 1}, expected: -14},
		{name: "across a month boundary", to: Date{Year: 2024, Month: 4, Day: 1}, expected: 17},
		{name: "across a year boundary", to: Date{Year: 2025, Month: 3, Day: 15}, expected: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, from.DaysUntil(tt.to))
		})
	}
}

func TestToday(t *testing.T) {
	// 2024-03-15T23:30Z: still the 15th at offset 0, already the 16th at +1
	now := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, Date{Year: 2024, Month: 3, Day: 15}, Today(now, 0))
	assert.Equal(t, Date{Year: 2024, Month: 3, Day: 16}, Today(now, 1))
	assert.Equal(t, Date{Year: 2024, Month: 3, Day: 15}, Today(now, -5))

	// 00:30Z rolls back a day at a negative offset
	early := time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, Date{Year: 2024, Month: 3, Day: 14}, Today(early, -1))
}
