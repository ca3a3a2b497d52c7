package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestAgeCalculation tests the age calculation function with various scenarios
func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name        string
		birthDate   time.Time
		atDate      time.Time
		expectedAge int
		description string
	}{
		{
			name:        "Same month and day",
			birthDate:   time.Date(1994, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 30,
			description: "Exact birthday",
		},
		{
			name:        "Day before birthday",
			birthDate:   time.Date(1994, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2024, 2, 24, 0, 0, 0, 0, time.UTC),
			expectedAge: 29,
			description: "One day before 30th birthday",
		},
		{
			name:        "Month before birthday",
			birthDate:   time.Date(1994, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 29,
			description: "Same day, month before birthday",
		},
		{
			name:        "Month after birthday",
			birthDate:   time.Date(1994, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 30,
			description: "Same day, month after birthday",
		},
		{
			name:        "Leap year birth, non-leap year check",
			birthDate:   time.Date(1996, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			expectedAge: 28,
			description: "Born on leap day, checking on Feb 28",
		},
		{
			name:        "Leap year birth, leap year check",
			birthDate:   time.Date(1996, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expectedAge: 28,
			description: "Born on leap day, checking on leap day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := Age(tt.birthDate, tt.atDate)
			assert.Equal(t, tt.expectedAge, age,
				"%s: Expected age %d, got %d", tt.description, tt.expectedAge, age)
		})
	}
}

// TestDateArithmetic tests date arithmetic functions
func TestDateArithmetic(t *testing.T) {
	baseDate := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)

	futureDate := AddYears(baseDate, 5)
	expectedFuture := time.Date(2030, 6, 15, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, expectedFuture, futureDate, "AddYears should add 5 years correctly")

	monthDate := AddMonths(baseDate, 18)
	expectedMonth := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expectedMonth, monthDate, "AddMonths should land on the first of the month")

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(baseDate))
}

func TestAddMonthsNoOverflow(t *testing.T) {
	endOfJanuary := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), AddMonths(endOfJanuary, 1))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), AddMonths(endOfJanuary, 0))
}
