package entity

import (
	"math"
	"testing"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestCentsFromDecimal(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			name     string
			input    float64
			expected int64
		}{
			{"whole number", 100, 10000},
			{"two decimals", 123.45, 12345},
			{"one decimal", 1.5, 150},
			{"single centavo", 0.01, 1},
			{"zero", 0, 0},
			{"negative withdrawal", -200, -20000},
			{"negative with decimals", -0.50, -50},
			{"rounds float drift", 0.1 + 0.2, 30},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				cents, err := CentsFromDecimal(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			name      string
			input     float64
			errorType error
		}{
			{"NaN", math.NaN(), errs.ErrInvalidAmount},
			{"positive infinity", math.Inf(1), errs.ErrInvalidAmount},
			{"negative infinity", math.Inf(-1), errs.ErrInvalidAmount},
			{"overflow", math.MaxFloat64, errs.ErrAmountOverflow},
			{"negative overflow", -math.MaxFloat64, errs.ErrAmountOverflow},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := CentsFromDecimal(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestDecimalFromCents(t *testing.T) {
	assert.Equal(t, 123.45, DecimalFromCents(12345))
	assert.Equal(t, 0.0, DecimalFromCents(0))
	assert.Equal(t, -200.0, DecimalFromCents(-20000))
	assert.Equal(t, 0.01, DecimalFromCents(1))
}

func TestFormatCents(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1015, "10.15"},
		{1, "0.01"},
		{10, "0.10"},
		{0, "0.00"},
		{-50, "-0.50"},
		{-20000, "-200.00"},
		{123456789, "1234567.89"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCents(tc.cents))
		})
	}
}
