package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthDiff(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "same date",
			from:     time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "two whole months",
			from:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "partial final month floored",
			from:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "across year boundary",
			from:     time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			expected: 3,
		},
		{
			name:     "less than a month",
			from:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "from in the future is negative",
			from:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthDiff(tt.from, tt.to))
		})
	}
}

func TestGenerateReceiptNumber(t *testing.T) {
	ts := time.UnixMilli(1715769000000)
	receipt := GenerateReceiptNumber("b2c3d4e5-f6a7-8901-bcde-f23456789012", ts)

	assert.True(t, strings.HasPrefix(receipt, "RCPT-789012-"))
	assert.Equal(t, "RCPT-789012-1715769000000", receipt)
}

func TestGenerateReceiptNumber_ShortID(t *testing.T) {
	ts := time.UnixMilli(1700000000000)
	receipt := GenerateReceiptNumber("abc", ts)

	assert.Equal(t, "RCPT-abc-1700000000000", receipt)
}
