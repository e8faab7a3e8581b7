package utils_test

import (
	"testing"
	"time"

	"github.com/pledgerhq/pledger_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeOfDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	source := time.Date(2025, 12, 31, 9, 45, 30, 123, time.UTC)

	got := utils.WithTimeOfDay(day, source)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 14, got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 45, got.Minute())
	assert.Equal(t, 30, got.Second())
	assert.Equal(t, 123, got.Nanosecond())
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantFrom  time.Time
		wantTo    time.Time
		expectErr bool
	}{
		{
			name:     "mid-year month",
			month:    "2026-07",
			wantFrom: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			month:    "2025-12",
			wantFrom: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "missing month part",
			month:     "2026",
			expectErr: true,
		},
		{
			name:      "day included",
			month:     "2026-07-01",
			expectErr: true,
		},
		{
			name:      "not a date",
			month:     "latest",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := utils.MonthRange(tt.month)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, from.Equal(tt.wantFrom), "from = %v", from)
			assert.True(t, to.Equal(tt.wantTo), "to = %v", to)
		})
	}
}
