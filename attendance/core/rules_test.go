package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCutoffs() CutoffConfig {
	return CutoffConfig{
		Zone:    time.FixedZone("IST", 5*3600+1800),
		FullDay: ClockTime{Hour: 10, Minute: 15},
		HalfDay: ClockTime{Hour: 13, Minute: 30},
	}
}

func at(cfg CutoffConfig, hour, min, sec int) time.Time {
	return time.Date(2025, 3, 10, hour, min, sec, 0, cfg.Zone)
}

func TestResolveClockInStatus(t *testing.T) {
	cfg := testCutoffs()

	tests := []struct {
		name     string
		now      time.Time
		expected Status
		err      error
	}{
		{
			name:     "Morning clock-in is full day",
			now:      at(cfg, 9, 0, 0),
			expected: StatusFullDay,
		},
		{
			name:     "Exactly at full-day cutoff still full day",
			now:      at(cfg, 10, 15, 0),
			expected: StatusFullDay,
		},
		{
			name:     "One second past full-day cutoff is half day",
			now:      at(cfg, 10, 15, 1),
			expected: StatusHalfDay,
		},
		{
			name:     "Late morning is half day",
			now:      at(cfg, 11, 0, 0),
			expected: StatusHalfDay,
		},
		{
			name:     "Just before half-day cutoff still allowed",
			now:      at(cfg, 13, 29, 59),
			expected: StatusHalfDay,
		},
		{
			name: "Exactly at half-day cutoff rejected",
			now:  at(cfg, 13, 30, 0),
			err:  ErrTooLate,
		},
		{
			name: "Afternoon rejected",
			now:  at(cfg, 14, 0, 0),
			err:  ErrTooLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := cfg.ResolveClockInStatus(tt.now)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestResolveClockInStatusConvertsZone(t *testing.T) {
	cfg := testCutoffs()

	// 03:30 UTC is 09:00 IST
	status, err := cfg.ResolveClockInStatus(time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, StatusFullDay, status)

	// 08:30 UTC is 14:00 IST
	_, err = cfg.ResolveClockInStatus(time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrTooLate)
}

func TestResolveFinalStatus(t *testing.T) {
	tests := []struct {
		name     string
		total    time.Duration
		expected Status
	}{
		{"Zero hours", 0, StatusAbsent},
		{"Just under four hours", 4*time.Hour - time.Second, StatusAbsent},
		{"Exactly four hours", 4 * time.Hour, StatusHalfDay},
		{"Four and a half hours", 4*time.Hour + 30*time.Minute, StatusHalfDay},
		{"Just under seven hours", 7*time.Hour - time.Second, StatusHalfDay},
		{"Exactly seven hours", 7 * time.Hour, StatusFullDay},
		{"Nine hours", 9 * time.Hour, StatusFullDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveFinalStatus(tt.total))
		})
	}
}

func TestDayStart(t *testing.T) {
	cfg := testCutoffs()

	// 20:00 UTC on the 9th is 01:30 IST on the 10th
	day := cfg.DayStart(time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, cfg.Zone), day)

	day = cfg.DayStart(at(cfg, 23, 59, 59))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, cfg.Zone), day)
}

func TestMonthRange(t *testing.T) {
	cfg := testCutoffs()

	start, end, err := cfg.MonthRange(2025, 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, cfg.Zone), start)
	assert.Equal(t, time.Date(2025, 2, 28, 23, 59, 59, int(time.Second-time.Nanosecond), cfg.Zone), end)

	_, _, err = cfg.MonthRange(2025, 0)
	assert.Error(t, err)
	_, _, err = cfg.MonthRange(2025, 13)
	assert.Error(t, err)
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in       string
		expected ClockTime
		wantErr  bool
	}{
		{in: "10:15", expected: ClockTime{Hour: 10, Minute: 15}},
		{in: "13:30:00", expected: ClockTime{Hour: 13, Minute: 30}},
		{in: "09:05:59", expected: ClockTime{Hour: 9, Minute: 5, Second: 59}},
		{in: "25:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "1015", wantErr: true},
		{in: "10:xx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ct, err := ParseClockTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ct)
		})
	}
}

// The rejection message shown to late clock-ins renders the configured
// cutoff, so a non-default cutoff never reports the wrong time.
func TestClockTimeString(t *testing.T) {
	assert.Equal(t, "13:30", ClockTime{Hour: 13, Minute: 30}.String())
	assert.Equal(t, "09:05", ClockTime{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "10:15:30", ClockTime{Hour: 10, Minute: 15, Second: 30}.String())
}

// Full clock-out recomputation over a ledger snapshot: one session
// 09:00-13:30 works out to 4.50 hours and a half day.
func TestClockOutRecomputation(t *testing.T) {
	cfg := testCutoffs()

	ss := Sessions{{ClockIn: at(cfg, 9, 0, 0)}}
	now := at(cfg, 13, 30, 0)
	require.NoError(t, ss.CloseLast(now))

	total := ss.TotalWorked(now)
	assert.Equal(t, StatusHalfDay, ResolveFinalStatus(total))
	assert.Equal(t, 4.5, RoundHours(total))

	view := cfg.ProjectToday(ss, false, now)
	assert.Equal(t, int64(total/time.Second), view.TotalWorkedSeconds)
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 4.5, RoundHours(4*time.Hour+30*time.Minute))
	assert.Equal(t, 4.51, RoundHours(4*time.Hour+30*time.Minute+30*time.Second))
	assert.Equal(t, 0.0, RoundHours(0))
}
