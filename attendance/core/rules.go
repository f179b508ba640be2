package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Status classifies one employee-day.
type Status string

const (
	StatusFullDay Status = "full-day"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
)

// Worked-hour thresholds applied at clock-out.
const (
	HalfDayMinimum = 4 * time.Hour
	FullDayMinimum = 7 * time.Hour
)

var (
	ErrTooLate          = errors.New("clock-in not allowed after the half-day cutoff")
	ErrAlreadyClockedIn = errors.New("already clocked in, please clock out first")
	ErrNoActiveSession  = errors.New("no active session found to clock out")
	ErrNoRecord         = errors.New("no clock-in record found")
)

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime accepts "15:04" or "15:04:05".
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}

	var fields [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
		}
		fields[i] = v
	}

	ct := ClockTime{Hour: fields[0], Minute: fields[1], Second: fields[2]}
	if ct.Hour < 0 || ct.Hour > 23 || ct.Minute < 0 || ct.Minute > 59 || ct.Second < 0 || ct.Second > 59 {
		return ClockTime{}, fmt.Errorf("clock time %q out of range", s)
	}
	return ct, nil
}

// String renders "15:04", or "15:04:05" when seconds are set.
func (ct ClockTime) String() string {
	if ct.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", ct.Hour, ct.Minute, ct.Second)
	}
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}

// On places the clock time on the calendar day of t, in t's location.
func (ct ClockTime) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), ct.Hour, ct.Minute, ct.Second, 0, t.Location())
}

// CutoffConfig holds the fixed zone and the daily clock-in cutoffs.
// Every day-boundary, cutoff and display computation goes through the
// same zone so the stored UTC instants and the local calendar day
// cannot drift apart.
type CutoffConfig struct {
	Zone    *time.Location
	FullDay ClockTime // clocking in at/before this is a full day
	HalfDay ClockTime // clocking in at/after this is rejected
}

// DefaultCutoffs returns the production configuration: IST with a
// 10:15 full-day cutoff and a 13:30 half-day cutoff.
func DefaultCutoffs() CutoffConfig {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800) // fallback if tzdata is missing
	}
	return CutoffConfig{
		Zone:    loc,
		FullDay: ClockTime{Hour: 10, Minute: 15},
		HalfDay: ClockTime{Hour: 13, Minute: 30},
	}
}

// DayStart normalizes t to midnight of its calendar day in the
// configured zone. Used as the natural key together with the employee.
func (cfg CutoffConfig) DayStart(t time.Time) time.Time {
	local := t.In(cfg.Zone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, cfg.Zone)
}

// ResolveClockInStatus decides whether a clock-in at now is permitted
// and, if so, the provisional status for the day. At or after the
// half-day cutoff the clock-in is rejected with ErrTooLate.
func (cfg CutoffConfig) ResolveClockInStatus(now time.Time) (Status, error) {
	local := now.In(cfg.Zone)
	if !local.Before(cfg.HalfDay.On(local)) {
		return "", ErrTooLate
	}
	if local.After(cfg.FullDay.On(local)) {
		return StatusHalfDay, nil
	}
	return StatusFullDay, nil
}

// ResolveFinalStatus derives the day's final status from the total
// worked duration: <4h absent, [4h,7h) half-day, >=7h full-day.
func ResolveFinalStatus(total time.Duration) Status {
	switch {
	case total < HalfDayMinimum:
		return StatusAbsent
	case total < FullDayMinimum:
		return StatusHalfDay
	default:
		return StatusFullDay
	}
}

// MonthRange returns the first and last instants of the given month
// (1-12) in the configured zone.
func (cfg CutoffConfig) MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, cfg.Zone)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}

// RoundHours converts a duration to hours rounded to 2 decimal places.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
