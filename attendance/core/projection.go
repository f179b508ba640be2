package core

import (
	"fmt"
	"time"
)

// TodayView is the read-only projection of today's ledger.
type TodayView struct {
	IsWorking          bool    `json:"isWorking"`
	TotalWorkedSeconds int64   `json:"totalWorkedSeconds"`
	WorkedHours        string  `json:"workedHours"`
	FirstClockIn       *string `json:"firstClockIn"`
	LastClockOut       *string `json:"lastClockOut"`
	LastAction         string  `json:"lastAction"`
}

// EmptyTodayView is the well-defined default when no ledger exists.
func EmptyTodayView() TodayView {
	return TodayView{
		IsWorking:          false,
		TotalWorkedSeconds: 0,
		WorkedHours:        "00:00:00",
		LastAction:         "Not working",
	}
}

// ProjectToday derives the today summary from a ledger snapshot
// without mutating it. An open session is counted up to now.
func (cfg CutoffConfig) ProjectToday(ss Sessions, working bool, now time.Time) TodayView {
	if len(ss) == 0 {
		return EmptyTodayView()
	}

	totalSeconds := int64(ss.TotalWorked(now) / time.Second)

	view := TodayView{
		IsWorking:          working,
		TotalWorkedSeconds: totalSeconds,
		WorkedHours:        FormatWorked(totalSeconds),
		FirstClockIn:       cfg.formatClock(ss.FirstClockIn()),
		LastClockOut:       cfg.formatClock(ss.LastClockOut()),
		LastAction:         "Not working",
	}

	if last := ss.Last(); last != nil {
		if last.ClockOut != nil {
			view.LastAction = fmt.Sprintf("Clocked out at %s", *cfg.formatClock(last.ClockOut))
		} else {
			t := last.ClockIn
			view.LastAction = fmt.Sprintf("Clocked in at %s", *cfg.formatClock(&t))
		}
	}

	return view
}

// FormatWorked renders a second count as HH:MM:SS.
func FormatWorked(seconds int64) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

func (cfg CutoffConfig) formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(cfg.Zone).Format("15:04:05")
	return &s
}

// DayRecord is the slice of a persisted ledger the monthly projection
// needs.
type DayRecord struct {
	Date           time.Time
	Status         Status
	TotalWorkHours float64
}

// DaySummary is one entry of the monthly map.
type DaySummary struct {
	Status         Status  `json:"status"`
	TotalWorkHours float64 `json:"totalWorkHours"`
}

// ProjectMonth maps records to day-of-month (1-31) in the configured
// zone. Days with no record are absent from the map.
func (cfg CutoffConfig) ProjectMonth(records []DayRecord) map[int]DaySummary {
	out := make(map[int]DaySummary, len(records))
	for _, r := range records {
		day := r.Date.In(cfg.Zone).Day()
		out[day] = DaySummary{
			Status:         r.Status,
			TotalWorkHours: r.TotalWorkHours,
		}
	}
	return out
}
