package core

import "time"

// Session is one clock-in/clock-out pair. A session with no clock-out
// is "open"; the ledger allows at most one open session, and only as
// its last element.
type Session struct {
	ClockIn  time.Time  `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut,omitempty"`
}

func (s Session) Open() bool {
	return s.ClockOut == nil
}

// Worked returns the session duration, using now as the end of a
// still-open session.
func (s Session) Worked(now time.Time) time.Duration {
	end := now
	if s.ClockOut != nil {
		end = *s.ClockOut
	}
	return end.Sub(s.ClockIn)
}

// Sessions is the ordered ledger of one employee-day. Insertion order
// is chronological; entries are only appended, never reordered or
// removed, and only the last entry's clock-out is ever set.
type Sessions []Session

// Last is the single accessor for the mutable tail of the ledger.
func (ss Sessions) Last() *Session {
	if len(ss) == 0 {
		return nil
	}
	return &ss[len(ss)-1]
}

func (ss Sessions) HasOpen() bool {
	last := ss.Last()
	return last != nil && last.Open()
}

// Append opens a new session at clockIn. The previous session must be
// closed first.
func (ss *Sessions) Append(clockIn time.Time) error {
	if ss.HasOpen() {
		return ErrAlreadyClockedIn
	}
	*ss = append(*ss, Session{ClockIn: clockIn})
	return nil
}

// CloseLast sets the open session's clock-out.
func (ss Sessions) CloseLast(clockOut time.Time) error {
	last := ss.Last()
	if last == nil || !last.Open() {
		return ErrNoActiveSession
	}
	last.ClockOut = &clockOut
	return nil
}

// TotalWorked sums the session durations, treating an open session as
// running until now.
func (ss Sessions) TotalWorked(now time.Time) time.Duration {
	var total time.Duration
	for _, s := range ss {
		total += s.Worked(now)
	}
	return total
}

func (ss Sessions) FirstClockIn() *time.Time {
	if len(ss) == 0 {
		return nil
	}
	t := ss[0].ClockIn
	return &t
}

func (ss Sessions) LastClockOut() *time.Time {
	for i := len(ss) - 1; i >= 0; i-- {
		if ss[i].ClockOut != nil {
			return ss[i].ClockOut
		}
	}
	return nil
}
