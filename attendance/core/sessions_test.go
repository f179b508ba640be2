package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closed(in, out time.Time) Session {
	return Session{ClockIn: in, ClockOut: &out}
}

func TestSessionsAppend(t *testing.T) {
	cfg := testCutoffs()
	nine := at(cfg, 9, 0, 0)
	noon := at(cfg, 12, 0, 0)

	t.Run("First clock-in", func(t *testing.T) {
		var ss Sessions
		require.NoError(t, ss.Append(nine))
		assert.Len(t, ss, 1)
		assert.True(t, ss.HasOpen())
	})

	t.Run("Append while open rejected without mutation", func(t *testing.T) {
		ss := Sessions{{ClockIn: nine}}
		err := ss.Append(noon)
		assert.ErrorIs(t, err, ErrAlreadyClockedIn)
		assert.Len(t, ss, 1)
		assert.Nil(t, ss[0].ClockOut)
	})

	t.Run("Append after close", func(t *testing.T) {
		ss := Sessions{closed(nine, noon)}
		require.NoError(t, ss.Append(at(cfg, 13, 0, 0)))
		assert.Len(t, ss, 2)

		// never two consecutive open entries
		openCount := 0
		for _, s := range ss {
			if s.Open() {
				openCount++
			}
		}
		assert.Equal(t, 1, openCount)
		assert.True(t, ss.Last().Open())
	})
}

func TestSessionsCloseLast(t *testing.T) {
	cfg := testCutoffs()
	nine := at(cfg, 9, 0, 0)
	noon := at(cfg, 12, 0, 0)

	t.Run("Close open session", func(t *testing.T) {
		ss := Sessions{{ClockIn: nine}}
		require.NoError(t, ss.CloseLast(noon))
		assert.False(t, ss.HasOpen())
		require.NotNil(t, ss.Last().ClockOut)
		assert.Equal(t, noon, *ss.Last().ClockOut)
	})

	t.Run("Close empty ledger", func(t *testing.T) {
		var ss Sessions
		assert.ErrorIs(t, ss.CloseLast(noon), ErrNoActiveSession)
	})

	t.Run("Close already closed", func(t *testing.T) {
		ss := Sessions{closed(nine, noon)}
		assert.ErrorIs(t, ss.CloseLast(at(cfg, 13, 0, 0)), ErrNoActiveSession)
	})
}

func TestSessionsTotalWorked(t *testing.T) {
	cfg := testCutoffs()
	nine := at(cfg, 9, 0, 0)

	t.Run("Closed sessions sum", func(t *testing.T) {
		ss := Sessions{
			closed(nine, at(cfg, 12, 0, 0)),
			closed(at(cfg, 13, 0, 0), at(cfg, 14, 30, 0)),
		}
		assert.Equal(t, 4*time.Hour+30*time.Minute, ss.TotalWorked(at(cfg, 18, 0, 0)))
	})

	t.Run("Open session counts until now", func(t *testing.T) {
		ss := Sessions{{ClockIn: nine}}
		assert.Equal(t, 2*time.Hour, ss.TotalWorked(at(cfg, 11, 0, 0)))
	})
}

func TestSessionsEndpoints(t *testing.T) {
	cfg := testCutoffs()

	var empty Sessions
	assert.Nil(t, empty.FirstClockIn())
	assert.Nil(t, empty.LastClockOut())
	assert.Nil(t, empty.Last())

	ss := Sessions{
		closed(at(cfg, 9, 0, 0), at(cfg, 12, 0, 0)),
		{ClockIn: at(cfg, 13, 0, 0)},
	}
	require.NotNil(t, ss.FirstClockIn())
	assert.Equal(t, at(cfg, 9, 0, 0), *ss.FirstClockIn())
	require.NotNil(t, ss.LastClockOut())
	assert.Equal(t, at(cfg, 12, 0, 0), *ss.LastClockOut())
}
