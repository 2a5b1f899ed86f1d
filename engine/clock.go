// SPDX-License-Identifier: EPL-2.0

package engine

// ClockState is the transport state of a PlaybackClock.
type ClockState int

const (
	ClockIdle ClockState = iota
	ClockPlaying
	ClockPaused
)

func (s ClockState) String() string {
	switch s {
	case ClockIdle:
		return "idle"
	case ClockPlaying:
		return "playing"
	case ClockPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// PlaybackClock turns transport time into a play position. All times are in
// seconds of the processing context's transport, never wall clock. The clock
// does not know the recording's duration and does not stop at its end.
type PlaybackClock struct {
	state        ClockState
	sessionStart float64
	offset       float64
}

// State reports whether the clock is idle, playing or paused.
func (c *PlaybackClock) State() ClockState { return c.state }

// Start begins playing at the current offset; now is the transport time at
// which the first frame sounds.
func (c *PlaybackClock) Start(now float64) {
	c.sessionStart = now - c.offset
	c.state = ClockPlaying
}

// Pause freezes the position reached at now.
func (c *PlaybackClock) Pause(now float64) {
	if c.state != ClockPlaying {
		return
	}
	c.offset = now - c.sessionStart
	c.state = ClockPaused
}

// Stop rewinds to the beginning.
func (c *PlaybackClock) Stop() {
	c.offset = 0
	c.sessionStart = 0
	c.state = ClockIdle
}

// Offset is the resume position: where the next Start will play from.
func (c *PlaybackClock) Offset() float64 { return c.offset }

// Position is the current play position at transport time now.
func (c *PlaybackClock) Position(now float64) float64 {
	if c.state == ClockPlaying {
		return now - c.sessionStart
	}
	return c.offset
}
