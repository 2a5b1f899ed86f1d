// SPDX-License-Identifier: EPL-2.0

package engine

import "testing"

func TestPlaybackClock(t *testing.T) {
	t.Parallel()

	var c PlaybackClock
	if c.State() != ClockIdle || c.Position(3) != 0 {
		t.Fatalf("new clock: state %v position %v", c.State(), c.Position(3))
	}

	c.Start(10)
	if got := c.Position(10.5); got != 0.5 {
		t.Errorf("Position while playing = %v, want 0.5", got)
	}

	c.Pause(10.5)
	if c.State() != ClockPaused {
		t.Errorf("State() = %v, want paused", c.State())
	}
	if got := c.Position(99); got != 0.5 {
		t.Errorf("Position while paused = %v, want 0.5", got)
	}

	// resumes where it paused, on a later transport time
	c.Start(20)
	if got := c.Position(20.25); got != 0.75 {
		t.Errorf("Position after resume = %v, want 0.75", got)
	}

	c.Pause(21)
	c.Pause(30)
	if got := c.Offset(); got != 1.5 {
		t.Errorf("second Pause moved offset to %v, want 1.5", got)
	}

	c.Stop()
	if c.State() != ClockIdle || c.Offset() != 0 {
		t.Errorf("after Stop: state %v offset %v", c.State(), c.Offset())
	}
}

func TestClockState_String(t *testing.T) {
	t.Parallel()

	for s, want := range map[ClockState]string{
		ClockIdle:     "idle",
		ClockPlaying:  "playing",
		ClockPaused:   "paused",
		ClockState(9): "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
