package dino

import (
	"testing"
	"time"
)

func TestFrameClockBaseline(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(100, 0)

	if _, ok := c.Tick(t0); ok {
		t.Error("first tick should only anchor the baseline")
	}
	elapsed, ok := c.Tick(t0.Add(16 * time.Millisecond))
	if !ok || elapsed != 16 {
		t.Errorf("Tick() = %f, %v, expected 16, true", elapsed, ok)
	}
}

func TestFrameClockStopReanchors(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(100, 0)
	c.Tick(t0)
	c.Tick(t0.Add(10 * time.Millisecond))

	c.Stop()

	// Ten seconds pass while stopped
	later := t0.Add(10 * time.Second)
	if _, ok := c.Tick(later); ok {
		t.Error("first tick after Stop should not report elapsed time")
	}
	elapsed, ok := c.Tick(later.Add(20 * time.Millisecond))
	if !ok || elapsed != 20 {
		t.Errorf("Tick() = %f, %v, expected 20, true", elapsed, ok)
	}
}

func TestFrameClockRejectsBackwardsTime(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(100, 0)
	c.Tick(t0)

	if _, ok := c.Tick(t0); ok {
		t.Error("zero delta should be a no-op")
	}
	if _, ok := c.Tick(t0.Add(-time.Second)); ok {
		t.Error("negative delta should be a no-op")
	}
	elapsed, ok := c.Tick(t0.Add(-time.Second + 5*time.Millisecond))
	if !ok || elapsed != 5 {
		t.Errorf("Tick() = %f, %v, expected 5, true", elapsed, ok)
	}
}
