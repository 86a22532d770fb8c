package config

import "testing"

func TestDifficultyRampStartsAtOne(t *testing.T) {
	d := NewDifficultyRamp(DifficultyConfig{SpeedIncrement: 0.00001})
	if d.Multiplier() != 1.0 {
		t.Errorf("Multiplier() = %f, expected 1.0", d.Multiplier())
	}
}

func TestDifficultyRampMonotonic(t *testing.T) {
	d := NewDifficultyRamp(DifficultyConfig{SpeedIncrement: 0.00001})

	deltas := []float64{16.7, 0, 33.3, 8, 1000, 0.001, 250}
	prev := d.Multiplier()
	for _, dt := range deltas {
		d.Update(dt)
		if d.Multiplier() < prev {
			t.Fatalf("multiplier decreased from %f to %f after %f ms", prev, d.Multiplier(), dt)
		}
		if dt > 0 && d.Multiplier() <= prev {
			t.Fatalf("multiplier did not grow after %f ms", dt)
		}
		prev = d.Multiplier()
	}
}

func TestDifficultyRampIgnoresNegativeElapsed(t *testing.T) {
	d := NewDifficultyRamp(DifficultyConfig{SpeedIncrement: 0.001})
	d.Update(100)
	before := d.Multiplier()

	d.Update(-50)

	if d.Multiplier() != before {
		t.Errorf("negative elapsed changed multiplier: %f -> %f", before, d.Multiplier())
	}
}

func TestDifficultyRampNoCeiling(t *testing.T) {
	d := NewDifficultyRamp(DifficultyConfig{SpeedIncrement: 0.00001})
	// One simulated day of play
	for i := 0; i < 24*60; i++ {
		d.Update(60_000)
	}
	if d.Multiplier() < 800 {
		t.Errorf("multiplier should keep growing without a cap, got %f", d.Multiplier())
	}
}
