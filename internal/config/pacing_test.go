package config

import "testing"

func TestPacingSpeed(t *testing.T) {
	cfg := Default(VariantGetRichQuick)
	p := NewPacing(cfg.Pacing, cfg.Physics.BaseSpeed)

	tests := []struct {
		frame    int
		expected float64
	}{
		{0, 4.0},
		{399, 4.0},
		{400, 4.5},
		{799, 4.5},
		{800, 5.0},
		{4000, 9.0},
	}
	for _, tc := range tests {
		if got := p.Speed(tc.frame); got != tc.expected {
			t.Errorf("Speed(%d) = %f, expected %f", tc.frame, got, tc.expected)
		}
	}
}

func TestPacingSpeedNonDecreasing(t *testing.T) {
	cfg := Default(VariantRugRun)
	p := NewPacing(cfg.Pacing, cfg.Physics.BaseSpeed)

	prev := p.Speed(0)
	for f := 1; f < 10_000; f++ {
		s := p.Speed(f)
		if s < prev {
			t.Fatalf("speed decreased at frame %d: %f < %f", f, s, prev)
		}
		prev = s
	}
}

func TestPacingCadence(t *testing.T) {
	cfg := Default(VariantRugRun)
	p := NewPacing(cfg.Pacing, cfg.Physics.BaseSpeed)

	tests := []struct {
		frame    int
		expected int
	}{
		{0, 75},
		{249, 75},
		{250, 70},
		{1000, 55},
		{2000, 35},
		{100_000, 35},
	}
	for _, tc := range tests {
		if got := p.Cadence(tc.frame); got != tc.expected {
			t.Errorf("Cadence(%d) = %d, expected %d", tc.frame, got, tc.expected)
		}
	}

	if !p.SpawnDue(75) || p.SpawnDue(76) {
		t.Error("SpawnDue should fire on multiples of the cadence")
	}
}
