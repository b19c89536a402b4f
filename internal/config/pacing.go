package config

import "math"

// Pacing derives the speed and obstacle cadence for a frame count.
// Both are step functions: speed never decreases and the cadence never grows.
type Pacing struct {
	cfg       PacingConfig
	baseSpeed float64
}

// NewPacing creates a pacing calculator.
func NewPacing(cfg PacingConfig, baseSpeed float64) *Pacing {
	return &Pacing{cfg: cfg, baseSpeed: baseSpeed}
}

// Speed returns the scroll speed at the given frame.
func (p *Pacing) Speed(frame int) float64 {
	if p.cfg.SpeedStepEvery <= 0 {
		return p.baseSpeed
	}
	steps := math.Floor(float64(frame) / float64(p.cfg.SpeedStepEvery))
	return p.baseSpeed + steps*p.cfg.SpeedStep
}

// Cadence returns the obstacle spawn interval in ticks at the given frame.
func (p *Pacing) Cadence(frame int) int {
	cadence := p.cfg.CadenceStart
	if p.cfg.CadenceShrinkEvery > 0 {
		cadence -= (frame / p.cfg.CadenceShrinkEvery) * p.cfg.CadenceShrink
	}
	return max(p.cfg.CadenceFloor, cadence)
}

// SpawnDue reports whether an obstacle spawns on this frame.
func (p *Pacing) SpawnDue(frame int) bool {
	c := p.Cadence(frame)
	if c <= 0 {
		return false
	}
	return frame%c == 0
}
