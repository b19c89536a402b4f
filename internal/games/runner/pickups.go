package runner

import (
	"math/rand"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/core"
)

// Pickup is a cash bag floating above the ground.
type Pickup struct {
	X, Y      float64
	Collected bool
	Value     int64 // cents
	Label     string
}

// PickupManager handles spawning, movement, collection and removal of pickups.
type PickupManager struct {
	items []Pickup
	rng   *rand.Rand
	cfg   *config.RunnerConfig
}

// NewPickupManager creates a manager drawing from rng.
func NewPickupManager(rng *rand.Rand, cfg *config.RunnerConfig) *PickupManager {
	return &PickupManager{
		items: make([]Pickup, 0, 4),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset clears all pickups.
func (pm *PickupManager) Reset() {
	pm.items = pm.items[:0]
}

// MaybeSpawn rolls the spawn gate and appends a pickup when it passes.
func (pm *PickupManager) MaybeSpawn() {
	pc := pm.cfg.Pickups
	if pm.rng.Float64() <= pc.Gate {
		return
	}
	y := pm.cfg.World.GroundY - pc.MinLift - pm.rng.Float64()*pc.LiftRange
	value := pc.Denominations[pm.rng.Intn(len(pc.Denominations))]
	label := ""
	if len(pc.Labels) > 0 {
		label = pc.Labels[pm.rng.Intn(len(pc.Labels))]
	}
	pm.items = append(pm.items, Pickup{
		X:     pm.cfg.World.Width + pm.cfg.Obstacles.SpawnOffset,
		Y:     y,
		Value: value,
		Label: label,
	})
}

// Advance moves pickups left by speed.
func (pm *PickupManager) Advance(speed float64) {
	for i := range pm.items {
		pm.items[i].X -= speed
	}
}

// Collect marks every uncollected pickup touching player as collected and
// returns how many were taken and their total value.
func (pm *PickupManager) Collect(player core.Box) (count int, cents int64) {
	pc := pm.cfg.Pickups
	for i := range pm.items {
		p := &pm.items[i]
		if p.Collected {
			continue
		}
		if player.Intersects(core.NewBox(p.X, p.Y, pc.Size, pc.Size).Grow(pc.Reach)) {
			p.Collected = true
			count++
			cents += p.Value
		}
	}
	return count, cents
}

// Prune drops collected pickups and those past the left edge.
func (pm *PickupManager) Prune() {
	kept := pm.items[:0]
	for _, p := range pm.items {
		if !p.Collected && p.X > pm.cfg.Pickups.PruneX {
			kept = append(kept, p)
		}
	}
	pm.items = kept
}

// Pickups returns the current list of pickups.
func (pm *PickupManager) Pickups() []Pickup {
	return pm.items
}
