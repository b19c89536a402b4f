package runner

import (
	"math/rand"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/core"
)

// Obstacle is a scam the player must jump over. It stands on the ground.
type Obstacle struct {
	X        float64 // Left edge in world units
	Width    float64
	Height   float64
	Category string
	Cleared  bool // Counted toward obstaclesCleared
}

// Box returns the obstacle's sprite bounds.
func (o Obstacle) Box(groundY float64) core.Box {
	return core.NewBox(o.X, groundY-o.Height, o.Width, o.Height)
}

// Trailing returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Trailing() float64 {
	return o.X + o.Width
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Iteration order is spawn order.
type ObstacleManager struct {
	items []Obstacle
	rng   *rand.Rand
	cfg   *config.RunnerConfig
}

// NewObstacleManager creates a manager drawing from rng.
func NewObstacleManager(rng *rand.Rand, cfg *config.RunnerConfig) *ObstacleManager {
	return &ObstacleManager{
		items: make([]Obstacle, 0, 8),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset clears all obstacles.
func (om *ObstacleManager) Reset() {
	om.items = om.items[:0]
}

// Spawn appends a random obstacle just beyond the right edge.
func (om *ObstacleManager) Spawn() {
	oc := om.cfg.Obstacles
	category := oc.Categories[om.rng.Intn(len(oc.Categories))]
	height := oc.MinHeight + om.rng.Float64()*oc.HeightRange
	width := oc.MinWidth + om.rng.Float64()*oc.WidthRange

	om.items = append(om.items, Obstacle{
		X:        om.cfg.World.Width + oc.SpawnOffset,
		Width:    width,
		Height:   height,
		Category: category,
	})
}

// Advance moves obstacles left by speed and drops those past the left edge.
func (om *ObstacleManager) Advance(speed float64) {
	kept := om.items[:0]
	for _, o := range om.items {
		o.X -= speed
		if o.Trailing() > om.cfg.Obstacles.PruneX {
			kept = append(kept, o)
		}
	}
	om.items = kept
}

// Collide returns the index of the first obstacle whose inset box overlaps
// player, or -1.
func (om *ObstacleManager) Collide(player core.Box) int {
	m := om.cfg.Obstacles.HitMargin
	for i, o := range om.items {
		if player.Intersects(o.Box(om.cfg.World.GroundY).Inset(m, m, m, 0)) {
			return i
		}
	}
	return -1
}

// MarkCleared counts obstacles whose trailing edge has passed lineX for
// the first time and returns how many were newly counted.
func (om *ObstacleManager) MarkCleared(lineX float64) int {
	n := 0
	for i := range om.items {
		if !om.items[i].Cleared && om.items[i].Trailing() < lineX {
			om.items[i].Cleared = true
			n++
		}
	}
	return n
}

// Obstacles returns the current list of obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.items
}
