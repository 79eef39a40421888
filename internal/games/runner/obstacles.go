package runner

import (
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Cactus represents a ground obstacle the runner must jump over.
type Cactus struct {
	Rect core.Rect
}

// ObstacleManager handles spawning, movement, and removal of cacti.
type ObstacleManager struct {
	cacti      []Cactus
	rng        core.Rand
	cfg        *config.RunnerConfig
	screenW    float64
	baseY      float64 // Cactus bottom edge
	difficulty *config.DifficultyManager
	spawnTimer int
}

// NewObstacleManager creates an obstacle manager drawing from rng.
func NewObstacleManager(rng core.Rand, cfg *config.RunnerConfig, screen config.ScreenConfig, diff *config.DifficultyManager) *ObstacleManager {
	return &ObstacleManager{
		cacti:      make([]Cactus, 0, 8),
		rng:        rng,
		cfg:        cfg,
		screenW:    screen.Width,
		baseY:      screen.Height - cfg.Obstacles.BaseOffset,
		difficulty: diff,
	}
}

// Reset clears all obstacles and the spawn timer.
func (om *ObstacleManager) Reset() {
	om.cacti = om.cacti[:0]
	om.spawnTimer = 0
}

// Update spawns a cactus when the timer passes the interval, then moves all
// cacti left. It returns how many cacti fully left the screen this tick.
func (om *ObstacleManager) Update(score int, ticks int) int {
	om.spawnTimer++
	if om.spawnTimer > om.difficulty.Interval(om.cfg.Obstacles.SpawnEvery, score, ticks) {
		om.spawnTimer = 0
		om.spawnCactus()
	}

	speed := om.difficulty.Speed(om.cfg.Physics.BaseSpeed, score, ticks)

	passed := 0
	kept := om.cacti[:0]
	for _, c := range om.cacti {
		c.Rect.X -= speed
		if c.Rect.Right() < 0 {
			passed++
			continue
		}
		kept = append(kept, c)
	}
	om.cacti = kept
	return passed
}

// spawnCactus creates a new cactus just past the right edge.
func (om *ObstacleManager) spawnCactus() {
	o := om.cfg.Obstacles
	x := om.screenW + float64(core.RandRange(om.rng, o.MinOffset, o.MaxOffset))
	w := core.RandChoice(om.rng, o.Widths)
	h := core.RandChoice(om.rng, o.Heights)
	om.cacti = append(om.cacti, Cactus{Rect: core.NewRect(x, om.baseY-h, w, h)})
}

// Cacti returns the current list of obstacles.
func (om *ObstacleManager) Cacti() []Cactus {
	return om.cacti
}

// CheckCollision tests if the given rectangle collides with any cactus.
func (om *ObstacleManager) CheckCollision(r core.Rect) bool {
	for _, c := range om.cacti {
		if r.Intersects(c.Rect) {
			return true
		}
	}
	return false
}
