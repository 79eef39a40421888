package config

// Progression types accepted in progression.type.
const (
	ProgressNone  = "none"
	ProgressScore = "score"
	ProgressTime  = "time"
)

// minInterval keeps consecutive cacti jumpable at top speed.
const minInterval = 30

// DifficultyManager scales the runner's scroll speed and cactus spacing as a
// run goes on. Level 0 leaves the base tuning untouched; level 1 applies the
// full scaling.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: cfg.InitialLevel}
}

// SetInitialLevel overrides the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.start = min(max(level, 0), 1)
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level interpolates from the starting level to 1 as score or ticks
// approach progression.max_at. A disabled manager reports 0.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	var done float64
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = float64(score)
	case ProgressTime:
		done = float64(ticks)
	default:
		return d.start
	}
	progress := min(max(done/float64(max(d.cfg.Progression.MaxAt, 1)), 0), 1)
	return d.start + progress*(1-d.start)
}

// Speed scales base up to base × (1 + speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens the base spawn interval by up to interval_reduction
// ticks, never below minInterval once any reduction applies.
func (d *DifficultyManager) Interval(base, score, ticks int) int {
	cut := int(d.Level(score, ticks) * float64(d.cfg.Scaling.IntervalReduction))
	if cut == 0 {
		return base
	}
	return max(base-cut, minInterval)
}
