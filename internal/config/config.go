// Package config provides YAML-based tuning configuration, difficulty
// management and config file watching for the chaos arcade.
package config

// ChaosConfig contains all tuning for a chaos arcade session.
type ChaosConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Session    SessionConfig    `yaml:"session"`
	Platformer PlatformerConfig `yaml:"platformer"`
	HillClimb  HillClimbConfig  `yaml:"hill_climb"`
	Runner     RunnerConfig     `yaml:"runner"`
}

// ScreenConfig is the size of the simulated playfield in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SessionConfig holds the rules shared by every mode.
type SessionConfig struct {
	Lives            int `yaml:"lives"`
	RedCoinReward    int `yaml:"red_coin_reward"`
	GoldenCoinReward int `yaml:"golden_coin_reward"`
}

// PlatformerConfig contains all tuning for the platformer mode.
type PlatformerConfig struct {
	Physics  PlatformerPhysics `yaml:"physics"`
	Player   PlatformerPlayer  `yaml:"player"`
	Effects  EffectConfig      `yaml:"effects"`
	Chaos    ChaosEvents       `yaml:"chaos"`
	Pickups  PickupConfig      `yaml:"pickups"`
	Platform PlatformRules     `yaml:"platform"`
	Level    LevelLayout       `yaml:"level"`
}

// PlatformerPhysics defines movement parameters for the platformer.
type PlatformerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // Negative: up is -y
	MoveSpeed    float64 `yaml:"move_speed"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	FloorMargin  float64 `yaml:"floor_margin"` // Floor top is screen height minus this
}

// PlatformerPlayer defines the player's body and damage rules.
type PlatformerPlayer struct {
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	HitCooldown int     `yaml:"hit_cooldown"` // Invulnerability ticks after a hit
}

// EffectConfig scales movement while a power-up timer is active.
type EffectConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	JumpMultiplier  float64 `yaml:"jump_multiplier"`
}

// ChaosEvents defines the periodic random disruptions.
type ChaosEvents struct {
	Interval     int     `yaml:"interval"`
	ReverseTicks int     `yaml:"reverse_ticks"`
	BoostTicks   int     `yaml:"boost_ticks"`
	TeleportMinX int     `yaml:"teleport_min_x"`
	TeleportMaxX int     `yaml:"teleport_max_x"`
	TeleportY    float64 `yaml:"teleport_y"`
}

// PickupConfig defines sizes and rewards of collectible items.
type PickupConfig struct {
	EnemySize   float64 `yaml:"enemy_size"`
	CoinSize    float64 `yaml:"coin_size"`
	CoinPoints  int     `yaml:"coin_points"`
	PowerUpSize float64 `yaml:"power_up_size"`
	RedCoinSize float64 `yaml:"red_coin_size"`
}

// PlatformRules defines the special platform behaviors.
type PlatformRules struct {
	DisappearDelay int     `yaml:"disappear_delay"`
	BounceFactor   float64 `yaml:"bounce_factor"` // Multiplies jump strength
}

// LevelLayout is the fixed platformer level.
type LevelLayout struct {
	Platforms []PlatformSpec `yaml:"platforms"`
	Enemies   []EnemySpec    `yaml:"enemies"`
	Coins     []PointSpec    `yaml:"coins"`
	PowerUps  []PowerUpSpec  `yaml:"power_ups"`
	RedCoin   PointSpec      `yaml:"red_coin"`
}

// PlatformSpec describes one platform. Kind is static, moving,
// disappearing or bounce; the range fields apply to moving platforms.
type PlatformSpec struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	StartX float64 `yaml:"start_x,omitempty"`
	EndX   float64 `yaml:"end_x,omitempty"`
	Speed  float64 `yaml:"speed,omitempty"`
}

// EnemySpec places an enemy patrolling [Left, Right].
type EnemySpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// PointSpec is a position.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PowerUpSpec places a power-up. Kind is speed, jump, invulnerable or reverse.
type PowerUpSpec struct {
	Kind     string  `yaml:"kind"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Duration int     `yaml:"duration"`
	Points   int     `yaml:"points"`
}

// HillClimbConfig contains all tuning for the driving mode.
type HillClimbConfig struct {
	Car     CarConfig     `yaml:"car"`
	Camera  CameraConfig  `yaml:"camera"`
	Traffic TrafficConfig `yaml:"traffic"`
	Weapons WeaponConfig  `yaml:"weapons"`
	Coins   HillCoins     `yaml:"coins"`
}

// CarConfig defines the player's car.
type CarConfig struct {
	StartX         float64 `yaml:"start_x"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	RoadY          float64 `yaml:"road_y"` // Car bottom rests here
	Accel          float64 `yaml:"accel"`
	Brake          float64 `yaml:"brake"`
	Drag           float64 `yaml:"drag"`
	Gravity        float64 `yaml:"gravity"`
	MaxSpeed       float64 `yaml:"max_speed"`
	Fuel           float64 `yaml:"fuel"`
	FuelBurn       float64 `yaml:"fuel_burn"`
	DistanceFactor float64 `yaml:"distance_factor"`
	EngineCueEvery int     `yaml:"engine_cue_every"`
}

// CameraConfig defines the smoothed follow camera.
type CameraConfig struct {
	Lead      float64 `yaml:"lead"`      // Fraction of the screen kept ahead of the car
	Smoothing float64 `yaml:"smoothing"` // Fraction of the gap closed per tick
}

// TrafficConfig defines the oncoming obstacle cars.
type TrafficConfig struct {
	SpawnEvery  int     `yaml:"spawn_every"`
	MinAhead    int     `yaml:"min_ahead"`
	MaxAhead    int     `yaml:"max_ahead"`
	BaseSpeed   float64 `yaml:"base_speed"`
	SpeedJitter float64 `yaml:"speed_jitter"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// WeaponConfig defines the car's gun.
type WeaponConfig struct {
	BulletSpeed       float64 `yaml:"bullet_speed"`
	BulletWidth       float64 `yaml:"bullet_width"`
	BulletHeight      float64 `yaml:"bullet_height"`
	Cooldown          int     `yaml:"cooldown"`
	MuzzleLifetime    int     `yaml:"muzzle_lifetime"`
	ExplosionLifetime int     `yaml:"explosion_lifetime"`
	KillPoints        int     `yaml:"kill_points"`
}

// HillCoins defines the red and golden coins of the driving mode.
type HillCoins struct {
	Y              float64 `yaml:"y"`
	RedCoinBehind  float64 `yaml:"red_coin_behind"`
	GoldenDistance float64 `yaml:"golden_distance"`
	GoldenAhead    float64 `yaml:"golden_ahead"`
	GoldenCoinSize float64 `yaml:"golden_coin_size"`
}

// RunnerConfig contains all tuning for the runner mini-game.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines physics parameters for the runner.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	BaseSpeed   float64 `yaml:"base_speed"`
}

// RunnerPlayer defines the runner's body.
type RunnerPlayer struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Ground top is screen height minus this
}

// RunnerObstacles defines cactus spawning.
type RunnerObstacles struct {
	SpawnEvery int       `yaml:"spawn_every"` // Spawn when the timer exceeds this
	MinOffset  int       `yaml:"min_offset"`
	MaxOffset  int       `yaml:"max_offset"`
	Widths     []float64 `yaml:"widths"`
	Heights    []float64 `yaml:"heights"`
	BaseOffset float64   `yaml:"base_offset"` // Cactus bottom is screen height minus this
	Points     int       `yaml:"points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset; unknown values give "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
