package config

import (
	_ "embed"
)

//go:embed defaults/chaos.yaml
var defaultChaosYAML []byte

// DefaultChaosConfig returns the built-in tuning, used when no YAML is found.
func DefaultChaosConfig() ChaosConfig {
	return ChaosConfig{
		Screen: ScreenConfig{
			Width:  1000,
			Height: 600,
		},
		Session: SessionConfig{
			Lives:            3,
			RedCoinReward:    500,
			GoldenCoinReward: 2000,
		},
		Platformer: PlatformerConfig{
			Physics: PlatformerPhysics{
				Gravity:      0.8,
				JumpStrength: -15,
				MoveSpeed:    5,
				EnemySpeed:   2,
				FloorMargin:  100,
			},
			Player: PlatformerPlayer{
				SpawnX:      50,
				SpawnY:      400,
				Width:       40,
				Height:      50,
				HitCooldown: 120,
			},
			Effects: EffectConfig{
				SpeedMultiplier: 2,
				JumpMultiplier:  1.5,
			},
			Chaos: ChaosEvents{
				Interval:     900,
				ReverseTicks: 180,
				BoostTicks:   240,
				TeleportMinX: 100,
				TeleportMaxX: 900,
				TeleportY:    300,
			},
			Pickups: PickupConfig{
				EnemySize:   30,
				CoinSize:    20,
				CoinPoints:  100,
				PowerUpSize: 25,
				RedCoinSize: 25,
			},
			Platform: PlatformRules{
				DisappearDelay: 60,
				BounceFactor:   2,
			},
			Level: DefaultLevel(),
		},
		HillClimb: HillClimbConfig{
			Car: CarConfig{
				StartX:         100,
				Width:          60,
				Height:         30,
				RoadY:          450,
				Accel:          0.5,
				Brake:          0.3,
				Drag:           0.98,
				Gravity:        0.5,
				MaxSpeed:       8,
				Fuel:           100,
				FuelBurn:       0.08,
				DistanceFactor: 0.1,
				EngineCueEvery: 30,
			},
			Camera: CameraConfig{
				Lead:      1.0 / 3.0,
				Smoothing: 0.1,
			},
			Traffic: TrafficConfig{
				SpawnEvery:  180,
				MinAhead:    50,
				MaxAhead:    300,
				BaseSpeed:   4,
				SpeedJitter: 2,
				Width:       60,
				Height:      30,
			},
			Weapons: WeaponConfig{
				BulletSpeed:       12,
				BulletWidth:       8,
				BulletHeight:      4,
				Cooldown:          8,
				MuzzleLifetime:    6,
				ExplosionLifetime: 18,
				KillPoints:        200,
			},
			Coins: HillCoins{
				Y:              425,
				RedCoinBehind:  200,
				GoldenDistance: 800,
				GoldenAhead:    600,
				GoldenCoinSize: 26,
			},
		},
		Runner: DefaultRunnerConfig(),
	}
}

// DefaultLevel returns the built-in platformer level.
func DefaultLevel() LevelLayout {
	return LevelLayout{
		Platforms: []PlatformSpec{
			{Kind: "static", X: 0, Y: 500, W: 1000, H: 100},
			{Kind: "static", X: 200, Y: 400, W: 150, H: 20},
			{Kind: "disappearing", X: 400, Y: 300, W: 150, H: 20},
			{Kind: "moving", X: 600, Y: 350, W: 150, H: 20, StartX: 550, EndX: 750, Speed: 2},
			{Kind: "bounce", X: 750, Y: 250, W: 100, H: 20},
			{Kind: "disappearing", X: 300, Y: 150, W: 100, H: 20},
			{Kind: "moving", X: 500, Y: 100, W: 200, H: 20, StartX: 400, EndX: 700, Speed: 1},
		},
		Enemies: []EnemySpec{
			{X: 210, Y: 370, Left: 200, Right: 350},
			{X: 410, Y: 270, Left: 400, Right: 550},
			{X: 610, Y: 320, Left: 600, Right: 750},
		},
		Coins: []PointSpec{
			{X: 250, Y: 360},
			{X: 450, Y: 260},
			{X: 650, Y: 310},
			{X: 800, Y: 210},
			{X: 350, Y: 110},
		},
		PowerUps: []PowerUpSpec{
			{Kind: "speed", X: 320, Y: 360, Duration: 300, Points: 50},
			{Kind: "jump", X: 780, Y: 210, Duration: 300, Points: 50},
			{Kind: "invulnerable", X: 520, Y: 60, Duration: 300, Points: 50},
			{Kind: "reverse", X: 100, Y: 460, Duration: 240, Points: -25},
		},
		RedCoin: PointSpec{X: 880, Y: 425},
	}
}

// DefaultRunnerConfig returns the built-in runner tuning.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:     1,
			JumpImpulse: -15,
			BaseSpeed:   6,
		},
		Player: RunnerPlayer{
			X:            80,
			Width:        40,
			Height:       40,
			GroundOffset: 60,
		},
		Obstacles: RunnerObstacles{
			SpawnEvery: 90,
			MinOffset:  10,
			MaxOffset:  200,
			Widths:     []float64{20, 25, 30},
			Heights:    []float64{40, 48, 56},
			BaseOffset: 40,
			Points:     10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressNone,
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 30,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChaosYAML
}
