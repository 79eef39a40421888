package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the config directories.
const FileName = "chaos.yaml"

// LoadChaos loads the chaos arcade configuration.
// Search order: customPath -> ~/.arcade/configs/chaos.yaml -> ./configs/chaos.yaml -> embedded default
func LoadChaos(customPath string) (ChaosConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChaosConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ChaosConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultChaosYAML)
	if err != nil {
		return DefaultChaosConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults, so a file only needs the
// keys it changes. The result is validated.
func Parse(data []byte) (ChaosConfig, error) {
	cfg := DefaultChaosConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChaosConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ChaosConfig{}, err
	}
	return cfg, nil
}

// ResolvePath returns the file LoadChaos would read from disk, or "" when
// only the embedded default applies. Used to pick the file to watch.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if p := userConfigPath(FileName); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	local := filepath.Join("configs", FileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}

// Validate rejects configurations the simulators cannot run with.
func (c ChaosConfig) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height))
	}
	if c.Session.Lives <= 0 {
		errs = append(errs, fmt.Errorf("session.lives must be positive, got %d", c.Session.Lives))
	}
	if c.Platformer.Chaos.Interval <= 0 {
		errs = append(errs, errors.New("platformer.chaos.interval must be positive"))
	}
	if c.Platformer.Chaos.TeleportMaxX < c.Platformer.Chaos.TeleportMinX {
		errs = append(errs, errors.New("platformer.chaos teleport range is inverted"))
	}
	for i, p := range c.Platformer.Level.Platforms {
		switch p.Kind {
		case "static", "disappearing", "bounce":
		case "moving":
			if p.EndX < p.StartX {
				errs = append(errs, fmt.Errorf("platform %d: end_x before start_x", i))
			}
		default:
			errs = append(errs, fmt.Errorf("platform %d: unknown kind %q", i, p.Kind))
		}
	}
	for i, e := range c.Platformer.Level.Enemies {
		if e.Right-e.Left < c.Platformer.Pickups.EnemySize {
			errs = append(errs, fmt.Errorf("enemy %d: patrol range narrower than the enemy", i))
		}
	}
	for i, p := range c.Platformer.Level.PowerUps {
		switch p.Kind {
		case "speed", "jump", "invulnerable", "reverse":
		default:
			errs = append(errs, fmt.Errorf("power-up %d: unknown kind %q", i, p.Kind))
		}
	}
	if c.HillClimb.Traffic.SpawnEvery <= 0 {
		errs = append(errs, errors.New("hill_climb.traffic.spawn_every must be positive"))
	}
	if c.HillClimb.Car.EngineCueEvery <= 0 {
		errs = append(errs, errors.New("hill_climb.car.engine_cue_every must be positive"))
	}
	if len(c.Runner.Obstacles.Widths) == 0 || len(c.Runner.Obstacles.Heights) == 0 {
		errs = append(errs, errors.New("runner.obstacles needs at least one width and height"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRunnerPreset modifies the runner difficulty based on a preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == ProgressNone {
		cfg.Difficulty.Progression.Type = ProgressScore
	}
}
