package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RPCEnvVar overrides the wallet RPC endpoint of every variant.
const RPCEnvVar = "RUGRUN_SOLANA_RPC"

// Load loads the configuration of a variant.
// Search order: customPath -> ~/.rugrun/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
// Fields missing from a file keep their hardcoded defaults.
func Load(variant, customPath string) (RunnerConfig, error) {
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(variant), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(variant, data)
		if err != nil {
			return Default(variant), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(variant, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := parse(variant, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(variant, embeddedYAML(variant))
	if err != nil {
		return Default(variant), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes a YAML document over the hardcoded defaults and applies
// environment overrides.
func parse(variant string, data []byte) (RunnerConfig, error) {
	cfg := Default(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if rpc := os.Getenv(RPCEnvVar); rpc != "" {
		cfg.Wallet.RPCEndpoint = rpc
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.GroundY <= 0:
		return fmt.Errorf("world dimensions must be positive")
	case c.Scoring.TickEvery <= 0:
		return fmt.Errorf("scoring.tick_every must be positive")
	case c.Pickups.Every <= 0:
		return fmt.Errorf("pickups.every must be positive")
	case c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("physics.base_speed must be positive")
	case c.Pacing.SpeedStep < 0:
		return fmt.Errorf("pacing.speed_step must not be negative")
	case c.Pacing.CadenceShrink < 0:
		return fmt.Errorf("pacing.cadence_shrink must not be negative")
	case c.Pacing.CadenceFloor <= 0:
		return fmt.Errorf("pacing.cadence_floor must be positive")
	case c.Pacing.CadenceStart < c.Pacing.CadenceFloor:
		return fmt.Errorf("pacing.cadence_start must be at least pacing.cadence_floor")
	case len(c.Obstacles.Categories) == 0:
		return fmt.Errorf("obstacles.categories must not be empty")
	case len(c.Pickups.Denominations) == 0:
		return fmt.Errorf("pickups.denominations must not be empty")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rugrun", "configs", filename)
}

// ApplyPreset modifies the pacing based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Pacing.SpeedStep = 0
		cfg.Pacing.CadenceShrink = 0
	case DifficultyEasy:
		cfg.Pacing.SpeedStep /= 2
		cfg.Pacing.CadenceFloor += 10
	case DifficultyHard:
		cfg.Physics.BaseSpeed += 1
		cfg.Pacing.CadenceStart -= 10
		if cfg.Pacing.CadenceStart < cfg.Pacing.CadenceFloor {
			cfg.Pacing.CadenceStart = cfg.Pacing.CadenceFloor
		}
	}
}
