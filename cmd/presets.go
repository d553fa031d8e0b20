package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/monkey-sim/monkey-sim/sim"
)

// Preset names a round count and relief mode, with an optional known
// answer that is verified after the run.
type Preset struct {
	Rounds   int    `yaml:"rounds"`
	Relief   string `yaml:"relief"`
	Expected int64  `yaml:"expected,omitempty"` // 0 = no answer on file
}

// PresetsConfig represents the full presets file structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type PresetsConfig struct {
	Presets map[string]Preset `yaml:"presets"`
}

// builtinPresets mirrors the two standard runs: 20 rounds with divide
// relief and 10000 rounds with modulus relief.
func builtinPresets() map[string]Preset {
	return map[string]Preset{
		"short": {Rounds: sim.ShortRunRounds, Relief: string(sim.ReliefDivide)},
		"long":  {Rounds: sim.LongRunRounds, Relief: string(sim.ReliefModulus)},
	}
}

// LoadPresets merges a presets YAML file over the built-in short/long
// presets. An empty path returns the built-ins unchanged. Unknown YAML
// fields are rejected.
func LoadPresets(path string) (map[string]Preset, error) {
	presets := builtinPresets()
	if path == "" {
		return presets, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}
	cfg, err := decodePresets(data)
	if err != nil {
		return nil, err
	}
	for name, preset := range cfg.Presets {
		presets[name] = preset
	}
	return presets, nil
}

func decodePresets(data []byte) (*PresetsConfig, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var cfg PresetsConfig
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing presets file: %w", err)
	}
	for name, preset := range cfg.Presets {
		if preset.Rounds <= 0 {
			return nil, fmt.Errorf("preset %q: rounds must be positive, got %d", name, preset.Rounds)
		}
		switch sim.ReliefMode(preset.Relief) {
		case sim.ReliefDivide, sim.ReliefModulus:
		default:
			return nil, fmt.Errorf("preset %q: unknown relief mode %q", name, preset.Relief)
		}
	}
	return &cfg, nil
}
