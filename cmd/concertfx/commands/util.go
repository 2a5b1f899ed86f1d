// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ik5/concertfx/engine"
)

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// loadPreset reads effect settings from a YAML or JSON file. Files without
// a known extension are tried as YAML first, then JSON.
func loadPreset(path string, v *engine.EffectSettings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, v); err != nil {
			if err := json.Unmarshal(data, v); err != nil {
				return fmt.Errorf("failed to parse preset (tried YAML and JSON): %w", err)
			}
		}
	}

	return nil
}

// resolveSettings merges the preset with the effect flags that were set
// explicitly and rejects values outside their range.
func resolveSettings(flags *pflag.FlagSet) (engine.EffectSettings, error) {
	var s engine.EffectSettings
	if presetFile != "" {
		if err := loadPreset(presetFile, &s); err != nil {
			return s, err
		}
	}

	overrides := []struct {
		name string
		dst  *float64
		v    float64
	}{
		{"reverb", &s.ReverbAmount, reverb},
		{"bass", &s.BassBoost, bass},
		{"presence", &s.Presence, presence},
		{"male", &s.MaleChorus, male},
		{"female", &s.FemaleChorus, female},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.v
		}
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// newEngine builds an engine from the global flags.
func newEngine() *engine.Engine {
	opts := []engine.Option{
		engine.WithLogger(slog.Default()),
		engine.WithBlockSize(blockSize),
		engine.WithSampleRate(sampleRate),
	}
	if seed != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return engine.New(opts...)
}

// loadFile reads path into a new engine.
func loadFile(path string) (*engine.Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	e := newEngine()
	if _, err := e.LoadAudioFile(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}
