// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math"

	"github.com/ik5/concertfx/utils"
)

const (
	MinToneDB = -12.0
	MaxToneDB = 12.0
)

// EffectSettings is one snapshot of the concert effect parameters. It is
// passed by value; the engine never keeps a reference to the caller's copy.
type EffectSettings struct {
	// ReverbAmount is the wet share of the hall reverb, 0 (dry) to 1.
	ReverbAmount float64 `yaml:"reverb_amount" json:"reverb_amount"`
	// BassBoost is the 200 Hz low-shelf gain in dB.
	BassBoost float64 `yaml:"bass_boost" json:"bass_boost"`
	// Presence is the 3 kHz peaking gain in dB.
	Presence float64 `yaml:"presence" json:"presence"`
	// MaleChorus and FemaleChorus scale the backing choir buses, 0 to 1.
	MaleChorus   float64 `yaml:"male_chorus" json:"male_chorus"`
	FemaleChorus float64 `yaml:"female_chorus" json:"female_chorus"`
}

// Clamp returns s with every field forced into its range. NaN becomes 0.
func (s EffectSettings) Clamp() EffectSettings {
	return EffectSettings{
		ReverbAmount: utils.Clamp(s.ReverbAmount, 0, 1),
		BassBoost:    utils.Clamp(s.BassBoost, MinToneDB, MaxToneDB),
		Presence:     utils.Clamp(s.Presence, MinToneDB, MaxToneDB),
		MaleChorus:   utils.Clamp(s.MaleChorus, 0, 1),
		FemaleChorus: utils.Clamp(s.FemaleChorus, 0, 1),
	}
}

// Validate reports the first field outside its range.
func (s EffectSettings) Validate() error {
	checks := []struct {
		name   string
		v      float64
		lo, hi float64
	}{
		{"reverb_amount", s.ReverbAmount, 0, 1},
		{"bass_boost", s.BassBoost, MinToneDB, MaxToneDB},
		{"presence", s.Presence, MinToneDB, MaxToneDB},
		{"male_chorus", s.MaleChorus, 0, 1},
		{"female_chorus", s.FemaleChorus, 0, 1},
	}

	for _, c := range checks {
		if math.IsNaN(c.v) || c.v < c.lo || c.v > c.hi {
			return fmt.Errorf("%w: %s = %v, want [%v, %v]", ErrInvalidSettings, c.name, c.v, c.lo, c.hi)
		}
	}

	return nil
}
