package crescendo

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is everything a render depends on.  Durations are in seconds and
// frequencies in Hz.
type Config struct {
	SampleRate int `yaml:"sample_rate"`

	RandomTime   float64 `yaml:"random_time"`
	ConvergeTime float64 `yaml:"converge_time"`
	HoldTime     float64 `yaml:"hold_time"`

	RandomMinHz float64 `yaml:"random_min_hz"`
	RandomMaxHz float64 `yaml:"random_max_hz"`
	Wander      bool    `yaml:"wander"`
	Pairing     Pairing `yaml:"pairing"`

	RandomStartAmp   float64 `yaml:"random_start_amp"`
	ConvergeStartAmp float64 `yaml:"converge_start_amp"`
	HoldStartAmp     float64 `yaml:"hold_start_amp"`
	HoldEndAmp       float64 `yaml:"hold_end_amp"`

	HoldFreqDeviation float64 `yaml:"hold_freq_deviation"`

	Bass   Part `yaml:"bass"`
	Treble Part `yaml:"treble"`

	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
}

// DefaultConfig is the reference configuration: a D major chord spread
// over six octaves, reached after three seconds of drift and five of glide.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,

		RandomTime:   3,
		ConvergeTime: 5,
		HoldTime:     5,

		RandomMinHz: 200,
		RandomMaxHz: 400,
		Wander:      true,
		Pairing:     PairByVoice,

		RandomStartAmp:   0.1,
		ConvergeStartAmp: 0.4,
		HoldStartAmp:     0.8,
		HoldEndAmp:       1.0,

		HoldFreqDeviation: 0.05,

		Bass: Part{
			Voices: 2,
			Notes:  Chord{{"D", 1}, {"D", 2}, {"A", 2}, {"D", 3}, {"A", 3}},
		},
		Treble: Part{
			Voices: 3,
			Notes:  Chord{{"D", 4}, {"A", 4}, {"D", 5}, {"A", 5}, {"D", 6}, {"F#", 6}},
		},

		Seed:    1,
		Workers: 1,
	}
}

func (c Config) Plan() Plan { return Plan{Bass: c.Bass, Treble: c.Treble} }

func (c Config) Envelope() Envelope {
	return Envelope{c.RandomStartAmp, c.ConvergeStartAmp, c.HoldStartAmp, c.HoldEndAmp}
}

// Durations are indexed by Phase.
func (c Config) Durations() [3]float64 {
	return [3]float64{c.RandomTime, c.ConvergeTime, c.HoldTime}
}

func (c Config) Duration() float64 { return c.RandomTime + c.ConvergeTime + c.HoldTime }

func (c Config) Params() Params { return Params{SampleRate: float64(c.SampleRate)} }

func (c Config) clone() Config {
	c.Bass = c.Bass.clone()
	c.Treble = c.Treble.clone()
	return c
}

func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}
	durations := c.Durations()
	for _, p := range Phases {
		if d := durations[p]; !(d > 0) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %s_time must be positive, got %g", ErrInvalidConfig, p, d)
		}
	}
	for _, s := range Segments(float64(c.SampleRate), durations) {
		if d := durations[s.Phase]; s.Len() < 1 {
			return fmt.Errorf("%w: %s_time %gs is shorter than one sample at %d Hz", ErrInvalidConfig, s.Phase, d, c.SampleRate)
		}
	}
	if math.IsNaN(c.RandomMinHz) || math.IsInf(c.RandomMinHz, 0) || math.IsNaN(c.RandomMaxHz) || math.IsInf(c.RandomMaxHz, 0) {
		return fmt.Errorf("%w: random_min_hz (%g) and random_max_hz (%g) must be finite", ErrInvalidConfig, c.RandomMinHz, c.RandomMaxHz)
	}
	if !(c.RandomMinHz < c.RandomMaxHz) {
		return fmt.Errorf("%w: random_min_hz (%g) must be below random_max_hz (%g)", ErrInvalidConfig, c.RandomMinHz, c.RandomMaxHz)
	}
	if c.RandomMinHz < 0 {
		return fmt.Errorf("%w: random_min_hz must not be negative, got %g", ErrInvalidConfig, c.RandomMinHz)
	}
	if err := c.Envelope().validate(); err != nil {
		return err
	}
	if d := c.HoldFreqDeviation; !(d >= 0) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: hold_freq_deviation must be a finite non-negative number, got %g", ErrInvalidConfig, c.HoldFreqDeviation)
	}
	if !c.Pairing.valid() {
		return fmt.Errorf("%w: pairing must be %q or %q, got %q", ErrInvalidConfig, PairByVoice, PairByRank, c.Pairing)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	for _, s := range Staffs {
		part := c.Plan().Part(s)
		if part.Voices < 0 {
			return fmt.Errorf("%w: %s voices must not be negative, got %d", ErrInvalidConfig, s, part.Voices)
		}
		for i, n := range part.Notes {
			if _, err := n.Freq(); err != nil {
				return fmt.Errorf("%w: %s note %d: %w", ErrInvalidConfig, s, i, err)
			}
		}
	}
	if c.Plan().NumVoices() == 0 {
		return fmt.Errorf("%w: no voices", ErrInvalidConfig)
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig, so a file only needs the
// keys it changes.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }

func SaveConfig(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
