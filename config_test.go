package crescendo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", cfg.SampleRate)
	}
	if d := cfg.Duration(); d != 13 {
		t.Errorf("expected 13s, got %g", d)
	}
	if got := cfg.Bass.Notes.String(); got != "D1 D2 A2 D3 A3" {
		t.Errorf("unexpected bass chord %q", got)
	}
	if got := cfg.Treble.Notes.String(); got != "D4 A4 D5 A5 D6 F#6" {
		t.Errorf("unexpected treble chord %q", got)
	}
	if e := cfg.Envelope(); e != (Envelope{.1, .4, .8, 1}) {
		t.Errorf("unexpected envelope %+v", e)
	}
}

func TestParseConfig_partial(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
sample_rate: 22050
hold_time: 2.5
pairing: rank
treble:
  voices: 1
  notes: ["C5", "e5", "G5"]
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SampleRate != 22050 || cfg.HoldTime != 2.5 || cfg.Pairing != PairByRank {
		t.Errorf("keys not applied: %+v", cfg)
	}
	if cfg.RandomTime != 3 || cfg.RandomMaxHz != 400 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
	if got := cfg.Treble.Notes.String(); got != "C5 E5 G5" || cfg.Treble.Voices != 1 {
		t.Errorf("unexpected treble part %d × %q", cfg.Treble.Voices, got)
	}
	if got := cfg.Bass.Notes.String(); got != "D1 D2 A2 D3 A3" {
		t.Errorf("bass should keep its default chord, got %q", got)
	}
}

func TestParseConfig_badNote(t *testing.T) {
	_, err := ParseConfig([]byte("bass:\n  notes: [D1, H2]\n"))
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidConfig wrapping ErrInvalidKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected the error to name the line, got %v", err)
	}
}

func TestParseConfig_malformed(t *testing.T) {
	if _, err := ParseConfig([]byte("sample_rate: [fast]\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "crescendo.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 1977
	cfg.Workers = 3
	cfg.Treble.Notes = append(cfg.Treble.Notes, Note{"A#", 6})

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "A#6") {
		t.Errorf("expected notes to be written as names:\n%s", data)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Seed != 1977 || loaded.Workers != 3 {
		t.Errorf("expected seed 1977 and 3 workers, got %d and %d", loaded.Seed, loaded.Workers)
	}
	if got, want := loaded.Treble.Notes.String(), cfg.Treble.Notes.String(); got != want {
		t.Errorf("expected treble %q, got %q", want, got)
	}
	if loaded.Envelope() != cfg.Envelope() || loaded.Durations() != cfg.Durations() {
		t.Error("envelope or durations changed in the round trip")
	}
}

func TestLoadConfig_missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
