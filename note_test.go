package crescendo

import (
	"errors"
	"testing"
)

func TestNoteFreq_concertA(t *testing.T) {
	f, err := NoteFreq("A", 4)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(f, 440, .01) {
		t.Errorf("expected A4 = 440 Hz, got %f", f)
	}
}

func TestNoteFreq_octaves(t *testing.T) {
	for _, class := range PitchClasses {
		base, err := BaseFreq(class)
		if err != nil {
			t.Fatal(err)
		}
		if base < 16 || base > 31 {
			t.Errorf("%s0 = %f is outside the octave-0 range", class, base)
		}
		for octave := 0; octave < 8; octave++ {
			f, _ := NoteFreq(class, octave)
			if want := base * float64(int(1)<<octave); f != want {
				t.Errorf("%s%d: expected %f, got %f", class, octave, want, f)
			}
		}
	}
}

func TestNoteFreq_chromatic(t *testing.T) {
	prev := 0.0
	for _, class := range PitchClasses {
		f, _ := NoteFreq(class, 4)
		if f <= prev {
			t.Errorf("%s4 (%f) is not above the previous pitch class (%f)", class, f, prev)
		}
		prev = f
	}
}

func TestBaseFreq_invalidKey(t *testing.T) {
	for _, class := range []string{"H", "", "Db", "c", "E#"} {
		if _, err := BaseFreq(class); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("%q: expected ErrInvalidKey, got %v", class, err)
		}
	}
}

func TestParseNote(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Note
	}{
		{"D1", Note{"D", 1}},
		{"F#6", Note{"F#", 6}},
		{"a4", Note{"A", 4}},
		{" C#0 ", Note{"C#", 0}},
		{"B-1", Note{"B", -1}},
	} {
		got, err := ParseNote(tc.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
		if again, _ := ParseNote(got.String()); again != got {
			t.Errorf("%q does not round trip through String: %v", tc.in, again)
		}
	}
	for _, in := range []string{"", "D", "H2", "D#", "Dx", "E#4", "Db3"} {
		if _, err := ParseNote(in); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("%q: expected ErrInvalidKey, got %v", in, err)
		}
	}
}
