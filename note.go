package crescendo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PitchClasses lists the recognized pitch classes in chromatic order.
var PitchClasses = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Octave-0 frequencies, from the usual published equal-tempered table
// (A0 = 27.5 Hz).
var baseFreqs = map[string]float64{
	"C":  16.35,
	"C#": 17.32,
	"D":  18.35,
	"D#": 19.45,
	"E":  20.60,
	"F":  21.83,
	"F#": 23.12,
	"G":  24.50,
	"G#": 25.96,
	"A":  27.50,
	"A#": 29.14,
	"B":  30.87,
}

func BaseFreq(class string) (float64, error) {
	f, ok := baseFreqs[class]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, class)
	}
	return f, nil
}

func NoteFreq(class string, octave int) (float64, error) {
	f, err := BaseFreq(class)
	if err != nil {
		return 0, err
	}
	return math.Ldexp(f, octave), nil
}

// A Note is a pitch class in an octave, written like "F#6".
type Note struct {
	Class  string
	Octave int
}

func (n Note) Freq() (float64, error) { return NoteFreq(n.Class, n.Octave) }

func (n Note) String() string { return n.Class + strconv.Itoa(n.Octave) }

func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	i := 1
	if len(s) > 1 && s[1] == '#' {
		i = 2
	}
	if len(s) <= i {
		return Note{}, fmt.Errorf("%w: note %q has no octave", ErrInvalidKey, s)
	}
	class := strings.ToUpper(s[:1]) + s[1:i]
	if _, err := BaseFreq(class); err != nil {
		return Note{}, err
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: bad octave in note %q", ErrInvalidKey, s)
	}
	return Note{class, octave}, nil
}

func (n Note) MarshalYAML() (interface{}, error) { return n.String(), nil }

func (n *Note) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	note, err := ParseNote(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*n = note
	return nil
}
