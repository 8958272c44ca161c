package crescendo

import (
	"fmt"
	"strings"
)

type Staff int

const (
	Bass Staff = iota
	Treble
)

// Staffs is the order in which staffs are enumerated.
var Staffs = []Staff{Bass, Treble}

func (s Staff) String() string {
	switch s {
	case Bass:
		return "bass"
	case Treble:
		return "treble"
	}
	return fmt.Sprintf("Staff(%d)", int(s))
}

type Chord []Note

func (c Chord) String() string {
	s := make([]string, len(c))
	for i, n := range c {
		s[i] = n.String()
	}
	return strings.Join(s, " ")
}

// A Part is a staff's target chord, each note sung by Voices voices.
type Part struct {
	Voices int   `yaml:"voices"`
	Notes  Chord `yaml:"notes"`
}

func (p Part) NumVoices() int { return p.Voices * len(p.Notes) }

func (p Part) clone() Part {
	p.Notes = append(Chord(nil), p.Notes...)
	return p
}

type Plan struct {
	Bass, Treble Part
}

func (p Plan) Part(s Staff) Part {
	if s == Treble {
		return p.Treble
	}
	return p.Bass
}

func (p Plan) NumVoices() int { return p.Bass.NumVoices() + p.Treble.NumVoices() }

// Voices enumerates one voice per (staff, replica, note), in that nesting
// order.  The order fixes which random draws belong to which voice.
func (p Plan) Voices() []*Voice {
	voices := make([]*Voice, 0, p.NumVoices())
	for _, s := range Staffs {
		part := p.Part(s)
		for r := 0; r < part.Voices; r++ {
			for i, n := range part.Notes {
				voices = append(voices, &Voice{Staff: s, Index: i, Replica: r, Note: n})
			}
		}
	}
	return voices
}
