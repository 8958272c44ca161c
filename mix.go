package crescendo

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// A Segment is the half-open sample range [Begin, End) of one phase.
type Segment struct {
	Phase      Phase
	Begin, End int
}

func (s Segment) Len() int { return s.End - s.Begin }

// Segments lays the phases out back to back.  durations are in seconds and
// are indexed by Phase.
func Segments(sampleRate float64, durations [3]float64) []Segment {
	segs := make([]Segment, len(Phases))
	n := 0
	for i, p := range Phases {
		m := int(math.Round(sampleRate * durations[p]))
		segs[i] = Segment{p, n, n + m}
		n += m
	}
	return segs
}

// Mixer renders voices through every phase and sums them into one buffer.
type Mixer struct {
	Params    Params
	segments  []Segment
	renderers []phaseRenderer
}

func NewMixer(p Params, segments []Segment, env Envelope) *Mixer {
	m := &Mixer{Params: p, segments: segments}
	for _, s := range segments {
		m.renderers = append(m.renderers, newPhaseRenderer(s.Phase, env, s.Len()))
	}
	return m
}

func (m *Mixer) Len() int {
	if len(m.segments) == 0 {
		return 0
	}
	return m.segments[len(m.segments)-1].End
}

// Sing adds v's whole trajectory to out.
func (m *Mixer) Sing(v *Voice, out Audio) {
	v.InitAudio(m.Params)
	for i, s := range m.segments {
		m.renderers[i].render(v, out[s.Begin:s.End])
	}
}

// Mix renders all voices.  With more than one worker the voices are split
// into contiguous chunks; each worker sums its chunk into a private buffer
// and the buffers are added together in chunk order once all are done.
func (m *Mixer) Mix(voices []*Voice, workers int) (Audio, error) {
	out := make(Audio, m.Len())
	if workers > len(voices) {
		workers = len(voices)
	}
	if workers <= 1 {
		for _, v := range voices {
			m.Sing(v, out)
		}
		return out, nil
	}

	partials := make([]Audio, workers)
	var g errgroup.Group
	for w := range partials {
		w := w
		lo, hi := w*len(voices)/workers, (w+1)*len(voices)/workers
		g.Go(func() error {
			p := make(Audio, len(out))
			for _, v := range voices[lo:hi] {
				m.Sing(v, p)
			}
			partials[w] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, p := range partials {
		out.Add(out, p)
	}
	return out, nil
}
