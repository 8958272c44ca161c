package crescendo

import "fmt"

type Phase int

const (
	RandomPhase Phase = iota
	ConvergePhase
	HoldPhase
)

// Phases lists the phases in time order.
var Phases = []Phase{RandomPhase, ConvergePhase, HoldPhase}

func (p Phase) String() string {
	switch p {
	case RandomPhase:
		return "random"
	case ConvergePhase:
		return "converge"
	case HoldPhase:
		return "hold"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// A phaseRenderer adds one voice's contribution for a phase to out, the
// phase's segment of the mix.  Voice oscillator state carries over from the
// previous phase, so renderers must run in time order per voice.
type phaseRenderer interface {
	render(v *Voice, out Audio)
}

func newPhaseRenderer(p Phase, env Envelope, n int) phaseRenderer {
	amp := env.Ramp(p, n)
	switch p {
	case RandomPhase:
		return randomPhase{amp}
	case ConvergePhase:
		return convergePhase{amp}
	}
	return holdPhase{amp}
}

// randomPhase glides from the start frequency to the wander frequency.
type randomPhase struct{ amp Ramp }

func (r randomPhase) render(v *Voice, out Audio) {
	freq := Ramp{v.StartFreq, v.WanderFreq, len(out)}
	for i := range out {
		out[i] += r.amp.At(i) * v.osc.Sine(freq.At(i))
	}
}

// convergePhase glides from wherever the random phase ended to the target.
type convergePhase struct{ amp Ramp }

func (r convergePhase) render(v *Voice, out Audio) {
	freq := Ramp{v.WanderFreq, v.TargetFreq, len(out)}
	for i := range out {
		out[i] += r.amp.At(i) * v.osc.Sine(freq.At(i))
	}
}

// holdPhase plays the detuned target, starting at the phase the glide
// oscillator reached.
type holdPhase struct{ amp Ramp }

func (r holdPhase) render(v *Voice, out Audio) {
	v.hold.SetFreq(v.HoldFreq())
	v.hold.SetPhase(v.osc.Phase())
	for i := range out {
		out[i] += r.amp.At(i) * v.hold.Sine()
	}
}
