package crescendo

import (
	"fmt"
	"math"
)

// Envelope holds the amplitude at each phase boundary.  Each phase ramps
// linearly from its own entry gain to the next phase's entry gain, and the
// hold phase ends at HoldEnd.
type Envelope struct {
	RandomStart   float64
	ConvergeStart float64
	HoldStart     float64
	HoldEnd       float64
}

func (e Envelope) Ramp(p Phase, n int) Ramp {
	switch p {
	case RandomPhase:
		return Ramp{e.RandomStart, e.ConvergeStart, n}
	case ConvergePhase:
		return Ramp{e.ConvergeStart, e.HoldStart, n}
	case HoldPhase:
		return Ramp{e.HoldStart, e.HoldEnd, n}
	}
	panic(fmt.Sprintf("crescendo: unknown phase %d", p))
}

func (e Envelope) validate() error {
	points := []struct {
		name string
		amp  float64
	}{
		{"random_start_amp", e.RandomStart},
		{"converge_start_amp", e.ConvergeStart},
		{"hold_start_amp", e.HoldStart},
		{"hold_end_amp", e.HoldEnd},
	}
	for i, p := range points {
		if !(p.amp >= 0) || math.IsInf(p.amp, 0) {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %g", ErrInvalidConfig, p.name, p.amp)
		}
		if i > 0 && p.amp < points[i-1].amp {
			return fmt.Errorf("%w: %s (%g) is below %s (%g); the envelope must not decrease",
				ErrInvalidConfig, p.name, p.amp, points[i-1].name, points[i-1].amp)
		}
	}
	return nil
}
