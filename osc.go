package crescendo

import "math"

// SineOsc accumulates phase sample by sample, so its frequency may change on
// every call without the waveform jumping.  Phase is kept in cycles.
type SineOsc struct {
	Params Params
	phase  float64
}

func (o *SineOsc) InitAudio(p Params) { o.Params = p }

// Sine returns the sine at the current phase and then advances the phase by
// one sample at freq.
func (o *SineOsc) Sine(freq float64) float64 {
	y := math.Sin(2 * math.Pi * o.phase)
	_, o.phase = math.Modf(o.phase + freq/o.Params.SampleRate)
	return y
}

func (o *SineOsc) Phase() float64 { return o.phase }

func (o *SineOsc) SetPhase(phase float64) { _, o.phase = math.Modf(phase) }

// FixedFreqSineOsc plays a stationary frequency.  Samples are evaluated
// directly from the starting phase and a sample counter rather than
// accumulated, so a long hold does not drift.
type FixedFreqSineOsc struct {
	Params Params
	freq   float64
	phase  float64
	n      int
}

func (o *FixedFreqSineOsc) InitAudio(p Params) { o.Params = p }

func (o *FixedFreqSineOsc) SetFreq(freq float64) { o.freq = freq }

// SetPhase sets the phase, in cycles, of the next sample and restarts the
// sample counter.
func (o *FixedFreqSineOsc) SetPhase(phase float64) {
	o.phase = phase
	o.n = 0
}

func (o *FixedFreqSineOsc) Sine() float64 {
	y := math.Sin(2 * math.Pi * o.cycles(o.n))
	o.n++
	return y
}

// Phase returns the phase, in cycles, of the next sample.
func (o *FixedFreqSineOsc) Phase() float64 {
	_, frac := math.Modf(o.cycles(o.n))
	return frac
}

func (o *FixedFreqSineOsc) cycles(n int) float64 {
	return o.phase + o.freq*float64(n)/o.Params.SampleRate
}
