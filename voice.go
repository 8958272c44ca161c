package crescendo

import "fmt"

// A Voice is one oscillator in the mix.  It is identified by its staff, the
// index of its note in that staff's chord, and its replica number among the
// voices doubling that note.
type Voice struct {
	Staff   Staff
	Index   int
	Replica int
	Note    Note

	// StartFreq and WanderFreq bound the voice's glide during the random
	// phase; the converge phase glides from WanderFreq to TargetFreq.
	StartFreq  float64
	WanderFreq float64
	TargetFreq float64

	// Detune is shared by every voice with the same staff and replica.
	Detune float64

	osc  SineOsc
	hold FixedFreqSineOsc
}

// InitAudio also rewinds the oscillators, so every trajectory starts at
// phase 0.
func (v *Voice) InitAudio(p Params) {
	v.osc = SineOsc{}
	v.hold = FixedFreqSineOsc{}
	v.osc.InitAudio(p)
	v.hold.InitAudio(p)
}

func (v *Voice) HoldFreq() float64 { return v.TargetFreq + v.Detune }

func (v *Voice) String() string {
	return fmt.Sprintf("%s[%d.%d] %s", v.Staff, v.Index, v.Replica, v.Note)
}
