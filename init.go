package crescendo

// Params are the rendering parameters shared by every oscillator in a mix.
type Params struct {
	SampleRate float64
}
