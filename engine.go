package crescendo

// Engine renders one configuration.  It keeps its own copy of the Config,
// so later changes to the caller's value have no effect, and every call to
// Render starts again from the configured seed.
type Engine struct {
	cfg      Config
	segments []Segment
}

func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.clone()
	return &Engine{
		cfg:      cfg,
		segments: Segments(float64(cfg.SampleRate), cfg.Durations()),
	}, nil
}

func (e *Engine) Config() Config { return e.cfg.clone() }

func (e *Engine) Segments() []Segment { return append([]Segment(nil), e.segments...) }

// Len is the number of samples Render returns.
func (e *Engine) Len() int { return e.segments[len(e.segments)-1].End }

// Voices returns freshly assigned voices, exactly as the next render will
// draw them.
func (e *Engine) Voices() ([]*Voice, error) {
	a := &Assigner{
		MinFreq:   e.cfg.RandomMinHz,
		MaxFreq:   e.cfg.RandomMaxHz,
		Wander:    e.cfg.Wander,
		Deviation: e.cfg.HoldFreqDeviation,
		Pairing:   e.cfg.Pairing,
		Rand:      NewRand(e.cfg.Seed),
	}
	return a.Assign(e.cfg.Plan())
}

// Mix renders the raw, unnormalized sum of all voices.
func (e *Engine) Mix() (Audio, []*Voice, error) {
	voices, err := e.Voices()
	if err != nil {
		return nil, nil, err
	}
	m := NewMixer(e.cfg.Params(), e.segments, e.cfg.Envelope())
	out, err := m.Mix(voices, e.cfg.Workers)
	if err != nil {
		return nil, nil, err
	}
	return out, voices, nil
}

// Render returns the normalized crescendo, SampleRate × total duration
// samples in [-1, 1].
func (e *Engine) Render() ([]float32, error) {
	a, _, err := e.Mix()
	if err != nil {
		return nil, err
	}
	return Normalize(a)
}
