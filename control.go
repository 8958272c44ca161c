package crescendo

// A Ramp is a linear control signal from From to To over N samples.  The
// first sample is exactly From and the last exactly To, so ramps chained end
// to start meet without a step.
type Ramp struct {
	From, To float64
	N        int
}

func (r Ramp) At(i int) float64 {
	if r.N <= 1 {
		return r.From
	}
	return r.From + (r.To-r.From)*float64(i)/float64(r.N-1)
}
