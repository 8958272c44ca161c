package crescendo

import "math"

// Peak returns max |x|, or NaN if any sample is NaN.
func Peak(a Audio) float64 {
	peak := 0.0
	for _, x := range a {
		if math.IsNaN(x) {
			return x
		}
		if x := math.Abs(x); x > peak {
			peak = x
		}
	}
	return peak
}

func RMS(a Audio) float64 {
	if len(a) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range a {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(a)))
}

type Stats struct {
	Peak, RMS float64
}

func Measure(a Audio) Stats { return Stats{Peak(a), RMS(a)} }
