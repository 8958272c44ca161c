package crescendo

import (
	"fmt"
	"math"
)

// Normalize scales a so that its peak is exactly 1 and converts it to
// float32.  A silent (or non-finite) mix is reported as ErrDegenerateBuffer.
func Normalize(a Audio) ([]float32, error) {
	peak := Peak(a)
	if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("%w: peak amplitude is %g", ErrDegenerateBuffer, peak)
	}
	// Divide rather than multiply by 1/peak so the peak sample lands on
	// exactly ±1.
	return make(Audio, len(a)).DivX(a, peak).Float32(), nil
}
