package crescendo

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// DominantFreq estimates the strongest frequency in a.  The signal is Hann
// windowed and zero padded to a power of two; the peak bin is refined by
// parabolic interpolation.
func DominantFreq(a Audio, sampleRate float64) (float64, error) {
	if len(a) < 4 {
		return 0, errors.New("crescendo: too few samples for a spectrum")
	}
	n := 1
	for n < len(a) {
		n <<= 1
	}
	f, err := fft.New(n)
	if err != nil {
		return 0, err
	}

	buf := make([]complex128, n)
	for i, x := range a {
		w := (1 - math.Cos(2*math.Pi*float64(i)/float64(len(a)-1))) / 2
		buf[i] = complex(x*w, 0)
	}
	buf = f.Transform(buf)

	mag := make([]float64, n/2+1)
	k := 1
	for i := range mag {
		mag[i] = cmplx.Abs(buf[i])
		if i > 0 && mag[i] > mag[k] {
			k = i
		}
	}
	if mag[k] == 0 {
		return 0, errors.New("crescendo: silent spectrum")
	}

	d := 0.0
	if k < n/2 {
		l, c, r := mag[k-1], mag[k], mag[k+1]
		if den := l - 2*c + r; den != 0 {
			d = (l - r) / den / 2
		}
	}
	return (float64(k) + d) * sampleRate / float64(n), nil
}
