package crescendo

import (
	"math"
	"testing"
)

func TestSineOsc_constantFreq(t *testing.T) {
	const sampleRate = 1000

	var osc SineOsc
	osc.InitAudio(Params{sampleRate})
	for n := 0; n < 2000; n++ {
		want := math.Sin(2 * math.Pi * 100 * float64(n) / sampleRate)
		if got := osc.Sine(100); math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d: expected %f, got %f", n, want, got)
		}
	}
}

func TestSineOsc_freqChangeIsContinuous(t *testing.T) {
	const sampleRate = 8000

	var osc SineOsc
	osc.InitAudio(Params{sampleRate})
	prev := osc.Sine(300)
	for n := 1; n < 4000; n++ {
		freq := 300.0
		if n >= 2000 {
			freq = 900
		}
		x := osc.Sine(freq)
		// |d/dn sin(θ)| ≤ dθ/dn
		if d := math.Abs(x - prev); d > 2*math.Pi*900/sampleRate+1e-12 {
			t.Fatalf("sample %d: jump of %f", n, d)
		}
		prev = x
	}
}

func TestFixedFreqSineOsc_startsAtPhase(t *testing.T) {
	const sampleRate = 1000

	var osc FixedFreqSineOsc
	osc.InitAudio(Params{sampleRate})
	osc.SetFreq(250)
	osc.SetPhase(.125)
	for n := 0; n < 100; n++ {
		want := math.Sin(2 * math.Pi * (.125 + 250*float64(n)/sampleRate))
		if got := osc.Sine(); math.Abs(got-want) > 1e-12 {
			t.Fatalf("sample %d: expected %f, got %f", n, want, got)
		}
	}
	// 100 samples of 250 Hz is 25 whole cycles.
	if got := osc.Phase(); math.Abs(got-.125) > 1e-9 {
		t.Errorf("expected phase .125 after whole cycles, got %f", got)
	}
}

func TestFixedFreqSineOsc_matchesSineOsc(t *testing.T) {
	const sampleRate = 44100

	var a SineOsc
	var b FixedFreqSineOsc
	a.InitAudio(Params{sampleRate})
	b.InitAudio(Params{sampleRate})
	b.SetFreq(440)
	for n := 0; n < sampleRate; n++ {
		x, y := a.Sine(440), b.Sine()
		if math.Abs(x-y) > 1e-6 {
			t.Fatalf("sample %d: accumulated %f, direct %f", n, x, y)
		}
	}
}

func BenchmarkSineOsc(b *testing.B) {
	var o SineOsc
	o.InitAudio(Params{96000})
	for i := 0; i < b.N; i++ {
		o.Sine(1234)
	}
}

func BenchmarkFixedFreqSineOsc(b *testing.B) {
	var o FixedFreqSineOsc
	o.InitAudio(Params{96000})
	o.SetFreq(1234)
	for i := 0; i < b.N; i++ {
		o.Sine()
	}
}
