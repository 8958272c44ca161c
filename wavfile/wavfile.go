// Package wavfile reads and writes mono integer PCM WAV files.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

func checkBitDepth(bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
		return nil
	}
	return fmt.Errorf("wavfile: unsupported bit depth %d", bitDepth)
}

func fullScale(bitDepth int) float64 { return float64(int64(1)<<(bitDepth-1) - 1) }

// Write encodes samples, which should lie in [-1, 1], as a mono WAV.
// Samples outside that range are clipped.
func Write(w io.WriteSeeker, samples []float32, sampleRate, bitDepth int) error {
	if err := checkBitDepth(bitDepth); err != nil {
		return err
	}
	if sampleRate <= 0 {
		return fmt.Errorf("wavfile: bad sample rate %d", sampleRate)
	}

	scale := fullScale(bitDepth)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, x := range samples {
		buf.Data[i] = int(math.Round(clip(float64(x)) * scale))
	}

	e := wav.NewEncoder(w, sampleRate, bitDepth, 1, pcmFormat)
	if err := e.Write(buf); err != nil {
		return err
	}
	return e.Close()
}

func WriteFile(path string, samples []float32, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, samples, sampleRate, bitDepth); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decodes a PCM WAV into samples in [-1, 1].  Only the first channel
// of a multichannel file is returned.
func Read(r io.ReadSeeker) ([]float32, int, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, 0, errors.New("wavfile: not a valid WAV file")
	}
	if d.WavAudioFormat != pcmFormat {
		return nil, 0, fmt.Errorf("wavfile: unsupported audio format %d", d.WavAudioFormat)
	}
	bitDepth := int(d.BitDepth)
	if err := checkBitDepth(bitDepth); err != nil {
		return nil, 0, err
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	chans := int(d.NumChans)
	if chans < 1 {
		chans = 1
	}
	scale := fullScale(bitDepth)
	out := make([]float32, len(buf.Data)/chans)
	for i := range out {
		out[i] = float32(float64(buf.Data[i*chans]) / scale)
	}
	return out, int(d.SampleRate), nil
}

func ReadFile(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return Read(f)
}

func clip(x float64) float64 { return math.Max(-1, math.Min(1, x)) }
