package play

import (
	"errors"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	framesPerBuffer = 1024

	// Allowance on top of the buffer's duration before a stream that has
	// stopped calling back is given up on.
	drainSlack = 2 * time.Second
)

var errStalled = errors.New("play: output stream stopped before the buffer was played")

type PortAudio struct{}

func (PortAudio) Play(samples []float32, sampleRate int) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	done := make(chan struct{}, 1)
	src := &source{samples: samples}
	s, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuffer, func(out []float32) {
		if src.fill(out) {
			select {
			case done <- struct{}{}:
			default:
			}
		}
	})
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Start(); err != nil {
		return err
	}
	if err := waitDone(done, playTime(len(samples), sampleRate)+drainSlack); err != nil {
		s.Abort()
		return err
	}
	return s.Stop()
}

func playTime(n, sampleRate int) time.Duration {
	return time.Duration(float64(n) / float64(sampleRate) * float64(time.Second))
}

func waitDone(done <-chan struct{}, timeout time.Duration) error {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-done:
		return nil
	case <-t.C:
		return errStalled
	}
}

// source hands out consecutive chunks of a buffer, padding with silence.
type source struct {
	samples []float32
	pos     int
}

// fill reports whether the buffer has been used up.
func (s *source) fill(out []float32) bool {
	n := copy(out, s.samples[s.pos:])
	s.pos += n
	clear(out[n:])
	return s.pos == len(s.samples)
}
