// Package play sends rendered buffers to the sound card.
package play

import (
	"fmt"
	"sort"
)

// A Backend plays a mono buffer of samples in [-1, 1], blocking until all of
// it has been played.
type Backend interface {
	Play(samples []float32, sampleRate int) error
}

var backends = map[string]func() Backend{
	"portaudio": func() Backend { return new(PortAudio) },
	"oto":       func() Backend { return new(Oto) },
}

// Names lists the available backends.
func Names() []string {
	var names []string
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Open(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("play: unknown backend %q (want one of %v)", name, Names())
	}
	return b(), nil
}
