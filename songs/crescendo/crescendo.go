// Command crescendo renders a chord emerging from noise: a crowd of sine voices
// drifts at random, glides to the notes of a chord and holds them, slightly
// detuned, while the whole swells.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gordonklaus/crescendo"
	"github.com/gordonklaus/crescendo/play"
	"github.com/gordonklaus/crescendo/wavfile"
	"golang.org/x/term"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

type options struct {
	config  string
	out     string
	bits    int
	seed    int64
	workers int
	pairing string
	play    bool
	backend string
	analyze bool
	dump    bool
	watch   bool
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("crescendo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.config, "config", "", "YAML config file (defaults are used for missing keys)")
	fs.StringVar(&o.out, "o", "crescendo.wav", "output WAV file, - for stdout, empty for none")
	fs.IntVar(&o.bits, "bits", 16, "output bit depth (16, 24 or 32)")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (overrides the config)")
	fs.IntVar(&o.workers, "workers", 0, "render goroutines (overrides the config)")
	fs.StringVar(&o.pairing, "pairing", "", "trajectory pairing, voice or rank (overrides the config)")
	fs.BoolVar(&o.play, "play", false, "play the result")
	fs.StringVar(&o.backend, "backend", "portaudio", fmt.Sprintf("playback backend %v", play.Names()))
	fs.BoolVar(&o.analyze, "analyze", false, "print level and dominant frequency of each phase")
	fs.BoolVar(&o.dump, "dump-config", false, "print the effective config and exit")
	fs.BoolVar(&o.watch, "watch", false, "render again whenever the config file changes")
	fs.BoolVar(&o.verbose, "v", false, "log every voice")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if o.dump {
		cfg, err := loadConfig(&o, set)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	if o.out == "-" {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("refusing to write WAV data to a terminal")
		}
	}
	report := stdout
	if o.out == "-" {
		report = stderr
	}

	r := func() error {
		cfg, err := loadConfig(&o, set)
		if err != nil {
			return err
		}
		return render(cfg, &o, stdout, report)
	}

	if !o.watch {
		return r()
	}
	if o.config == "" {
		return errors.New("-watch needs -config")
	}
	w, err := newConfigWatcher(o.config)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := r(); err != nil {
		log.Println(err)
	}
	ctx, stop := interruptContext()
	defer stop()
	return w.Run(ctx, r)
}

func loadConfig(o *options, set map[string]bool) (crescendo.Config, error) {
	cfg := crescendo.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = crescendo.LoadConfig(o.config); err != nil {
			return cfg, err
		}
	}
	if set["seed"] {
		cfg.Seed = o.seed
	}
	if set["workers"] {
		cfg.Workers = o.workers
	}
	if set["pairing"] {
		cfg.Pairing = crescendo.Pairing(o.pairing)
	}
	return cfg, nil
}

func render(cfg crescendo.Config, o *options, stdout, report io.Writer) error {
	e, err := crescendo.New(cfg)
	if err != nil {
		return err
	}
	mix, voices, err := e.Mix()
	if err != nil {
		return err
	}
	if o.verbose {
		for _, v := range voices {
			log.Printf("%v: %.2f → %.2f → %.2f Hz, holding %.3f Hz", v, v.StartFreq, v.WanderFreq, v.TargetFreq, v.HoldFreq())
		}
	}
	out, err := crescendo.Normalize(mix)
	if err != nil {
		return err
	}
	log.Printf("rendered %d voices, %d samples (%.2fs at %d Hz)", len(voices), len(out), cfg.Duration(), cfg.SampleRate)

	if o.analyze {
		analyze(report, e.Segments(), out, float64(cfg.SampleRate))
	}

	switch o.out {
	case "":
	case "-":
		if err := writeTo(stdout, out, cfg.SampleRate, o.bits); err != nil {
			return err
		}
	default:
		if err := wavfile.WriteFile(o.out, out, cfg.SampleRate, o.bits); err != nil {
			return err
		}
		log.Println("wrote", o.out)
	}

	if o.play {
		b, err := play.Open(o.backend)
		if err != nil {
			return err
		}
		return b.Play(out, cfg.SampleRate)
	}
	return nil
}

func analyze(w io.Writer, segments []crescendo.Segment, out []float32, sampleRate float64) {
	for _, s := range segments {
		a := crescendo.FromFloat32(out[s.Begin:s.End])
		st := crescendo.Measure(a)
		fmt.Fprintf(w, "%-8s %7.3fs  peak %.3f  rms %.3f", s.Phase, float64(s.Len())/sampleRate, st.Peak, st.RMS)
		if f, err := crescendo.DominantFreq(a, sampleRate); err == nil {
			fmt.Fprintf(w, "  dominant %.2f Hz", f)
		}
		fmt.Fprintln(w)
	}
}

// writeTo encodes through a temporary file because the WAV header is
// patched after the data is written.
func writeTo(w io.Writer, samples []float32, sampleRate, bits int) error {
	f, err := os.CreateTemp("", "crescendo-*.wav")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	defer f.Close()
	if err := wavfile.Write(f, samples, sampleRate, bits); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
