package wavfile

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadFile(t *testing.T) {
	samples := []float32{0, .1, -.2, .5, -.75, 1, -1, .999}
	for _, bits := range []int{16, 24, 32} {
		path := filepath.Join(t.TempDir(), "out.wav")
		if err := WriteFile(path, samples, 22050, bits); err != nil {
			t.Fatalf("%d bit: WriteFile failed: %v", bits, err)
		}
		got, rate, err := ReadFile(path)
		if err != nil {
			t.Fatalf("%d bit: ReadFile failed: %v", bits, err)
		}
		if rate != 22050 {
			t.Errorf("%d bit: expected 22050 Hz, got %d", bits, rate)
		}
		if len(got) != len(samples) {
			t.Fatalf("%d bit: expected %d samples, got %d", bits, len(samples), len(got))
		}
		tol := 1 / fullScale(bits)
		for i := range samples {
			if math.Abs(float64(got[i]-samples[i])) > tol+1e-7 {
				t.Errorf("%d bit: sample %d: expected %f, got %f", bits, i, samples[i], got[i])
			}
		}
	}
}

func TestWrite_header(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	if err := WriteFile(path, make([]float32, 100), 8000, 16); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("expected a RIFF/WAVE header, got %q", data[:12])
	}
	if len(data) != 44+200 {
		t.Errorf("expected 244 bytes, got %d", len(data))
	}
}

func TestWrite_clips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	if err := WriteFile(path, []float32{2, -3}, 8000, 16); err != nil {
		t.Fatal(err)
	}
	got, _, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 1 || got[1] != -1 {
		t.Errorf("expected clipping to ±1, got %v", got)
	}
}

func TestWrite_badArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	if err := WriteFile(path, []float32{0}, 8000, 12); err == nil {
		t.Error("expected an error for 12-bit output")
	}
	if err := WriteFile(path, []float32{0}, 0, 16); err == nil {
		t.Error("expected an error for a zero sample rate")
	}
}

func TestRead_notWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("this is not a wav file at all, not even close"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadFile(path); err == nil {
		t.Error("expected an error")
	}
}
