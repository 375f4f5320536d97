package wavwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w, err := New(path, 31250)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 100; i++ {
		w.WriteSample(int16(i * 100))
	}
	if got := w.Len(); got != 100 {
		t.Fatalf("Len = %d, want 100", got)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}
	if buf.Format.NumChannels != 1 {
		t.Errorf("channels = %d, want 1", buf.Format.NumChannels)
	}
	if buf.Format.SampleRate != 31250 {
		t.Errorf("sample rate = %d, want 31250", buf.Format.SampleRate)
	}
	if len(buf.Data) != 100 {
		t.Fatalf("decoded %d samples, want 100", len(buf.Data))
	}
	if buf.Data[3] != 300 {
		t.Errorf("sample 3 = %d, want 300", buf.Data[3])
	}
}

func TestNewRejectsBadPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "no", "such", "dir.wav"), 31250); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
