// Package wavwriter records rendered audio to disk as a 16-bit mono WAV
// file. Samples are buffered in memory in their entirety and written on
// Close, so it is meant for short headless captures rather than long
// sessions.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Writer collects samples pushed one per tick.
type Writer struct {
	f    *os.File
	enc  *wav.Encoder
	rate int
	data []int
}

// New creates the output file immediately so a bad path fails before the
// run starts.
func New(filename string, sampleRate int) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("wavwriter: %w", err)
	}
	return &Writer{
		f:    f,
		enc:  wav.NewEncoder(f, sampleRate, 16, 1, 1),
		rate: sampleRate,
	}, nil
}

// WriteSample buffers one sample.
func (w *Writer) WriteSample(sample int16) {
	w.data = append(w.data, int(sample))
}

// Len returns the number of buffered samples.
func (w *Writer) Len() int { return len(w.data) }

// Close writes the buffered samples and closes the file.
func (w *Writer) Close() (rerr error) {
	defer func() {
		if err := w.f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: w.rate},
		Data:           w.data,
		SourceBitDepth: 16,
	}
	if err := w.enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	return nil
}
