package aiff

import (
	"bytes"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the go-audio aiff.Decoder for testing
type mockAiffReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
}

func (m *mockAiffReader) Format() *goaudio.Format { return m.format }

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := len(buf.Data)
	available := len(m.samples) - m.offset
	if n > available {
		n = available
	}

	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n
	return n, nil
}

func newMockSource(samples []int, rate, channels int) *source {
	return &source{
		dec: &mockAiffReader{
			format:  &goaudio.Format{SampleRate: rate, NumChannels: channels},
			samples: samples,
		},
		sampleRate: rate,
		channels:   channels,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if err != ErrNotAiffFile {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestSource_ReadSamples_16bit(t *testing.T) {
	t.Parallel()

	src := newMockSource([]int{16384, -16384, 8192, -8192}, 44100, 1)

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float64{0.5, -0.5, 0.25, -0.25}
	for i := range want {
		if math.Abs(float64(dst[i])-want[i]) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newMockSource(nil, 44100, 1)

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_PartialRead_SignalsEOF(t *testing.T) {
	t.Parallel()

	src := newMockSource([]int{100, 200}, 44100, 1)

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF for short read", err)
	}
}

func TestSource_Properties(t *testing.T) {
	t.Parallel()

	src := newMockSource(nil, 22050, 2)

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
