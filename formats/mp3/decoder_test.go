package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	samples    []int16
	offset     int
	failReads  bool
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.failReads {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := len(buf)
	if bytesToRead > bytesAvailable {
		bytesToRead = bytesAvailable
	}

	// Only whole samples
	bytesToRead = (bytesToRead / 2) * 2
	samplesToRead := bytesToRead / 2

	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(m.samples[m.offset+i]))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return bytesToRead, io.EOF
	}

	return bytesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not MP3 data")

	_, err := Decoder{}.Decode(bytes.NewReader(invalidData))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{
		sampleRate: 44100,
		samples:    []int16{16384, -16384, 8192, -8192},
	}
	src := &source{
		dec:        mock,
		sampleRate: mock.SampleRate(),
		channels:   2,
		buf:        make([]byte, 8192),
	}

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
		if math.Abs(float64(dst[i])-want[i]) > 1e-4 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{sampleRate: 44100, samples: nil}
	src := &source{dec: mock, sampleRate: 44100, channels: 2, buf: make([]byte, 16)}

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{sampleRate: 44100, failReads: true}
	src := &source{dec: mock, sampleRate: 44100, channels: 2, buf: make([]byte, 16)}

	_, err := src.ReadSamples(make([]float32, 8))
	if err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Properties(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{sampleRate: 48000}
	src := &source{dec: mock, sampleRate: mock.SampleRate(), channels: 2, buf: make([]byte, 8192)}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
