// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/sunjik/aimdkit/internal/audiotest"
)

func TestResampler_SameRate(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 1000, 0.5)
	resampler := NewResampler(src, 8000)

	if resampler.SampleRate() != 8000 {
		t.Errorf("Resampler.SampleRate() = %d, want 8000", resampler.SampleRate())
	}

	buf := make([]float32, 100)
	n, err := resampler.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := range n {
		if math.Abs(float64(buf[i]-0.5)) > 0.01 {
			t.Errorf("buf[%d] = %v, want ~0.5", i, buf[i])
		}
	}
}

func TestResampler_Downsample(t *testing.T) {
	t.Parallel()

	// 1 second at 16kHz downsampled to 8kHz should yield roughly 8000 samples.
	src := audiotest.NewSineSource(16000, 1, 16000, 440)
	resampler := NewResampler(src, 8000)

	total := 0
	buf := make([]float32, 4096)
	for {
		n, err := resampler.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total < 7800 || total > 8100 {
		t.Errorf("downsampled count = %d, want ~8000", total)
	}
}

func TestResampler_Upsample(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 8000, 440)
	resampler := NewResampler(src, 16000)

	total := 0
	buf := make([]float32, 4096)
	for {
		n, err := resampler.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total < 15600 || total > 16200 {
		t.Errorf("upsampled count = %d, want ~16000", total)
	}
}

func TestResampler_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 2, 1000, 0.25)
	resampler := NewResampler(src, 8000)

	if resampler.Channels() != 2 {
		t.Errorf("Resampler.Channels() = %d, want 2", resampler.Channels())
	}

	buf := make([]float32, 100)
	n, err := resampler.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n%2 != 0 {
		t.Errorf("ReadSamples() n = %d, want even sample count for stereo", n)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 2, 1000, 0.25)
	resampler := NewResampler(src, 8000)

	// Odd-length dst is not a whole number of stereo frames
	buf := make([]float32, 99)
	_, err := resampler.ReadSamples(buf)
	if err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 0)
	resampler := NewResampler(src, 16000)

	buf := make([]float32, 100)
	n, err := resampler.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestResampler_SineFidelity(t *testing.T) {
	t.Parallel()

	// A resampled sine should stay within amplitude bounds.
	src := audiotest.NewSineSource(44100, 1, 44100, 440)
	resampler := NewResampler(src, 22050)

	buf := make([]float32, 4096)
	for {
		n, err := resampler.ReadSamples(buf)
		for i := range n {
			if buf[i] > 1.1 || buf[i] < -1.1 {
				t.Fatalf("resampled sample %v outside [-1.1, 1.1]", buf[i])
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}
