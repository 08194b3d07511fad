// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/sunjik/aimdkit/utils"
)

// Encode writes samples as a PCM 16-bit WAV stream. Samples are interleaved
// float64 values in [-1, 1]; out-of-range values are clamped. go-audio's
// encoder patches the RIFF header on Close, hence the io.WriteSeeker.
func Encode(w io.WriteSeeker, samples []float64, sampleRate, channels int) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if channels <= 0 {
		return ErrInvalidChannelCount
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(utils.Float64ToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
