// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	// ErrInvalidFrameLength indicates a non-positive frame length.
	ErrInvalidFrameLength = errors.New("frame length must be positive")

	// ErrInvalidHopLength indicates a non-positive hop length.
	ErrInvalidHopLength = errors.New("hop length must be positive")
)

// Frame slices samples into overlapping frames of frameLen values spaced hop
// apart. A signal shorter than one frame yields a single zero-padded frame;
// the trailing partial frame is likewise zero-padded. Frames are copies, so
// callers may window them in place.
func Frame(samples []float64, frameLen, hop int) ([][]float64, error) {
	if frameLen <= 0 {
		return nil, ErrInvalidFrameLength
	}
	if hop <= 0 {
		return nil, ErrInvalidHopLength
	}

	if len(samples) == 0 {
		return nil, nil
	}

	numFrames := 1
	if len(samples) > frameLen {
		numFrames = 1 + (len(samples)-frameLen+hop-1)/hop
	}

	frames := make([][]float64, 0, numFrames)
	for i := 0; i < numFrames; i++ {
		start := i * hop
		frame := make([]float64, frameLen)
		if start < len(samples) {
			copy(frame, samples[start:])
		}
		frames = append(frames, frame)
	}

	return frames, nil
}
